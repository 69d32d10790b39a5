package command

import (
	"context"

	"github.com/dvillalba/drinks-manager/internal/drink/domain"
)

// DeleteDrinkHandler handles delete drink commands
type DeleteDrinkHandler struct {
	repo domain.DrinkRepository
}

// NewDeleteDrinkHandler creates a new delete drink handler
func NewDeleteDrinkHandler(repo domain.DrinkRepository) *DeleteDrinkHandler {
	return &DeleteDrinkHandler{repo: repo}
}

// Handle removes the catalog entry; an unknown id is a no-op. Sales
// keep their own name/price snapshots, so no cascade is needed.
func (h *DeleteDrinkHandler) Handle(ctx context.Context, id string) {
	h.repo.Delete(ctx, id)
}
