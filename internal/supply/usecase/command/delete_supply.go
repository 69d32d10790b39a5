package command

import (
	"context"

	"github.com/dvillalba/drinks-manager/internal/supply/domain"
)

// DeleteSupplyHandler handles delete supply commands
type DeleteSupplyHandler struct {
	repo domain.SupplyRepository
}

// NewDeleteSupplyHandler creates a new delete supply handler
func NewDeleteSupplyHandler(repo domain.SupplyRepository) *DeleteSupplyHandler {
	return &DeleteSupplyHandler{repo: repo}
}

// Handle removes the supply; an unknown id is a no-op.
func (h *DeleteSupplyHandler) Handle(ctx context.Context, id string) {
	h.repo.Delete(ctx, id)
}
