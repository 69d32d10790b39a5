package command

import (
	"context"

	"github.com/dvillalba/drinks-manager/internal/sale/domain"
)

// DeleteSaleHandler handles delete sale commands
type DeleteSaleHandler struct {
	repo domain.SaleRepository
}

// NewDeleteSaleHandler creates a new delete sale handler
func NewDeleteSaleHandler(repo domain.SaleRepository) *DeleteSaleHandler {
	return &DeleteSaleHandler{repo: repo}
}

// Handle removes the sale; an unknown id is a no-op.
func (h *DeleteSaleHandler) Handle(ctx context.Context, id string) {
	h.repo.Delete(ctx, id)
}
