package command

import (
	"context"
	"fmt"

	"github.com/dvillalba/drinks-manager/internal/sale/domain"
)

// UpdateSaleCommand represents a partial sale update. The repository
// recomputes the total when quantity or unit price changes.
type UpdateSaleCommand struct {
	ID           string  `validate:"required"`
	Quantity     *int    `validate:"omitempty,gt=0"`
	PricePerUnit *int    `validate:"omitempty,gt=0"`
	Date         *string `validate:"omitempty,datetime=2006-01-02"`
}

// UpdateSaleHandler handles update sale commands
type UpdateSaleHandler struct {
	repo domain.SaleRepository
}

// NewUpdateSaleHandler creates a new update sale handler
func NewUpdateSaleHandler(repo domain.SaleRepository) *UpdateSaleHandler {
	return &UpdateSaleHandler{repo: repo}
}

// Handle executes the update sale command
func (h *UpdateSaleHandler) Handle(ctx context.Context, cmd UpdateSaleCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("invalid sale update: %w", err)
	}

	h.repo.Update(ctx, cmd.ID, domain.SaleUpdate{
		Quantity:     cmd.Quantity,
		PricePerUnit: cmd.PricePerUnit,
		Date:         cmd.Date,
	})

	return nil
}
