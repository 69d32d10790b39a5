package command

import (
	"context"
	"fmt"

	"github.com/dvillalba/drinks-manager/internal/supply/domain"
)

// UpdateSupplyCommand represents a partial supply update
type UpdateSupplyCommand struct {
	ID          string `validate:"required"`
	Type        *domain.SupplyType
	Description *string
	Amount      *int    `validate:"omitempty,gt=0"`
	Date        *string `validate:"omitempty,datetime=2006-01-02"`
}

// UpdateSupplyHandler handles update supply commands
type UpdateSupplyHandler struct {
	repo domain.SupplyRepository
}

// NewUpdateSupplyHandler creates a new update supply handler
func NewUpdateSupplyHandler(repo domain.SupplyRepository) *UpdateSupplyHandler {
	return &UpdateSupplyHandler{repo: repo}
}

// Handle executes the update supply command
func (h *UpdateSupplyHandler) Handle(ctx context.Context, cmd UpdateSupplyCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("invalid supply update: %w", err)
	}

	if cmd.Type != nil && !cmd.Type.Valid() {
		return fmt.Errorf("unknown supply type %q", *cmd.Type)
	}

	h.repo.Update(ctx, cmd.ID, domain.SupplyUpdate{
		Type:        cmd.Type,
		Description: cmd.Description,
		Amount:      cmd.Amount,
		Date:        cmd.Date,
	})

	return nil
}
