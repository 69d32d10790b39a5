package command

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dvillalba/drinks-manager/internal/supply/domain"
)

var validate = validator.New()

// CreateSupplyCommand represents the command to record an expenditure
type CreateSupplyCommand struct {
	Type        domain.SupplyType `validate:"required"`
	Description string
	Amount      int    `validate:"required,gt=0"`
	Date        string `validate:"required,datetime=2006-01-02"`
}

// CreateSupplyHandler handles create supply commands
type CreateSupplyHandler struct {
	repo domain.SupplyRepository
}

// NewCreateSupplyHandler creates a new create supply handler
func NewCreateSupplyHandler(repo domain.SupplyRepository) *CreateSupplyHandler {
	return &CreateSupplyHandler{repo: repo}
}

// Handle executes the create supply command
func (h *CreateSupplyHandler) Handle(ctx context.Context, cmd CreateSupplyCommand) (*domain.Supply, error) {
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid supply: %w", err)
	}

	if !cmd.Type.Valid() {
		return nil, fmt.Errorf("unknown supply type %q", cmd.Type)
	}

	supply := h.repo.Add(ctx, domain.NewSupply{
		Type:        cmd.Type,
		Description: cmd.Description,
		Amount:      cmd.Amount,
		Date:        cmd.Date,
	})

	return &supply, nil
}
