package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/dvillalba/drinks-manager/internal/drink/domain"
)

// UpdateDrinkCommand represents a partial catalog update
type UpdateDrinkCommand struct {
	ID     string `validate:"required"`
	Name   *string
	Price  *int `validate:"omitempty,gt=0"`
	Active *bool
}

// UpdateDrinkHandler handles update drink commands
type UpdateDrinkHandler struct {
	repo domain.DrinkRepository
}

// NewUpdateDrinkHandler creates a new update drink handler
func NewUpdateDrinkHandler(repo domain.DrinkRepository) *UpdateDrinkHandler {
	return &UpdateDrinkHandler{repo: repo}
}

// Handle executes the update drink command
func (h *UpdateDrinkHandler) Handle(ctx context.Context, cmd UpdateDrinkCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("invalid drink update: %w", err)
	}

	if cmd.Name != nil {
		trimmed := strings.TrimSpace(*cmd.Name)
		if trimmed == "" {
			return fmt.Errorf("drink name cannot be empty")
		}
		cmd.Name = &trimmed
	}

	h.repo.Update(ctx, cmd.ID, domain.DrinkUpdate{
		Name:   cmd.Name,
		Price:  cmd.Price,
		Active: cmd.Active,
	})

	return nil
}
