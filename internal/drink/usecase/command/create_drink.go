package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dvillalba/drinks-manager/internal/drink/domain"
)

var validate = validator.New()

// CreateDrinkCommand represents the command to add a catalog entry
type CreateDrinkCommand struct {
	Name   string `validate:"required"`
	Price  int    `validate:"required,gt=0"`
	Active bool
}

// CreateDrinkHandler handles create drink commands
type CreateDrinkHandler struct {
	repo domain.DrinkRepository
}

// NewCreateDrinkHandler creates a new create drink handler
func NewCreateDrinkHandler(repo domain.DrinkRepository) *CreateDrinkHandler {
	return &CreateDrinkHandler{repo: repo}
}

// Handle executes the create drink command
func (h *CreateDrinkHandler) Handle(ctx context.Context, cmd CreateDrinkCommand) (*domain.DrinkType, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid drink: %w", err)
	}

	drink := h.repo.Add(ctx, domain.NewDrink{
		Name:   cmd.Name,
		Price:  cmd.Price,
		Active: cmd.Active,
	})

	return &drink, nil
}
