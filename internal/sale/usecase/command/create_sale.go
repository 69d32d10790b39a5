package command

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	drinkdomain "github.com/dvillalba/drinks-manager/internal/drink/domain"
	"github.com/dvillalba/drinks-manager/internal/sale/domain"
)

var validate = validator.New()

// CreateSaleCommand represents the command to log a sale
type CreateSaleCommand struct {
	DrinkID  string `validate:"required"`
	Quantity int    `validate:"required,gt=0"`
	Date     string `validate:"required,datetime=2006-01-02"`
}

// CreateSaleHandler handles create sale commands. It snapshots the
// drink's name and price at sale time; the ledger never re-joins the
// live catalog.
type CreateSaleHandler struct {
	sales  domain.SaleRepository
	drinks drinkdomain.DrinkRepository
}

// NewCreateSaleHandler creates a new create sale handler
func NewCreateSaleHandler(sales domain.SaleRepository, drinks drinkdomain.DrinkRepository) *CreateSaleHandler {
	return &CreateSaleHandler{sales: sales, drinks: drinks}
}

// Handle executes the create sale command
func (h *CreateSaleHandler) Handle(ctx context.Context, cmd CreateSaleCommand) (*domain.Sale, error) {
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid sale: %w", err)
	}

	drink, ok := h.drinks.FindByID(ctx, cmd.DrinkID)
	if !ok {
		return nil, fmt.Errorf("drink %s not found", cmd.DrinkID)
	}

	sale := h.sales.Add(ctx, domain.NewSale{
		DrinkID:      drink.ID,
		DrinkName:    drink.Name,
		Quantity:     cmd.Quantity,
		PricePerUnit: drink.Price,
		Date:         cmd.Date,
	})

	return &sale, nil
}
