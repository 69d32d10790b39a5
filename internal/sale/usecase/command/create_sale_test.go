package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drinkdomain "github.com/dvillalba/drinks-manager/internal/drink/domain"
	drinkrepo "github.com/dvillalba/drinks-manager/internal/drink/repository"
	salerepo "github.com/dvillalba/drinks-manager/internal/sale/repository"
	"github.com/dvillalba/drinks-manager/pkg/kvstore"
)

func newHandlers(t *testing.T) (*CreateSaleHandler, *drinkrepo.StoreDrinkRepository, *salerepo.StoreSaleRepository) {
	t.Helper()
	drinks := drinkrepo.NewStoreDrinkRepository(kvstore.NewMemoryStore())
	sales := salerepo.NewStoreSaleRepository(kvstore.NewMemoryStore())
	return NewCreateSaleHandler(sales, drinks), drinks, sales
}

func TestCreateSaleSnapshotsDrinkNameAndPrice(t *testing.T) {
	ctx := context.Background()
	handler, drinks, _ := newHandlers(t)

	drink := drinks.Add(ctx, drinkdomain.NewDrink{Name: "Gin tonic", Price: 18000, Active: true})

	sale, err := handler.Handle(ctx, CreateSaleCommand{
		DrinkID:  drink.ID,
		Quantity: 2,
		Date:     "2026-08-29",
	})
	require.NoError(t, err)

	assert.Equal(t, drink.ID, sale.DrinkID)
	assert.Equal(t, "Gin tonic", sale.DrinkName)
	assert.Equal(t, 18000, sale.PricePerUnit)
	assert.Equal(t, 36000, sale.Total)
	assert.Equal(t, "2026-08-29", sale.Date)
}

func TestCreateSaleSnapshotSurvivesCatalogEdits(t *testing.T) {
	ctx := context.Background()
	handler, drinks, sales := newHandlers(t)

	drink := drinks.Add(ctx, drinkdomain.NewDrink{Name: "Gin tonic", Price: 18000, Active: true})

	_, err := handler.Handle(ctx, CreateSaleCommand{DrinkID: drink.ID, Quantity: 1, Date: "2026-08-29"})
	require.NoError(t, err)

	newName := "Gin tonic premium"
	newPrice := 25000
	drinks.Update(ctx, drink.ID, drinkdomain.DrinkUpdate{Name: &newName, Price: &newPrice})

	ledger := sales.List(ctx)
	require.Len(t, ledger, 1)
	assert.Equal(t, "Gin tonic", ledger[0].DrinkName)
	assert.Equal(t, 18000, ledger[0].PricePerUnit)
}

func TestCreateSaleUnknownDrink(t *testing.T) {
	ctx := context.Background()
	handler, _, sales := newHandlers(t)

	_, err := handler.Handle(ctx, CreateSaleCommand{DrinkID: "missing-id", Quantity: 1, Date: "2026-08-29"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, sales.List(ctx))
}

func TestCreateSaleValidation(t *testing.T) {
	ctx := context.Background()
	handler, drinks, _ := newHandlers(t)

	drink := drinks.List(ctx)[0]

	cases := []struct {
		name string
		cmd  CreateSaleCommand
	}{
		{"missing drink id", CreateSaleCommand{Quantity: 1, Date: "2026-08-29"}},
		{"zero quantity", CreateSaleCommand{DrinkID: drink.ID, Quantity: 0, Date: "2026-08-29"}},
		{"negative quantity", CreateSaleCommand{DrinkID: drink.ID, Quantity: -2, Date: "2026-08-29"}},
		{"missing date", CreateSaleCommand{DrinkID: drink.ID, Quantity: 1}},
		{"malformed date", CreateSaleCommand{DrinkID: drink.ID, Quantity: 1, Date: "29/08/2026"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(ctx, tc.cmd)
			assert.Error(t, err)
		})
	}
}
