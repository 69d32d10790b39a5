package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvillalba/drinks-manager/internal/sale/domain"
	"github.com/dvillalba/drinks-manager/pkg/kvstore"
)

func newSale(drinkName, date string, quantity, pricePerUnit int) domain.NewSale {
	return domain.NewSale{
		DrinkID:      "drink-1",
		DrinkName:    drinkName,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		Date:         date,
	}
}

func TestSaleRepositoryAddComputesTotal(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSaleRepository(kvstore.NewMemoryStore())

	created := repo.Add(ctx, newSale("Mojito", "2026-08-29", 3, 15000))

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 45000, created.Total)

	sales := repo.List(ctx)
	require.Len(t, sales, 1)
	assert.Equal(t, 45000, sales[0].Total)
}

func TestSaleRepositoryListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSaleRepository(kvstore.NewMemoryStore())

	first := repo.Add(ctx, newSale("Mojito", "2026-08-29", 1, 15000))
	second := repo.Add(ctx, newSale("Caipirinha", "2026-08-29", 2, 15000))

	sales := repo.List(ctx)
	require.Len(t, sales, 2)
	assert.Equal(t, first.ID, sales[0].ID)
	assert.Equal(t, second.ID, sales[1].ID)
}

func TestSaleRepositoryUpdateRecomputesTotal(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSaleRepository(kvstore.NewMemoryStore())

	created := repo.Add(ctx, newSale("Mojito", "2026-08-29", 2, 15000))

	quantity := 5
	repo.Update(ctx, created.ID, domain.SaleUpdate{Quantity: &quantity})

	sales := repo.List(ctx)
	require.Len(t, sales, 1)
	assert.Equal(t, 5, sales[0].Quantity)
	assert.Equal(t, 75000, sales[0].Total)
}

func TestSaleRepositoryUpdateDateKeepsTotal(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSaleRepository(kvstore.NewMemoryStore())

	created := repo.Add(ctx, newSale("Mojito", "2026-08-29", 2, 15000))

	date := "2026-08-30"
	repo.Update(ctx, created.ID, domain.SaleUpdate{Date: &date})

	sales := repo.List(ctx)
	require.Len(t, sales, 1)
	assert.Equal(t, "2026-08-30", sales[0].Date)
	assert.Equal(t, 30000, sales[0].Total)
}

func TestSaleRepositoryUpdateAndDeleteUnknownIDAreNoOps(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSaleRepository(kvstore.NewMemoryStore())

	repo.Add(ctx, newSale("Mojito", "2026-08-29", 2, 15000))

	quantity := 9
	repo.Update(ctx, "missing-id", domain.SaleUpdate{Quantity: &quantity})
	repo.Delete(ctx, "missing-id")

	sales := repo.List(ctx)
	require.Len(t, sales, 1)
	assert.Equal(t, 2, sales[0].Quantity)
}

func TestSaleRepositorySalesByDate(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSaleRepository(kvstore.NewMemoryStore())

	repo.Add(ctx, newSale("Mojito", "2026-08-29", 1, 15000))
	repo.Add(ctx, newSale("Caipirinha", "2026-08-30", 2, 15000))
	repo.Add(ctx, newSale("Margarita", "2026-08-29", 3, 15000))

	matched := repo.SalesByDate(ctx, "2026-08-29")
	require.Len(t, matched, 2)
	assert.Equal(t, "Mojito", matched[0].DrinkName)
	assert.Equal(t, "Margarita", matched[1].DrinkName)

	assert.Empty(t, repo.SalesByDate(ctx, "2026-01-01"))
}

func TestSaleRepositoryDatesWithSalesMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSaleRepository(kvstore.NewMemoryStore())

	repo.Add(ctx, newSale("Mojito", "2026-08-29", 1, 15000))
	repo.Add(ctx, newSale("Mojito", "2026-08-27", 1, 15000))
	repo.Add(ctx, newSale("Mojito", "2026-08-30", 1, 15000))
	repo.Add(ctx, newSale("Mojito", "2026-08-29", 1, 15000))

	dates := repo.DatesWithSales(ctx)
	assert.Equal(t, []string{"2026-08-30", "2026-08-29", "2026-08-27"}, dates)
}

func TestSaleRepositoryTotalSales(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSaleRepository(kvstore.NewMemoryStore())

	assert.Equal(t, 0, repo.TotalSales(ctx))

	repo.Add(ctx, newSale("Mojito", "2026-08-29", 2, 15000))
	repo.Add(ctx, newSale("Caipirinha", "2026-08-30", 1, 15000))

	assert.Equal(t, 45000, repo.TotalSales(ctx))
}

func TestSaleRepositoryClear(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSaleRepository(kvstore.NewMemoryStore())

	repo.Add(ctx, newSale("Mojito", "2026-08-29", 2, 15000))
	repo.Clear(ctx)

	assert.Empty(t, repo.List(ctx))
	assert.Equal(t, 0, repo.TotalSales(ctx))
}
