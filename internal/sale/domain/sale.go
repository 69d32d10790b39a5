package domain

import (
	"context"
	"time"
)

// Sale represents a single transaction. DrinkName and PricePerUnit are
// snapshots captured at sale time; later catalog edits must not alter
// historical records. Total always equals Quantity * PricePerUnit for
// the current field values.
type Sale struct {
	ID           string    `json:"id"`
	DrinkID      string    `json:"drinkId"`
	DrinkName    string    `json:"drinkName"`
	Quantity     int       `json:"quantity"`
	PricePerUnit int       `json:"pricePerUnit"`
	Total        int       `json:"total"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewSale holds the caller-provided fields for a new sale; Total is
// derived by the repository, never supplied.
type NewSale struct {
	DrinkID      string
	DrinkName    string
	Quantity     int
	PricePerUnit int
	Date         string
}

// SaleUpdate is a partial update; nil fields are left untouched. When
// Quantity or PricePerUnit changes, Total is recomputed in the same
// mutation.
type SaleUpdate struct {
	Quantity     *int
	PricePerUnit *int
	Date         *string
}

// SaleRepository defines the contract for sales data access
type SaleRepository interface {
	List(ctx context.Context) []Sale
	Add(ctx context.Context, input NewSale) Sale
	Update(ctx context.Context, id string, upd SaleUpdate)
	Delete(ctx context.Context, id string)
	Clear(ctx context.Context)
	SalesByDate(ctx context.Context, date string) []Sale
	DatesWithSales(ctx context.Context) []string
	TotalSales(ctx context.Context) int
}
