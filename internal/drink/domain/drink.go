package domain

import (
	"context"
	"time"
)

// DrinkType represents a catalog entry for a sellable drink
type DrinkType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int       `json:"price"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewDrink holds the caller-provided fields for a new catalog entry
type NewDrink struct {
	Name   string
	Price  int
	Active bool
}

// DrinkUpdate is a partial update; nil fields are left untouched
type DrinkUpdate struct {
	Name   *string
	Price  *int
	Active *bool
}

// DefaultDrinks is the catalog the repository seeds whenever it finds
// the collection empty. Each seeding run assigns fresh ids.
var DefaultDrinks = []NewDrink{
	{Name: "Caipirinha", Price: 15000, Active: true},
	{Name: "Mojito", Price: 15000, Active: true},
	{Name: "Margarita", Price: 15000, Active: true},
	{Name: "Piña colada", Price: 15000, Active: true},
	{Name: "Cuba libre", Price: 15000, Active: true},
	{Name: "Daiquiri de durazno", Price: 15000, Active: true},
	{Name: "Daiquiri de frutilla", Price: 15000, Active: true},
}

// DrinkRepository defines the contract for catalog data access.
// List seeds the default catalog when the collection is empty.
type DrinkRepository interface {
	List(ctx context.Context) []DrinkType
	Active(ctx context.Context) []DrinkType
	FindByID(ctx context.Context, id string) (DrinkType, bool)
	Add(ctx context.Context, input NewDrink) DrinkType
	Update(ctx context.Context, id string, upd DrinkUpdate)
	Delete(ctx context.Context, id string)
	Clear(ctx context.Context)
}
