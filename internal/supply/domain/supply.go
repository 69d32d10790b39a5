package domain

import (
	"context"
	"time"
)

// SupplyType classifies an expenditure. The wire values and declaration
// order are fixed; reports iterate them in this order.
type SupplyType string

const (
	TypeBeverages SupplyType = "bebidas"
	TypeShelf     SupplyType = "estante"
	TypeIce       SupplyType = "hielo"
	TypeCups      SupplyType = "vasos"
	TypeOther     SupplyType = "otros"
)

// SupplyTypes lists every type in declaration order
var SupplyTypes = []SupplyType{TypeBeverages, TypeShelf, TypeIce, TypeCups, TypeOther}

var typeLabels = map[SupplyType]string{
	TypeBeverages: "Bebidas",
	TypeShelf:     "Estante para bebidas",
	TypeIce:       "Hielo",
	TypeCups:      "Vasos",
	TypeOther:     "Otros insumos",
}

// Label returns the display label for the type
func (t SupplyType) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid reports whether t is a known supply type
func (t SupplyType) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

// Supply represents a recorded expenditure
type Supply struct {
	ID          string     `json:"id"`
	Type        SupplyType `json:"type"`
	Description string     `json:"description"`
	Amount      int        `json:"amount"`
	Date        string     `json:"date"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewSupply holds the caller-provided fields for a new supply
type NewSupply struct {
	Type        SupplyType
	Description string
	Amount      int
	Date        string
}

// SupplyUpdate is a partial update; nil fields are left untouched
type SupplyUpdate struct {
	Type        *SupplyType
	Description *string
	Amount      *int
	Date        *string
}

// SupplyRepository defines the contract for supply data access.
// Mutations are atomic snapshot replacements; Update and Delete are
// silent no-ops when the id is absent, and persistence failures never
// surface (the repository falls back to its last known state).
type SupplyRepository interface {
	List(ctx context.Context) []Supply
	Add(ctx context.Context, input NewSupply) Supply
	Update(ctx context.Context, id string, upd SupplyUpdate)
	Delete(ctx context.Context, id string)
	Clear(ctx context.Context)
	TotalInvestment(ctx context.Context) int
	InvestmentByType(ctx context.Context) map[SupplyType]int
}
