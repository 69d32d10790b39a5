package repository

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/dvillalba/drinks-manager/internal/sale/domain"
	"github.com/dvillalba/drinks-manager/pkg/identity"
	"github.com/dvillalba/drinks-manager/pkg/kvstore"
	"github.com/dvillalba/drinks-manager/pkg/logger"
)

// StorageKey is the persisted key for the sales ledger.
const StorageKey = "drinks-manager-sales"

// StoreSaleRepository keeps the sales ledger in a kvstore slot. Total
// is derived here and nowhere else: Add computes it and Update
// recomputes it whenever quantity or unit price changes.
type StoreSaleRepository struct {
	store kvstore.Store

	mu   sync.Mutex
	last []domain.Sale
}

// NewStoreSaleRepository creates a new sale repository
func NewStoreSaleRepository(store kvstore.Store) *StoreSaleRepository {
	return &StoreSaleRepository{store: store}
}

func (r *StoreSaleRepository) List(ctx context.Context) []domain.Sale {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *StoreSaleRepository) Add(ctx context.Context, input domain.NewSale) domain.Sale {
	r.mu.Lock()
	defer r.mu.Unlock()

	sale := domain.Sale{
		ID:           identity.NewID(),
		DrinkID:      input.DrinkID,
		DrinkName:    input.DrinkName,
		Quantity:     input.Quantity,
		PricePerUnit: input.PricePerUnit,
		Total:        input.Quantity * input.PricePerUnit,
		Date:         input.Date,
		CreatedAt:    time.Now().UTC(),
	}

	r.save(ctx, append(r.load(ctx), sale))
	return sale
}

func (r *StoreSaleRepository) Update(ctx context.Context, id string, upd domain.SaleUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sales := r.load(ctx)
	for i := range sales {
		if sales[i].ID != id {
			continue
		}
		if upd.Quantity != nil {
			sales[i].Quantity = *upd.Quantity
		}
		if upd.PricePerUnit != nil {
			sales[i].PricePerUnit = *upd.PricePerUnit
		}
		if upd.Date != nil {
			sales[i].Date = *upd.Date
		}
		if upd.Quantity != nil || upd.PricePerUnit != nil {
			sales[i].Total = sales[i].Quantity * sales[i].PricePerUnit
		}
		r.save(ctx, sales)
		return
	}
}

func (r *StoreSaleRepository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sales := r.load(ctx)
	kept := sales[:0]
	for _, s := range sales {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(sales) {
		return
	}
	r.save(ctx, kept)
}

func (r *StoreSaleRepository) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = nil
	if err := r.store.Remove(ctx, StorageKey); err != nil {
		logger.Error(ctx).Err(err).Str("key", StorageKey).Msg("Failed to clear sales")
	}
}

func (r *StoreSaleRepository) SalesByDate(ctx context.Context, date string) []domain.Sale {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []domain.Sale{}
	for _, s := range r.load(ctx) {
		if s.Date == date {
			matched = append(matched, s)
		}
	}
	return matched
}

// DatesWithSales returns the distinct ledger dates, most recent first.
func (r *StoreSaleRepository) DatesWithSales(ctx context.Context) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool)
	dates := []string{}
	for _, s := range r.load(ctx) {
		if !seen[s.Date] {
			seen[s.Date] = true
			dates = append(dates, s.Date)
		}
	}

	// YYYY-MM-DD sorts chronologically as a plain string.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

func (r *StoreSaleRepository) TotalSales(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, s := range r.load(ctx) {
		total += s.Total
	}
	return total
}

func (r *StoreSaleRepository) load(ctx context.Context) []domain.Sale {
	raw, err := r.store.Read(ctx, StorageKey)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("key", StorageKey).Msg("Failed to read sales, serving last known state")
		return append([]domain.Sale(nil), r.last...)
	}
	if raw == nil {
		return []domain.Sale{}
	}

	var sales []domain.Sale
	if err := json.Unmarshal(raw, &sales); err != nil {
		logger.Warn(ctx).Err(err).Str("key", StorageKey).Msg("Corrupted sales entry, serving last known state")
		return append([]domain.Sale(nil), r.last...)
	}

	r.last = sales
	return sales
}

func (r *StoreSaleRepository) save(ctx context.Context, sales []domain.Sale) {
	r.last = sales

	raw, err := json.Marshal(sales)
	if err != nil {
		logger.Error(ctx).Err(err).Str("key", StorageKey).Msg("Failed to encode sales")
		return
	}
	if err := r.store.Write(ctx, StorageKey, raw); err != nil {
		logger.Error(ctx).Err(err).Str("key", StorageKey).Msg("Failed to persist sales, keeping in-memory state")
	}
}
