package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dvillalba/drinks-manager/internal/supply/domain"
	"github.com/dvillalba/drinks-manager/pkg/identity"
	"github.com/dvillalba/drinks-manager/pkg/kvstore"
	"github.com/dvillalba/drinks-manager/pkg/logger"
)

// StorageKey is the persisted key for the supplies collection.
const StorageKey = "drinks-manager-supplies"

// StoreSupplyRepository keeps the supplies collection in a kvstore slot.
// Every mutation is a read-modify-write of the whole collection under
// the mutex, so readers only ever observe complete snapshots.
type StoreSupplyRepository struct {
	store kvstore.Store

	mu   sync.Mutex
	last []domain.Supply // last known good snapshot, served when the store fails
}

// NewStoreSupplyRepository creates a new supply repository
func NewStoreSupplyRepository(store kvstore.Store) *StoreSupplyRepository {
	return &StoreSupplyRepository{store: store}
}

func (r *StoreSupplyRepository) List(ctx context.Context) []domain.Supply {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *StoreSupplyRepository) Add(ctx context.Context, input domain.NewSupply) domain.Supply {
	r.mu.Lock()
	defer r.mu.Unlock()

	supply := domain.Supply{
		ID:          identity.NewID(),
		Type:        input.Type,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
		CreatedAt:   time.Now().UTC(),
	}

	r.save(ctx, append(r.load(ctx), supply))
	return supply
}

func (r *StoreSupplyRepository) Update(ctx context.Context, id string, upd domain.SupplyUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	supplies := r.load(ctx)
	for i := range supplies {
		if supplies[i].ID != id {
			continue
		}
		if upd.Type != nil {
			supplies[i].Type = *upd.Type
		}
		if upd.Description != nil {
			supplies[i].Description = *upd.Description
		}
		if upd.Amount != nil {
			supplies[i].Amount = *upd.Amount
		}
		if upd.Date != nil {
			supplies[i].Date = *upd.Date
		}
		r.save(ctx, supplies)
		return
	}
	// Absent id: a stale reference from the UI must not fail the flow.
}

func (r *StoreSupplyRepository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	supplies := r.load(ctx)
	kept := supplies[:0]
	for _, s := range supplies {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(supplies) {
		return
	}
	r.save(ctx, kept)
}

func (r *StoreSupplyRepository) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = nil
	if err := r.store.Remove(ctx, StorageKey); err != nil {
		logger.Error(ctx).Err(err).Str("key", StorageKey).Msg("Failed to clear supplies")
	}
}

func (r *StoreSupplyRepository) TotalInvestment(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, s := range r.load(ctx) {
		total += s.Amount
	}
	return total
}

func (r *StoreSupplyRepository) InvestmentByType(ctx context.Context) map[domain.SupplyType]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	byType := make(map[domain.SupplyType]int)
	for _, s := range r.load(ctx) {
		byType[s.Type] += s.Amount
	}
	return byType
}

// load reads the collection, falling back to the last known snapshot on
// storage failure. Callers must hold the mutex.
func (r *StoreSupplyRepository) load(ctx context.Context) []domain.Supply {
	raw, err := r.store.Read(ctx, StorageKey)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("key", StorageKey).Msg("Failed to read supplies, serving last known state")
		return append([]domain.Supply(nil), r.last...)
	}
	if raw == nil {
		return []domain.Supply{}
	}

	var supplies []domain.Supply
	if err := json.Unmarshal(raw, &supplies); err != nil {
		logger.Warn(ctx).Err(err).Str("key", StorageKey).Msg("Corrupted supplies entry, serving last known state")
		return append([]domain.Supply(nil), r.last...)
	}

	r.last = supplies
	return supplies
}

// save replaces the persisted collection. A write failure keeps the
// in-memory snapshot so nothing is lost until the next successful write.
// Callers must hold the mutex.
func (r *StoreSupplyRepository) save(ctx context.Context, supplies []domain.Supply) {
	r.last = supplies

	raw, err := json.Marshal(supplies)
	if err != nil {
		logger.Error(ctx).Err(err).Str("key", StorageKey).Msg("Failed to encode supplies")
		return
	}
	if err := r.store.Write(ctx, StorageKey, raw); err != nil {
		logger.Error(ctx).Err(err).Str("key", StorageKey).Msg("Failed to persist supplies, keeping in-memory state")
	}
}
