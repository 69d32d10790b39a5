package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dvillalba/drinks-manager/internal/drink/domain"
	"github.com/dvillalba/drinks-manager/pkg/identity"
	"github.com/dvillalba/drinks-manager/pkg/kvstore"
	"github.com/dvillalba/drinks-manager/pkg/logger"
)

// StorageKey is the persisted key for the drink catalog.
const StorageKey = "drinks-manager-drinks"

// StoreDrinkRepository keeps the drink catalog in a kvstore slot. Any
// read that observes an empty catalog seeds the defaults first, so a
// fresh install and a delete-everything both come back with the seven
// standard drinks (with new ids each time).
type StoreDrinkRepository struct {
	store kvstore.Store

	mu   sync.Mutex
	last []domain.DrinkType
}

// NewStoreDrinkRepository creates the repository and seeds the catalog
// if the collection has never been written.
func NewStoreDrinkRepository(store kvstore.Store) *StoreDrinkRepository {
	r := &StoreDrinkRepository{store: store}
	r.List(context.Background())
	return r
}

func (r *StoreDrinkRepository) List(ctx context.Context) []domain.DrinkType {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.listLocked(ctx)
}

func (r *StoreDrinkRepository) Active(ctx context.Context) []domain.DrinkType {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := []domain.DrinkType{}
	for _, d := range r.listLocked(ctx) {
		if d.Active {
			active = append(active, d)
		}
	}
	return active
}

func (r *StoreDrinkRepository) FindByID(ctx context.Context, id string) (domain.DrinkType, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.listLocked(ctx) {
		if d.ID == id {
			return d, true
		}
	}
	return domain.DrinkType{}, false
}

func (r *StoreDrinkRepository) Add(ctx context.Context, input domain.NewDrink) domain.DrinkType {
	r.mu.Lock()
	defer r.mu.Unlock()

	drink := domain.DrinkType{
		ID:        identity.NewID(),
		Name:      input.Name,
		Price:     input.Price,
		Active:    input.Active,
		CreatedAt: time.Now().UTC(),
	}

	r.save(ctx, append(r.listLocked(ctx), drink))
	return drink
}

func (r *StoreDrinkRepository) Update(ctx context.Context, id string, upd domain.DrinkUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drinks := r.listLocked(ctx)
	for i := range drinks {
		if drinks[i].ID != id {
			continue
		}
		if upd.Name != nil {
			drinks[i].Name = *upd.Name
		}
		if upd.Price != nil {
			drinks[i].Price = *upd.Price
		}
		if upd.Active != nil {
			drinks[i].Active = *upd.Active
		}
		r.save(ctx, drinks)
		return
	}
}

func (r *StoreDrinkRepository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drinks := r.listLocked(ctx)
	kept := drinks[:0]
	for _, d := range drinks {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(drinks) {
		return
	}
	r.save(ctx, kept)
}

func (r *StoreDrinkRepository) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = nil
	if err := r.store.Remove(ctx, StorageKey); err != nil {
		logger.Error(ctx).Err(err).Str("key", StorageKey).Msg("Failed to clear drinks")
	}
}

// listLocked loads the catalog, seeding the defaults when it is empty.
// Callers must hold the mutex.
func (r *StoreDrinkRepository) listLocked(ctx context.Context) []domain.DrinkType {
	drinks := r.load(ctx)
	if len(drinks) == 0 {
		drinks = r.seed(ctx)
	}
	return drinks
}

func (r *StoreDrinkRepository) seed(ctx context.Context) []domain.DrinkType {
	drinks := make([]domain.DrinkType, 0, len(domain.DefaultDrinks))
	for _, d := range domain.DefaultDrinks {
		drinks = append(drinks, domain.DrinkType{
			ID:        identity.NewID(),
			Name:      d.Name,
			Price:     d.Price,
			Active:    d.Active,
			CreatedAt: time.Now().UTC(),
		})
	}

	logger.Info(ctx).Int("count", len(drinks)).Msg("Seeded default drink catalog")
	r.save(ctx, drinks)
	return drinks
}

func (r *StoreDrinkRepository) load(ctx context.Context) []domain.DrinkType {
	raw, err := r.store.Read(ctx, StorageKey)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("key", StorageKey).Msg("Failed to read drinks, serving last known state")
		return append([]domain.DrinkType(nil), r.last...)
	}
	if raw == nil {
		return []domain.DrinkType{}
	}

	var drinks []domain.DrinkType
	if err := json.Unmarshal(raw, &drinks); err != nil {
		logger.Warn(ctx).Err(err).Str("key", StorageKey).Msg("Corrupted drinks entry, serving last known state")
		return append([]domain.DrinkType(nil), r.last...)
	}

	r.last = drinks
	return drinks
}

func (r *StoreDrinkRepository) save(ctx context.Context, drinks []domain.DrinkType) {
	r.last = drinks

	raw, err := json.Marshal(drinks)
	if err != nil {
		logger.Error(ctx).Err(err).Str("key", StorageKey).Msg("Failed to encode drinks")
		return
	}
	if err := r.store.Write(ctx, StorageKey, raw); err != nil {
		logger.Error(ctx).Err(err).Str("key", StorageKey).Msg("Failed to persist drinks, keeping in-memory state")
	}
}
