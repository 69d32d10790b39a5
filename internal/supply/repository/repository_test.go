package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvillalba/drinks-manager/internal/supply/domain"
	"github.com/dvillalba/drinks-manager/pkg/kvstore"
)

// brokenStore fails every operation after it is tripped.
type brokenStore struct {
	inner   kvstore.Store
	tripped bool
}

func (s *brokenStore) Read(ctx context.Context, key string) ([]byte, error) {
	if s.tripped {
		return nil, errors.New("store unavailable")
	}
	return s.inner.Read(ctx, key)
}

func (s *brokenStore) Write(ctx context.Context, key string, value []byte) error {
	if s.tripped {
		return errors.New("store unavailable")
	}
	return s.inner.Write(ctx, key, value)
}

func (s *brokenStore) Remove(ctx context.Context, key string) error {
	if s.tripped {
		return errors.New("store unavailable")
	}
	return s.inner.Remove(ctx, key)
}

func TestSupplyRepositoryAddAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSupplyRepository(kvstore.NewMemoryStore())

	assert.Empty(t, repo.List(ctx))

	created := repo.Add(ctx, domain.NewSupply{
		Type:        domain.TypeIce,
		Description: "bolsa de hielo",
		Amount:      20000,
		Date:        "2026-08-29",
	})

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	supplies := repo.List(ctx)
	require.Len(t, supplies, 1)
	assert.Equal(t, created.ID, supplies[0].ID)
	assert.Equal(t, domain.TypeIce, supplies[0].Type)
	assert.Equal(t, "bolsa de hielo", supplies[0].Description)
	assert.Equal(t, 20000, supplies[0].Amount)
	assert.Equal(t, "2026-08-29", supplies[0].Date)
	assert.True(t, created.CreatedAt.Equal(supplies[0].CreatedAt))
}

func TestSupplyRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSupplyRepository(kvstore.NewMemoryStore())

	created := repo.Add(ctx, domain.NewSupply{Type: domain.TypeCups, Description: "vasos x100", Amount: 12000, Date: "2026-08-29"})

	amount := 15000
	repo.Update(ctx, created.ID, domain.SupplyUpdate{Amount: &amount})

	supplies := repo.List(ctx)
	require.Len(t, supplies, 1)
	assert.Equal(t, 15000, supplies[0].Amount)
	assert.Equal(t, "vasos x100", supplies[0].Description)
}

func TestSupplyRepositoryUpdateUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSupplyRepository(kvstore.NewMemoryStore())

	created := repo.Add(ctx, domain.NewSupply{Type: domain.TypeOther, Description: "varios", Amount: 5000, Date: "2026-08-29"})

	amount := 99999
	repo.Update(ctx, "missing-id", domain.SupplyUpdate{Amount: &amount})

	supplies := repo.List(ctx)
	require.Len(t, supplies, 1)
	assert.Equal(t, created.ID, supplies[0].ID)
	assert.Equal(t, 5000, supplies[0].Amount)
}

func TestSupplyRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSupplyRepository(kvstore.NewMemoryStore())

	first := repo.Add(ctx, domain.NewSupply{Type: domain.TypeIce, Amount: 1000, Date: "2026-08-29"})
	second := repo.Add(ctx, domain.NewSupply{Type: domain.TypeIce, Amount: 2000, Date: "2026-08-29"})

	repo.Delete(ctx, first.ID)
	repo.Delete(ctx, "missing-id")

	supplies := repo.List(ctx)
	require.Len(t, supplies, 1)
	assert.Equal(t, second.ID, supplies[0].ID)
}

func TestSupplyRepositoryInvestmentFolds(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSupplyRepository(kvstore.NewMemoryStore())

	repo.Add(ctx, domain.NewSupply{Type: domain.TypeBeverages, Amount: 50000, Date: "2026-08-29"})
	repo.Add(ctx, domain.NewSupply{Type: domain.TypeIce, Amount: 20000, Date: "2026-08-29"})
	repo.Add(ctx, domain.NewSupply{Type: domain.TypeIce, Amount: 10000, Date: "2026-08-30"})

	assert.Equal(t, 80000, repo.TotalInvestment(ctx))
	assert.Equal(t, map[domain.SupplyType]int{
		domain.TypeBeverages: 50000,
		domain.TypeIce:       30000,
	}, repo.InvestmentByType(ctx))
}

func TestSupplyRepositoryClear(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreSupplyRepository(kvstore.NewMemoryStore())

	repo.Add(ctx, domain.NewSupply{Type: domain.TypeIce, Amount: 1000, Date: "2026-08-29"})
	repo.Clear(ctx)

	assert.Empty(t, repo.List(ctx))
}

func TestSupplyRepositoryServesLastKnownStateOnReadFailure(t *testing.T) {
	ctx := context.Background()
	store := &brokenStore{inner: kvstore.NewMemoryStore()}
	repo := NewStoreSupplyRepository(store)

	created := repo.Add(ctx, domain.NewSupply{Type: domain.TypeIce, Amount: 1000, Date: "2026-08-29"})

	store.tripped = true

	supplies := repo.List(ctx)
	require.Len(t, supplies, 1)
	assert.Equal(t, created, supplies[0])
}

func TestSupplyRepositoryKeepsMutationsWhenWritesFail(t *testing.T) {
	ctx := context.Background()
	store := &brokenStore{inner: kvstore.NewMemoryStore()}
	repo := NewStoreSupplyRepository(store)

	store.tripped = true

	created := repo.Add(ctx, domain.NewSupply{Type: domain.TypeCups, Amount: 3000, Date: "2026-08-29"})

	supplies := repo.List(ctx)
	require.Len(t, supplies, 1)
	assert.Equal(t, created.ID, supplies[0].ID)
}

func TestSupplyRepositoryServesLastKnownStateOnCorruptedEntry(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewStoreSupplyRepository(store)

	created := repo.Add(ctx, domain.NewSupply{Type: domain.TypeIce, Amount: 1000, Date: "2026-08-29"})

	require.NoError(t, store.Write(ctx, StorageKey, []byte("{not json")))

	supplies := repo.List(ctx)
	require.Len(t, supplies, 1)
	assert.Equal(t, created.ID, supplies[0].ID)
}
