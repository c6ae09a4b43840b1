package gormrepo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRepository(newTestDB(t))

	created, err := repo.Create(ctx, model.StoreCreate{Name: "Main", Location: "Downtown"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetAbsent(t *testing.T) {
	repo := NewStoreRepository(newTestDB(t))

	got, err := repo.Get(context.Background(), 42)

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateOverwritesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRepository(newTestDB(t))
	created, err := repo.Create(ctx, model.StoreCreate{Name: "Main", Location: "Downtown"})
	require.NoError(t, err)

	existing, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	updated, err := repo.Update(ctx, existing, model.StoreUpdate{Location: ptr("Uptown")})
	require.NoError(t, err)
	assert.Equal(t, "Main", updated.Name)
	assert.Equal(t, "Uptown", updated.Location)
	assert.Equal(t, "Downtown", existing.Location)

	reloaded, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &model.Store{ID: created.ID, Name: "Main", Location: "Uptown"}, reloaded)
}

func TestUpdateCanSetZeroValue(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))
	created, err := repo.Create(ctx, model.ProductCreate{Name: "Tea", Price: ptr(3.5)})
	require.NoError(t, err)

	_, err = repo.Update(ctx, created, model.ProductUpdate{Price: ptr(0.0)})
	require.NoError(t, err)

	reloaded, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, reloaded.Price)
	assert.Equal(t, "Tea", reloaded.Name)
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRepository(newTestDB(t))
	created, err := repo.Create(ctx, model.StoreCreate{Name: "Main", Location: "Downtown"})
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	again, err := repo.Delete(ctx, created.ID)
	assert.NoError(t, err)
	assert.Nil(t, again)
}

func TestGetMultiPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRepository(newTestDB(t))

	var ids []int64
	for i := 1; i <= 15; i++ {
		s, err := repo.Create(ctx, model.StoreCreate{Name: fmt.Sprintf("Store %02d", i), Location: "Town"})
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}

	page, err := repo.GetMulti(ctx, repository.Page{Skip: 5, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page, 10)
	for i, s := range page {
		assert.Equal(t, ids[5+i], s.ID)
	}

	tail, err := repo.GetMulti(ctx, repository.Page{Skip: 12, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, tail, 3)

	empty, err := repo.GetMulti(ctx, repository.Page{Skip: 20, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestDeleteReferencedRecordIsRejected(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	stores := NewStoreRepository(db)
	inspections := NewStoreInspectionRepository(db)

	s, err := stores.Create(ctx, model.StoreCreate{Name: "Main", Location: "Downtown"})
	require.NoError(t, err)
	_, err = inspections.Create(ctx, model.StoreInspectionCreate{
		StoreID:        s.ID,
		InspectionDate: model.NewDate(2024, 1, 10),
		Result:         "pass",
	})
	require.NoError(t, err)

	_, err = stores.Delete(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)

	still, err := stores.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestCreateWithUnknownReferenceIsRejected(t *testing.T) {
	repo := NewStoreInspectionRepository(newTestDB(t))

	got, err := repo.Create(context.Background(), model.StoreInspectionCreate{
		StoreID:        999,
		InspectionDate: model.NewDate(2024, 1, 10),
		Result:         "pass",
	})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)
}

func TestNewBaseTableName(t *testing.T) {
	b := NewBase[model.Purchase, model.PurchaseCreate, model.PurchaseUpdate](nil)
	assert.Equal(t, "purchases", b.table)
}
