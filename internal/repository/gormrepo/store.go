package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

// StoreRepository is the gorm implementation of repository.StoreRepository.
type StoreRepository struct {
	*Base[model.Store, model.StoreCreate, model.StoreUpdate]
}

var _ repository.StoreRepository = (*StoreRepository)(nil)

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{Base: NewBase[model.Store, model.StoreCreate, model.StoreUpdate](db)}
}

// ListByLocation matches the whole location, ignoring case.
func (r *StoreRepository) ListByLocation(ctx context.Context, location string, page repository.Page) ([]model.Store, error) {
	return r.list(ctx, "ListByLocation", page, func(q *gorm.DB) *gorm.DB {
		return q.Where("LOWER(location) = LOWER(?)", location)
	})
}

// StoreInspectionRepository is the gorm implementation of repository.StoreInspectionRepository.
type StoreInspectionRepository struct {
	*Base[model.StoreInspection, model.StoreInspectionCreate, model.StoreInspectionUpdate]
}

var _ repository.StoreInspectionRepository = (*StoreInspectionRepository)(nil)

func NewStoreInspectionRepository(db *gorm.DB) *StoreInspectionRepository {
	return &StoreInspectionRepository{
		Base: NewBase[model.StoreInspection, model.StoreInspectionCreate, model.StoreInspectionUpdate](db),
	}
}

func (r *StoreInspectionRepository) ListByStore(ctx context.Context, storeID int64, page repository.Page) ([]model.StoreInspection, error) {
	return r.list(ctx, "ListByStore", page, func(q *gorm.DB) *gorm.DB {
		return q.Where("store_id = ?", storeID)
	})
}

func (r *StoreInspectionRepository) ListByDateRange(ctx context.Context, start, end model.Date, page repository.Page) ([]model.StoreInspection, error) {
	return r.list(ctx, "ListByDateRange", page, func(q *gorm.DB) *gorm.DB {
		return q.Where("inspection_date BETWEEN ? AND ?", start, end)
	})
}
