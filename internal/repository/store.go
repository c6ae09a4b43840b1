package repository

import (
	"context"

	"storeapi/internal/model"
)

// StoreRepository defines data access for stores.
type StoreRepository interface {
	Repository[model.Store, model.StoreCreate, model.StoreUpdate]

	// ListByLocation returns stores whose location equals location, ignoring case.
	ListByLocation(ctx context.Context, location string, page Page) ([]model.Store, error)
}

// StoreInspectionRepository defines data access for store inspections.
type StoreInspectionRepository interface {
	Repository[model.StoreInspection, model.StoreInspectionCreate, model.StoreInspectionUpdate]

	ListByStore(ctx context.Context, storeID int64, page Page) ([]model.StoreInspection, error)

	// ListByDateRange returns inspections dated between start and end, both inclusive.
	ListByDateRange(ctx context.Context, start, end model.Date, page Page) ([]model.StoreInspection, error)
}
