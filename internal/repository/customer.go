package repository

import (
	"context"

	"storeapi/internal/model"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Repository[model.Customer, model.CustomerCreate, model.CustomerUpdate]

	// GetByEmail returns the customer registered with email, or nil when there is none.
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
}

// PurchaseRepository defines data access for purchases.
type PurchaseRepository interface {
	Repository[model.Purchase, model.PurchaseCreate, model.PurchaseUpdate]

	ListByCustomer(ctx context.Context, customerID int64, page Page) ([]model.Purchase, error)
	ListByProduct(ctx context.Context, productID int64, page Page) ([]model.Purchase, error)
	ListByDateRange(ctx context.Context, start, end model.Date, page Page) ([]model.Purchase, error)
}
