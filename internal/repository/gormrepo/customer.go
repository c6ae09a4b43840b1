package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

// CustomerRepository is the gorm implementation of repository.CustomerRepository.
type CustomerRepository struct {
	*Base[model.Customer, model.CustomerCreate, model.CustomerUpdate]
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{Base: NewBase[model.Customer, model.CustomerCreate, model.CustomerUpdate](db)}
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return r.first(ctx, "GetByEmail", "email = ?", email)
}

// PurchaseRepository is the gorm implementation of repository.PurchaseRepository.
type PurchaseRepository struct {
	*Base[model.Purchase, model.PurchaseCreate, model.PurchaseUpdate]
}

var _ repository.PurchaseRepository = (*PurchaseRepository)(nil)

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{Base: NewBase[model.Purchase, model.PurchaseCreate, model.PurchaseUpdate](db)}
}

func (r *PurchaseRepository) ListByCustomer(ctx context.Context, customerID int64, page repository.Page) ([]model.Purchase, error) {
	return r.list(ctx, "ListByCustomer", page, func(q *gorm.DB) *gorm.DB {
		return q.Where("customer_id = ?", customerID)
	})
}

func (r *PurchaseRepository) ListByProduct(ctx context.Context, productID int64, page repository.Page) ([]model.Purchase, error) {
	return r.list(ctx, "ListByProduct", page, func(q *gorm.DB) *gorm.DB {
		return q.Where("product_id = ?", productID)
	})
}

func (r *PurchaseRepository) ListByDateRange(ctx context.Context, start, end model.Date, page repository.Page) ([]model.Purchase, error) {
	return r.list(ctx, "ListByDateRange", page, func(q *gorm.DB) *gorm.DB {
		return q.Where("purchase_date BETWEEN ? AND ?", start, end)
	})
}
