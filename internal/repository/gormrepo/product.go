package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

// ProductRepository is the gorm implementation of repository.ProductRepository.
type ProductRepository struct {
	*Base[model.Product, model.ProductCreate, model.ProductUpdate]
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{Base: NewBase[model.Product, model.ProductCreate, model.ProductUpdate](db)}
}

func (r *ProductRepository) ListByPriceRange(ctx context.Context, minPrice, maxPrice float64, page repository.Page) ([]model.Product, error) {
	return r.list(ctx, "ListByPriceRange", page, func(q *gorm.DB) *gorm.DB {
		return q.Where("price BETWEEN ? AND ?", minPrice, maxPrice)
	})
}

// ProductArrivalRepository is the gorm implementation of repository.ProductArrivalRepository.
type ProductArrivalRepository struct {
	*Base[model.ProductArrival, model.ProductArrivalCreate, model.ProductArrivalUpdate]
}

var _ repository.ProductArrivalRepository = (*ProductArrivalRepository)(nil)

func NewProductArrivalRepository(db *gorm.DB) *ProductArrivalRepository {
	return &ProductArrivalRepository{
		Base: NewBase[model.ProductArrival, model.ProductArrivalCreate, model.ProductArrivalUpdate](db),
	}
}

func (r *ProductArrivalRepository) ListByProduct(ctx context.Context, productID int64, page repository.Page) ([]model.ProductArrival, error) {
	return r.list(ctx, "ListByProduct", page, func(q *gorm.DB) *gorm.DB {
		return q.Where("product_id = ?", productID)
	})
}

func (r *ProductArrivalRepository) ListByDateRange(ctx context.Context, start, end model.Date, page repository.Page) ([]model.ProductArrival, error) {
	return r.list(ctx, "ListByDateRange", page, func(q *gorm.DB) *gorm.DB {
		return q.Where("arrival_date BETWEEN ? AND ?", start, end)
	})
}
