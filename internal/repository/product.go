package repository

import (
	"context"

	"storeapi/internal/model"
)

// ProductRepository defines data access for products.
type ProductRepository interface {
	Repository[model.Product, model.ProductCreate, model.ProductUpdate]

	// ListByPriceRange returns products priced between minPrice and maxPrice, both inclusive.
	ListByPriceRange(ctx context.Context, minPrice, maxPrice float64, page Page) ([]model.Product, error)
}

// ProductArrivalRepository defines data access for product arrivals.
type ProductArrivalRepository interface {
	Repository[model.ProductArrival, model.ProductArrivalCreate, model.ProductArrivalUpdate]

	ListByProduct(ctx context.Context, productID int64, page Page) ([]model.ProductArrival, error)
	ListByDateRange(ctx context.Context, start, end model.Date, page Page) ([]model.ProductArrival, error)
}
