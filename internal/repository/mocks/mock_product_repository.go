package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

type MockProductRepository struct {
	mock.Mock
}

var _ repository.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) Create(ctx context.Context, in model.ProductCreate) (*model.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetMulti(ctx context.Context, page repository.Page) ([]model.Product, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, existing *model.Product, in model.ProductUpdate) (*model.Product, error) {
	args := m.Called(ctx, existing, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) ListByPriceRange(ctx context.Context, minPrice, maxPrice float64, page repository.Page) ([]model.Product, error) {
	args := m.Called(ctx, minPrice, maxPrice, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

type MockProductArrivalRepository struct {
	mock.Mock
}

var _ repository.ProductArrivalRepository = (*MockProductArrivalRepository)(nil)

func (m *MockProductArrivalRepository) Create(ctx context.Context, in model.ProductArrivalCreate) (*model.ProductArrival, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductArrival), args.Error(1)
}

func (m *MockProductArrivalRepository) Get(ctx context.Context, id int64) (*model.ProductArrival, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductArrival), args.Error(1)
}

func (m *MockProductArrivalRepository) GetMulti(ctx context.Context, page repository.Page) ([]model.ProductArrival, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductArrival), args.Error(1)
}

func (m *MockProductArrivalRepository) Update(ctx context.Context, existing *model.ProductArrival, in model.ProductArrivalUpdate) (*model.ProductArrival, error) {
	args := m.Called(ctx, existing, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductArrival), args.Error(1)
}

func (m *MockProductArrivalRepository) Delete(ctx context.Context, id int64) (*model.ProductArrival, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductArrival), args.Error(1)
}

func (m *MockProductArrivalRepository) ListByProduct(ctx context.Context, productID int64, page repository.Page) ([]model.ProductArrival, error) {
	args := m.Called(ctx, productID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductArrival), args.Error(1)
}

func (m *MockProductArrivalRepository) ListByDateRange(ctx context.Context, start, end model.Date, page repository.Page) ([]model.ProductArrival, error) {
	args := m.Called(ctx, start, end, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductArrival), args.Error(1)
}
