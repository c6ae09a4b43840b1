package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

type MockCustomerRepository struct {
	mock.Mock
}

var _ repository.CustomerRepository = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) Create(ctx context.Context, in model.CustomerCreate) (*model.Customer, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetMulti(ctx context.Context, page repository.Page) ([]model.Customer, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, existing *model.Customer, in model.CustomerUpdate) (*model.Customer, error) {
	args := m.Called(ctx, existing, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

type MockPurchaseRepository struct {
	mock.Mock
}

var _ repository.PurchaseRepository = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) Create(ctx context.Context, in model.PurchaseCreate) (*model.Purchase, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Get(ctx context.Context, id int64) (*model.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) GetMulti(ctx context.Context, page repository.Page) ([]model.Purchase, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Update(ctx context.Context, existing *model.Purchase, in model.PurchaseUpdate) (*model.Purchase, error) {
	args := m.Called(ctx, existing, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id int64) (*model.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListByCustomer(ctx context.Context, customerID int64, page repository.Page) ([]model.Purchase, error) {
	args := m.Called(ctx, customerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListByProduct(ctx context.Context, productID int64, page repository.Page) ([]model.Purchase, error) {
	args := m.Called(ctx, productID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListByDateRange(ctx context.Context, start, end model.Date, page repository.Page) ([]model.Purchase, error) {
	args := m.Called(ctx, start, end, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Purchase), args.Error(1)
}
