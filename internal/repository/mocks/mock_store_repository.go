package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

type MockStoreRepository struct {
	mock.Mock
}

var _ repository.StoreRepository = (*MockStoreRepository)(nil)

func (m *MockStoreRepository) Create(ctx context.Context, in model.StoreCreate) (*model.Store, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Store), args.Error(1)
}

func (m *MockStoreRepository) Get(ctx context.Context, id int64) (*model.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Store), args.Error(1)
}

func (m *MockStoreRepository) GetMulti(ctx context.Context, page repository.Page) ([]model.Store, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Store), args.Error(1)
}

func (m *MockStoreRepository) Update(ctx context.Context, existing *model.Store, in model.StoreUpdate) (*model.Store, error) {
	args := m.Called(ctx, existing, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Store), args.Error(1)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id int64) (*model.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Store), args.Error(1)
}

func (m *MockStoreRepository) ListByLocation(ctx context.Context, location string, page repository.Page) ([]model.Store, error) {
	args := m.Called(ctx, location, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Store), args.Error(1)
}

type MockStoreInspectionRepository struct {
	mock.Mock
}

var _ repository.StoreInspectionRepository = (*MockStoreInspectionRepository)(nil)

func (m *MockStoreInspectionRepository) Create(ctx context.Context, in model.StoreInspectionCreate) (*model.StoreInspection, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreInspection), args.Error(1)
}

func (m *MockStoreInspectionRepository) Get(ctx context.Context, id int64) (*model.StoreInspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreInspection), args.Error(1)
}

func (m *MockStoreInspectionRepository) GetMulti(ctx context.Context, page repository.Page) ([]model.StoreInspection, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoreInspection), args.Error(1)
}

func (m *MockStoreInspectionRepository) Update(ctx context.Context, existing *model.StoreInspection, in model.StoreInspectionUpdate) (*model.StoreInspection, error) {
	args := m.Called(ctx, existing, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreInspection), args.Error(1)
}

func (m *MockStoreInspectionRepository) Delete(ctx context.Context, id int64) (*model.StoreInspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreInspection), args.Error(1)
}

func (m *MockStoreInspectionRepository) ListByStore(ctx context.Context, storeID int64, page repository.Page) ([]model.StoreInspection, error) {
	args := m.Called(ctx, storeID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoreInspection), args.Error(1)
}

func (m *MockStoreInspectionRepository) ListByDateRange(ctx context.Context, start, end model.Date, page repository.Page) ([]model.StoreInspection, error) {
	args := m.Called(ctx, start, end, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoreInspection), args.Error(1)
}
