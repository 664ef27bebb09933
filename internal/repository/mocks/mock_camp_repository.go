package mocks

import (
	"context"

	"scoutportal/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCampRepository struct {
	mock.Mock
}

func (m *MockCampRepository) Create(ctx context.Context, camp *model.Camp) (*model.Camp, error) {
	args := m.Called(ctx, camp)
	if f, ok := args.Get(0).(func(context.Context, *model.Camp) *model.Camp); ok {
		return f(ctx, camp), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camp), args.Error(1)
}

func (m *MockCampRepository) FindByID(ctx context.Context, id string) (*model.Camp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camp), args.Error(1)
}

func (m *MockCampRepository) ListByStatus(ctx context.Context, status string) ([]model.Camp, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Camp), args.Error(1)
}

func (m *MockCampRepository) Update(ctx context.Context, camp *model.Camp) (*model.Camp, error) {
	args := m.Called(ctx, camp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camp), args.Error(1)
}

func (m *MockCampRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Camp, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camp), args.Error(1)
}

func (m *MockCampRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
