package mocks

import (
	"context"

	"scoutportal/internal/model"
	"scoutportal/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCampService struct {
	mock.Mock
}

func (m *MockCampService) ListApproved(ctx context.Context) ([]model.Camp, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Camp), args.Error(1)
}

func (m *MockCampService) ListAll(ctx context.Context) ([]model.Camp, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Camp), args.Error(1)
}

func (m *MockCampService) Get(ctx context.Context, id string) (*model.Camp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camp), args.Error(1)
}

func (m *MockCampService) Create(ctx context.Context, in service.CampInput, addedBy string) (*model.Camp, error) {
	args := m.Called(ctx, in, addedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camp), args.Error(1)
}

func (m *MockCampService) Update(ctx context.Context, id string, in service.CampInput) (*model.Camp, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camp), args.Error(1)
}

func (m *MockCampService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampService) Approve(ctx context.Context, id string) (*model.Camp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camp), args.Error(1)
}

func (m *MockCampService) Reject(ctx context.Context, id string) (*model.Camp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camp), args.Error(1)
}
