package mocks

import (
	"context"

	"scoutportal/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockMagazineRepository struct {
	mock.Mock
}

func (m *MockMagazineRepository) Create(ctx context.Context, issue *model.MagazineIssue) (*model.MagazineIssue, error) {
	args := m.Called(ctx, issue)
	if f, ok := args.Get(0).(func(context.Context, *model.MagazineIssue) *model.MagazineIssue); ok {
		return f(ctx, issue), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MagazineIssue), args.Error(1)
}

func (m *MockMagazineRepository) FindByID(ctx context.Context, id string) (*model.MagazineIssue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MagazineIssue), args.Error(1)
}

func (m *MockMagazineRepository) ListAll(ctx context.Context) ([]model.MagazineIssue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MagazineIssue), args.Error(1)
}

func (m *MockMagazineRepository) UpdateMeta(ctx context.Context, issue *model.MagazineIssue) (*model.MagazineIssue, error) {
	args := m.Called(ctx, issue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MagazineIssue), args.Error(1)
}

func (m *MockMagazineRepository) IncrementDownloads(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMagazineRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
