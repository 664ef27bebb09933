package mocks

import (
	"context"

	"scoutportal/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) Create(ctx context.Context, article *model.NewsArticle) (*model.NewsArticle, error) {
	args := m.Called(ctx, article)
	if f, ok := args.Get(0).(func(context.Context, *model.NewsArticle) *model.NewsArticle); ok {
		return f(ctx, article), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsArticle), args.Error(1)
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsArticle), args.Error(1)
}

func (m *MockNewsRepository) ListAll(ctx context.Context) ([]model.NewsArticle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsArticle), args.Error(1)
}

func (m *MockNewsRepository) Update(ctx context.Context, article *model.NewsArticle) (*model.NewsArticle, error) {
	args := m.Called(ctx, article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsArticle), args.Error(1)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
