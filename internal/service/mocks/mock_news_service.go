package mocks

import (
	"context"

	"scoutportal/internal/model"
	"scoutportal/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) List(ctx context.Context) ([]model.NewsArticle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsArticle), args.Error(1)
}

func (m *MockNewsService) Get(ctx context.Context, id string) (*model.NewsArticle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsArticle), args.Error(1)
}

func (m *MockNewsService) Create(ctx context.Context, in service.NewsInput) (*model.NewsArticle, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsArticle), args.Error(1)
}

func (m *MockNewsService) Update(ctx context.Context, id string, in service.NewsInput) (*model.NewsArticle, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsArticle), args.Error(1)
}

func (m *MockNewsService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
