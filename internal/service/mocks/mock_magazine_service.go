package mocks

import (
	"context"
	"io"

	"scoutportal/internal/model"
	"scoutportal/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMagazineService struct {
	mock.Mock
}

func (m *MockMagazineService) List(ctx context.Context) ([]model.MagazineIssue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MagazineIssue), args.Error(1)
}

func (m *MockMagazineService) Create(ctx context.Context, r io.Reader, in service.IssueInput, originalName, contentType string, size int64) (*model.MagazineIssue, error) {
	args := m.Called(ctx, r, in, originalName, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MagazineIssue), args.Error(1)
}

func (m *MockMagazineService) UpdateMeta(ctx context.Context, id string, in service.IssueInput) (*model.MagazineIssue, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MagazineIssue), args.Error(1)
}

func (m *MockMagazineService) Download(ctx context.Context, id string) (io.ReadCloser, *model.MagazineIssue, error) {
	args := m.Called(ctx, id)
	rc, _ := args.Get(0).(io.ReadCloser)
	issue, _ := args.Get(1).(*model.MagazineIssue)
	return rc, issue, args.Error(2)
}

func (m *MockMagazineService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
