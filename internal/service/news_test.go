package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scoutportal/internal/model"
	repomocks "scoutportal/internal/repository/mocks"
)

func validNewsInput() NewsInput {
	return NewsInput{
		Title:      "Winter Camp Registrations Open",
		Content:    "Registrations for the regional winter camp are now open.",
		Excerpt:    "Registrations are open.",
		Author:     "Redazione",
		Categories: []string{"events"},
	}
}

func TestNewsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success defaults published date", func(t *testing.T) {
		mRepo := new(repomocks.MockNewsRepository)
		svc := NewNewsService(mRepo)
		mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.NewsArticle")).
			Return(func(_ context.Context, article *model.NewsArticle) *model.NewsArticle { return article }, nil)

		article, err := svc.Create(ctx, validNewsInput())
		require.NoError(t, err)
		assert.False(t, article.PublishedAt.IsZero())
		assert.NotEmpty(t, article.ID)
	})

	t.Run("explicit published date wins", func(t *testing.T) {
		mRepo := new(repomocks.MockNewsRepository)
		svc := NewNewsService(mRepo)
		mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.NewsArticle")).
			Return(func(_ context.Context, article *model.NewsArticle) *model.NewsArticle { return article }, nil)

		when := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		in := validNewsInput()
		in.PublishedAt = &when

		article, err := svc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, when, article.PublishedAt)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*NewsInput)
		}{
			{"blank title", func(in *NewsInput) { in.Title = "  " }},
			{"missing content", func(in *NewsInput) { in.Content = "" }},
			{"missing author", func(in *NewsInput) { in.Author = "" }},
			{"missing excerpt", func(in *NewsInput) { in.Excerpt = "" }},
			{"no categories", func(in *NewsInput) { in.Categories = nil }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mRepo := new(repomocks.MockNewsRepository)
				svc := NewNewsService(mRepo)
				in := validNewsInput()
				tt.mutate(&in)

				_, err := svc.Create(ctx, in)
				assert.ErrorIs(t, err, ErrInvalidInput)
				mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestNewsGet(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repomocks.MockNewsRepository)
	svc := NewNewsService(mRepo)

	mRepo.On("FindByID", mock.Anything, "n1").Return(&model.NewsArticle{ID: "n1"}, nil)
	mRepo.On("FindByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

	article, err := svc.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "n1", article.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewsUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps published date when omitted", func(t *testing.T) {
		mRepo := new(repomocks.MockNewsRepository)
		svc := NewNewsService(mRepo)
		published := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
		mRepo.On("FindByID", mock.Anything, "n1").
			Return(&model.NewsArticle{ID: "n1", PublishedAt: published}, nil)
		mRepo.On("Update", mock.Anything, mock.MatchedBy(func(article *model.NewsArticle) bool {
			return article.ID == "n1" && article.PublishedAt.Equal(published)
		})).Return(&model.NewsArticle{ID: "n1", PublishedAt: published}, nil)

		_, err := svc.Update(ctx, "n1", validNewsInput())
		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mRepo := new(repomocks.MockNewsRepository)
		svc := NewNewsService(mRepo)
		mRepo.On("FindByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, "missing", validNewsInput())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNewsDelete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repomocks.MockNewsRepository)
	svc := NewNewsService(mRepo)

	mRepo.On("Delete", mock.Anything, "n1").Return(nil)
	mRepo.On("Delete", mock.Anything, "missing").Return(sql.ErrNoRows)

	require.NoError(t, svc.Delete(ctx, "n1"))
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}
