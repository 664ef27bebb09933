package repository

import (
	"context"

	"scoutportal/internal/model"
)

// NewsRepository defines data access for news articles.
type NewsRepository interface {
	Create(ctx context.Context, article *model.NewsArticle) (*model.NewsArticle, error)

	// FindByID returns an article by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.NewsArticle, error)

	// ListAll returns every article, newest published first.
	ListAll(ctx context.Context) ([]model.NewsArticle, error)

	// Update replaces the mutable fields of an article and returns the stored
	// row. Missing rows surface as sql.ErrNoRows.
	Update(ctx context.Context, article *model.NewsArticle) (*model.NewsArticle, error)

	// Delete removes an article by ID. Missing rows surface as sql.ErrNoRows.
	Delete(ctx context.Context, id string) error
}
