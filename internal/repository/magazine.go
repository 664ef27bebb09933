package repository

import (
	"context"

	"scoutportal/internal/model"
)

// MagazineRepository defines data access for magazine issues.
type MagazineRepository interface {
	Create(ctx context.Context, issue *model.MagazineIssue) (*model.MagazineIssue, error)

	// FindByID returns an issue by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.MagazineIssue, error)

	// ListAll returns every issue, newest publish date first.
	ListAll(ctx context.Context) ([]model.MagazineIssue, error)

	// UpdateMeta replaces the descriptive fields of an issue (not the blob
	// fields) and returns the stored row. Missing rows surface as sql.ErrNoRows.
	UpdateMeta(ctx context.Context, issue *model.MagazineIssue) (*model.MagazineIssue, error)

	// IncrementDownloads bumps the download counter by one.
	IncrementDownloads(ctx context.Context, id string) error

	// Delete removes an issue row by ID. It returns nil if the row was deleted
	// or did not exist; callers that need not-found semantics must look the
	// row up first.
	Delete(ctx context.Context, id string) error
}
