package repository

import (
	"context"

	"scoutportal/internal/model"
)

// CampRepository defines data access for camp sites.
type CampRepository interface {
	Create(ctx context.Context, camp *model.Camp) (*model.Camp, error)

	// FindByID returns a camp by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Camp, error)

	// ListByStatus returns camps with the given status, newest first.
	// An empty status returns every camp.
	ListByStatus(ctx context.Context, status string) ([]model.Camp, error)

	// Update replaces the mutable fields of a camp and returns the stored row.
	// Missing rows surface as sql.ErrNoRows.
	Update(ctx context.Context, camp *model.Camp) (*model.Camp, error)

	// UpdateStatus sets only the moderation status and returns the stored row.
	// Missing rows surface as sql.ErrNoRows.
	UpdateStatus(ctx context.Context, id, status string) (*model.Camp, error)

	// Delete removes a camp by ID. Missing rows surface as sql.ErrNoRows.
	Delete(ctx context.Context, id string) error
}
