package repository

import (
	"context"

	"scoutportal/internal/model"
)

// DocumentRepository defines data access for document metadata records using
// SQL queries only. No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row
	// (may include values set by the DB).
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID. Missing rows surface as
	// sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListAll returns every document record, newest upload first.
	ListAll(ctx context.Context) ([]model.Document, error)

	// Delete removes a document row by ID. It returns nil if the row was
	// deleted or did not exist; callers that need not-found semantics must
	// look the row up first.
	Delete(ctx context.Context, id string) error
}
