package repository

import (
	"context"

	"scoutportal/internal/model"
)

// UserRepository defines data access for portal accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// FindByEmail returns the account registered under the (lowercased) email.
	// Missing rows surface as sql.ErrNoRows.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
