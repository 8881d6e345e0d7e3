package repository

import (
	"context"

	"igpress/internal/domain/entity"
)

// UserRepository defines the operations for user profile persistence.
type UserRepository interface {
	// Upsert stores a user profile, fully replacing the mutable fields of
	// any existing record with the same Facebook id.
	Upsert(ctx context.Context, profile *entity.UserProfile) error
}
