package repository

import (
	"context"
	"errors"

	"igpress/internal/domain/entity"
)

// ErrLinkedAccountNotFound is returned when an Instagram account is not in the directory.
var ErrLinkedAccountNotFound = errors.New("linked account not found")

// LinkedAccountRepository defines the standard operations for Instagram
// account persistence.
type LinkedAccountRepository interface {
	// Upsert stores a linked account, fully replacing the mutable fields of
	// any existing record with the same external Instagram id.
	Upsert(ctx context.Context, account *entity.LinkedAccount) error

	// FindByID retrieves a single linked account by its external Instagram id.
	// Returns ErrLinkedAccountNotFound when no record exists.
	FindByID(ctx context.Context, instagramID string) (*entity.LinkedAccount, error)

	// List returns every linked account currently in the directory.
	List(ctx context.Context) ([]*entity.LinkedAccount, error)
}
