// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer. Together they form the account directory:
// denormalized copies of upstream records, keyed by external ids.
package repository

import (
	"context"
	"errors"

	"igpress/internal/domain/entity"
)

// ErrPageNotFound is a domain-specific error returned when a page is not found.
var ErrPageNotFound = errors.New("page not found")

// PageRepository defines the standard operations for page persistence.
type PageRepository interface {
	// Upsert stores a page, fully replacing the mutable fields of any
	// existing record with the same external page id.
	Upsert(ctx context.Context, page *entity.Page) error

	// FindByID retrieves a single page by its external page id.
	// Returns ErrPageNotFound when no record exists.
	FindByID(ctx context.Context, pageID string) (*entity.Page, error)
}
