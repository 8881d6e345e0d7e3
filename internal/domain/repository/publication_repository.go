package repository

import (
	"context"

	"igpress/internal/domain/entity"
)

// PublicationRepository defines the operations for the append-only publish
// audit log. Records are never updated or deleted.
type PublicationRepository interface {
	// Append persists a new publication record.
	Append(ctx context.Context, record *entity.PublicationRecord) error

	// ListByAccount returns the most recent publication records for one
	// account, newest first, capped at limit.
	ListByAccount(ctx context.Context, instagramID string, limit int64) ([]*entity.PublicationRecord, error)
}
