package repository

import (
	"context"

	"igpress/internal/domain/entity"
)

// SummaryRepository defines the operations for the summarization audit log.
type SummaryRepository interface {
	// Append persists a new summary record.
	Append(ctx context.Context, record *entity.SummaryRecord) error
}
