package usecase

import (
	"context"

	"igpress/internal/domain/entity"
)

// PublishUsecase defines the two-phase publish pipeline and the publication
// history read.
type PublishUsecase interface {
	// Publish validates the input, resolves the target account's credential
	// from the directory, stages a media container upstream, commits it, and
	// records the outcome.
	Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error)

	// ListPublications returns the most recent publication records for one
	// account, newest first.
	ListPublications(ctx context.Context, instagramID string, limit int64) ([]*entity.PublicationRecord, error)
}

// --- Input/Output DTOs ---

// PublishInput defines the data required to publish a caption.
// ImageURL is optional; when empty the configured default image is used.
type PublishInput struct {
	InstagramAccountID string `json:"instagramAccountId"`
	Content            string `json:"content"`
	ImageURL           string `json:"imageUrl,omitempty"`
}

// PublishOutput carries the media id of the committed post.
type PublishOutput struct {
	MediaID string `json:"mediaId"`
}
