package service

import (
	"context"
)

// Summarizer defines the opaque text-to-text transform that shortens
// long-form content into an Instagram-sized caption.
type Summarizer interface {
	// Summarize returns a shortened version of content.
	Summarize(ctx context.Context, content string) (string, error)
}
