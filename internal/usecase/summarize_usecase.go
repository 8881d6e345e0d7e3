package usecase

import (
	"context"
)

// SummarizeUsecase defines the caption summarization operation.
type SummarizeUsecase interface {
	// Summarize shortens content into an Instagram-sized caption and records
	// the request.
	Summarize(ctx context.Context, userID, content string) (*SummarizeOutput, error)
}

// SummarizeOutput carries the produced caption and character accounting.
type SummarizeOutput struct {
	Summary         string `json:"summary"`
	OriginalChars   int    `json:"originalChars"`
	SummarizedChars int    `json:"summarizedChars"`
}
