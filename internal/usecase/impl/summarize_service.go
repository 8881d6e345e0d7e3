package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"igpress/internal/domain/entity"
	domainerrors "igpress/internal/domain/errors"
	"igpress/internal/domain/repository"
	"igpress/internal/domain/service"
	"igpress/internal/usecase"

	"github.com/pkg/errors"
)

// summarizeService implements the SummarizeUsecase interface.
type summarizeService struct {
	summarizer  service.Summarizer
	summaryRepo repository.SummaryRepository
	logger      *slog.Logger
}

// NewSummarizeService is the constructor for summarizeService.
func NewSummarizeService(
	summarizer service.Summarizer,
	summaryRepo repository.SummaryRepository,
	logger *slog.Logger,
) usecase.SummarizeUsecase {
	return &summarizeService{
		summarizer:  summarizer,
		summaryRepo: summaryRepo,
		logger:      logger,
	}
}

// Summarize shortens content into an Instagram-sized caption and records the
// request. The record is best-effort: the user keeps the caption even when
// the audit write fails.
func (srv *summarizeService) Summarize(ctx context.Context, userID, content string) (*usecase.SummarizeOutput, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("content is required")
	}

	summary, err := srv.summarizer.Summarize(ctx, content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize content")
	}

	record := &entity.SummaryRecord{
		UserID:            userID,
		OriginalContent:   content,
		SummarizedContent: summary,
		OriginalChars:     utf8.RuneCountInString(content),
		SummarizedChars:   utf8.RuneCountInString(summary),
		Timestamp:         time.Now(),
	}
	if err := srv.summaryRepo.Append(ctx, record); err != nil {
		srv.logger.Warn("failed to record summarization", "userId", userID, "error", err)
	}

	return &usecase.SummarizeOutput{
		Summary:         summary,
		OriginalChars:   record.OriginalChars,
		SummarizedChars: record.SummarizedChars,
	}, nil
}
