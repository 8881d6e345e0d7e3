package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"igpress/internal/domain/entity"
	domainerrors "igpress/internal/domain/errors"
	mockRepo "igpress/internal/mocks/repository"
	mockService "igpress/internal/mocks/service"
	"igpress/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// summarizeServiceFixtures holds all test dependencies for summarize service tests.
type summarizeServiceFixtures struct {
	service     usecase.SummarizeUsecase
	summarizer  *mockService.MockSummarizer
	summaryRepo *mockRepo.MockSummaryRepository
}

func createTestSummarizeService(t *testing.T) summarizeServiceFixtures {
	summarizer := mockService.NewMockSummarizer(t)
	summaryRepo := mockRepo.NewMockSummaryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSummarizeService(summarizer, summaryRepo, logger)

	return summarizeServiceFixtures{
		service:     service,
		summarizer:  summarizer,
		summaryRepo: summaryRepo,
	}
}

func TestSummarizeService_Summarize_Success(t *testing.T) {
	fx := createTestSummarizeService(t)
	ctx := context.Background()

	longContent := "A very long article about the latest happenings in town."
	fx.summarizer.EXPECT().Summarize(ctx, longContent).Return("Town news, short.", nil)
	fx.summaryRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.SummaryRecord")).
		Run(func(ctx context.Context, record *entity.SummaryRecord) {
			assert.Equal(t, "fb-1", record.UserID)
			assert.Equal(t, longContent, record.OriginalContent)
			assert.Equal(t, "Town news, short.", record.SummarizedContent)
			assert.Equal(t, len(longContent), record.OriginalChars)
			assert.Equal(t, len("Town news, short."), record.SummarizedChars)
		}).
		Return(nil)

	output, err := fx.service.Summarize(ctx, "fb-1", longContent)

	require.NoError(t, err)
	assert.Equal(t, "Town news, short.", output.Summary)
	assert.Equal(t, len(longContent), output.OriginalChars)
	assert.Equal(t, len("Town news, short."), output.SummarizedChars)
}

func TestSummarizeService_Summarize_BlankContent(t *testing.T) {
	fx := createTestSummarizeService(t)

	output, err := fx.service.Summarize(context.Background(), "fb-1", "   ")

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestSummarizeService_Summarize_UpstreamFails(t *testing.T) {
	fx := createTestSummarizeService(t)
	ctx := context.Background()

	fx.summarizer.EXPECT().
		Summarize(ctx, "content").
		Return("", domainerrors.NewUpstreamError("model overloaded"))

	output, err := fx.service.Summarize(ctx, "fb-1", "content")

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
}

// A failed audit write must not cost the user their caption.
func TestSummarizeService_Summarize_RecordingFailureIsNotFatal(t *testing.T) {
	fx := createTestSummarizeService(t)
	ctx := context.Background()

	fx.summarizer.EXPECT().Summarize(ctx, "content").Return("short", nil)
	fx.summaryRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.SummaryRecord")).
		Return(domainerrors.NewPersistenceError(errors.New("connection reset"), "insert summary"))

	output, err := fx.service.Summarize(ctx, "fb-1", "content")

	require.NoError(t, err)
	assert.Equal(t, "short", output.Summary)
}
