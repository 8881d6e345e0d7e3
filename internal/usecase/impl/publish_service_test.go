package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"igpress/config"
	"igpress/internal/domain/entity"
	domainerrors "igpress/internal/domain/errors"
	"igpress/internal/domain/repository"
	mockRepo "igpress/internal/mocks/repository"
	mockService "igpress/internal/mocks/service"
	"igpress/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// publishServiceFixtures holds all test dependencies for publish service tests.
type publishServiceFixtures struct {
	service         usecase.PublishUsecase
	graph           *mockService.MockContentGraph
	accountRepo     *mockRepo.MockLinkedAccountRepository
	pageRepo        *mockRepo.MockPageRepository
	publicationRepo *mockRepo.MockPublicationRepository
}

func createTestPublishService(t *testing.T) publishServiceFixtures {
	graph := mockService.NewMockContentGraph(t)
	accountRepo := mockRepo.NewMockLinkedAccountRepository(t)
	pageRepo := mockRepo.NewMockPageRepository(t)
	publicationRepo := mockRepo.NewMockPublicationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		MetaGraph: &config.MetaGraphConfig{
			DefaultImageURL: "https://cdn.example.com/placeholder.png",
		},
	}
	service := NewPublishService(graph, accountRepo, pageRepo, publicationRepo, cfg, logger)

	return publishServiceFixtures{
		service:         service,
		graph:           graph,
		accountRepo:     accountRepo,
		pageRepo:        pageRepo,
		publicationRepo: publicationRepo,
	}
}

func testLinkedAccount() *entity.LinkedAccount {
	return &entity.LinkedAccount{
		InstagramID: "ig-123",
		Name:        "Test Shop",
		Username:    "testshop",
		PageID:      "page-1",
		PageName:    "Test Shop Page",
		AccessToken: "stale-page-token",
	}
}

func testPage() *entity.Page {
	return &entity.Page{
		PageID:      "page-1",
		Name:        "Test Shop Page",
		AccessToken: "fresh-page-token",
	}
}

func TestPublishService_Publish_Success(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByID(ctx, "ig-123").Return(testLinkedAccount(), nil)
	fx.pageRepo.EXPECT().FindByID(ctx, "page-1").Return(testPage(), nil)
	fx.graph.EXPECT().
		CreateMediaContainer(ctx, "ig-123", "fresh-page-token", "https://example.com/photo.jpg", "hello world").
		Return("container-9", nil)
	fx.graph.EXPECT().
		PublishMediaContainer(ctx, "ig-123", "fresh-page-token", "container-9").
		Return("media-42", nil)
	fx.publicationRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.PublicationRecord")).
		Run(func(ctx context.Context, record *entity.PublicationRecord) {
			assert.Equal(t, "ig-123", record.InstagramAccountID)
			assert.Equal(t, "testshop", record.InstagramUsername)
			assert.Equal(t, "hello world", record.Content)
			assert.Equal(t, "media-42", record.MediaID)
			assert.Equal(t, entity.PublicationStatusPublished, record.Status)
			assert.False(t, record.Timestamp.IsZero())
		}).
		Return(nil)

	output, err := fx.service.Publish(ctx, &usecase.PublishInput{
		InstagramAccountID: "ig-123",
		Content:            "hello world",
		ImageURL:           "https://example.com/photo.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, "media-42", output.MediaID)
}

func TestPublishService_Publish_DefaultImageURL(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByID(ctx, "ig-123").Return(testLinkedAccount(), nil)
	fx.pageRepo.EXPECT().FindByID(ctx, "page-1").Return(testPage(), nil)
	fx.graph.EXPECT().
		CreateMediaContainer(ctx, "ig-123", "fresh-page-token", "https://cdn.example.com/placeholder.png", "caption").
		Return("container-1", nil)
	fx.graph.EXPECT().
		PublishMediaContainer(ctx, "ig-123", "fresh-page-token", "container-1").
		Return("media-1", nil)
	fx.publicationRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.PublicationRecord")).
		Return(nil)

	output, err := fx.service.Publish(ctx, &usecase.PublishInput{
		InstagramAccountID: "ig-123",
		Content:            "caption",
	})

	require.NoError(t, err)
	assert.Equal(t, "media-1", output.MediaID)
}

func TestPublishService_Publish_BlankContent(t *testing.T) {
	fx := createTestPublishService(t)

	output, err := fx.service.Publish(context.Background(), &usecase.PublishInput{
		InstagramAccountID: "ig-123",
		Content:            "   ",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestPublishService_Publish_BlankAccountID(t *testing.T) {
	fx := createTestPublishService(t)

	output, err := fx.service.Publish(context.Background(), &usecase.PublishInput{
		Content: "caption",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestPublishService_Publish_AccountNotFound(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByID(ctx, "ig-missing").
		Return(nil, repository.ErrLinkedAccountNotFound)

	output, err := fx.service.Publish(ctx, &usecase.PublishInput{
		InstagramAccountID: "ig-missing",
		Content:            "caption",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestPublishService_Publish_PageNotFound(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByID(ctx, "ig-123").Return(testLinkedAccount(), nil)
	fx.pageRepo.EXPECT().FindByID(ctx, "page-1").Return(nil, repository.ErrPageNotFound)

	output, err := fx.service.Publish(ctx, &usecase.PublishInput{
		InstagramAccountID: "ig-123",
		Content:            "caption",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

// A failed container create must never be followed by a commit attempt or a
// persisted record. The mock expectations enforce the absence of both calls.
func TestPublishService_Publish_ContainerCreateFails(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()

	upstreamErr := domainerrors.NewUpstreamError("Invalid image URL")
	fx.accountRepo.EXPECT().FindByID(ctx, "ig-123").Return(testLinkedAccount(), nil)
	fx.pageRepo.EXPECT().FindByID(ctx, "page-1").Return(testPage(), nil)
	fx.graph.EXPECT().
		CreateMediaContainer(ctx, "ig-123", "fresh-page-token", "https://cdn.example.com/placeholder.png", "caption").
		Return("", upstreamErr)

	output, err := fx.service.Publish(ctx, &usecase.PublishInput{
		InstagramAccountID: "ig-123",
		Content:            "caption",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), "Invalid image URL")
}

// A failed commit leaves the container orphaned upstream and records nothing.
func TestPublishService_Publish_CommitFails(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByID(ctx, "ig-123").Return(testLinkedAccount(), nil)
	fx.pageRepo.EXPECT().FindByID(ctx, "page-1").Return(testPage(), nil)
	fx.graph.EXPECT().
		CreateMediaContainer(ctx, "ig-123", "fresh-page-token", "https://cdn.example.com/placeholder.png", "caption").
		Return("container-9", nil)
	fx.graph.EXPECT().
		PublishMediaContainer(ctx, "ig-123", "fresh-page-token", "container-9").
		Return("", domainerrors.NewUpstreamError("Media not ready"))

	output, err := fx.service.Publish(ctx, &usecase.PublishInput{
		InstagramAccountID: "ig-123",
		Content:            "caption",
	})

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestPublishService_Publish_RecordingFails(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByID(ctx, "ig-123").Return(testLinkedAccount(), nil)
	fx.pageRepo.EXPECT().FindByID(ctx, "page-1").Return(testPage(), nil)
	fx.graph.EXPECT().
		CreateMediaContainer(ctx, "ig-123", "fresh-page-token", "https://cdn.example.com/placeholder.png", "caption").
		Return("container-9", nil)
	fx.graph.EXPECT().
		PublishMediaContainer(ctx, "ig-123", "fresh-page-token", "container-9").
		Return("media-42", nil)
	fx.publicationRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.PublicationRecord")).
		Return(domainerrors.NewPersistenceError(errors.New("connection reset"), "insert publication"))

	output, err := fx.service.Publish(ctx, &usecase.PublishInput{
		InstagramAccountID: "ig-123",
		Content:            "caption",
	})

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestPublishService_ListPublications_Success(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()

	records := []*entity.PublicationRecord{
		{InstagramAccountID: "ig-123", MediaID: "media-2"},
		{InstagramAccountID: "ig-123", MediaID: "media-1"},
	}
	fx.publicationRepo.EXPECT().ListByAccount(ctx, "ig-123", int64(20)).Return(records, nil)

	result, err := fx.service.ListPublications(ctx, "ig-123", 20)

	require.NoError(t, err)
	assert.Equal(t, records, result)
}

func TestPublishService_ListPublications_BlankAccountID(t *testing.T) {
	fx := createTestPublishService(t)

	result, err := fx.service.ListPublications(context.Background(), "  ", 20)

	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}
