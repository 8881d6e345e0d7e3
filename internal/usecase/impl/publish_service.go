package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"igpress/config"
	"igpress/internal/domain/entity"
	domainerrors "igpress/internal/domain/errors"
	"igpress/internal/domain/repository"
	"igpress/internal/domain/service"
	"igpress/internal/usecase"

	"github.com/pkg/errors"
)

// publishService implements the PublishUsecase interface.
//
// The publish itself is a two-phase call against the content platform:
// first a media container is created (the platform validates format and
// caption limits at this point), then the container is committed into a
// live post. Commit is never attempted without a usable container id, and
// a commit failure leaves the orphaned container upstream untouched.
type publishService struct {
	graph           service.ContentGraph
	accountRepo     repository.LinkedAccountRepository
	pageRepo        repository.PageRepository
	publicationRepo repository.PublicationRepository
	defaultImageURL string
	logger          *slog.Logger
}

// NewPublishService is the constructor for publishService.
func NewPublishService(
	graph service.ContentGraph,
	accountRepo repository.LinkedAccountRepository,
	pageRepo repository.PageRepository,
	publicationRepo repository.PublicationRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PublishUsecase {
	var defaultImageURL string
	if cfg.MetaGraph != nil {
		defaultImageURL = cfg.MetaGraph.DefaultImageURL
	}

	return &publishService{
		graph:           graph,
		accountRepo:     accountRepo,
		pageRepo:        pageRepo,
		publicationRepo: publicationRepo,
		defaultImageURL: defaultImageURL,
		logger:          logger,
	}
}

// Publish validates the input, resolves the target account's credential from
// the directory, stages a media container, commits it, and records the outcome.
func (srv *publishService) Publish(ctx context.Context, input *usecase.PublishInput) (*usecase.PublishOutput, error) {
	if input == nil || strings.TrimSpace(input.InstagramAccountID) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("instagram account id is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("content is required")
	}

	// 1. Resolve the target account from the directory.
	account, err := srv.accountRepo.FindByID(ctx, input.InstagramAccountID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkedAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not in directory")
		}

		return nil, errors.Wrap(err, "failed to find linked account")
	}

	// 2. Resolve the owning page for its credential. The page record is the
	// most recently refreshed holder of the token, so it wins over the
	// account's cached copy.
	page, err := srv.pageRepo.FindByID(ctx, account.PageID)
	if err != nil {
		if errors.Is(err, repository.ErrPageNotFound) {
			return nil, domainerrors.ErrPageNotFound.WrapMessage("owning page not in directory")
		}

		return nil, errors.Wrap(err, "failed to find owning page")
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = srv.defaultImageURL
	}

	// 3. Container phase.
	containerID, err := srv.graph.CreateMediaContainer(ctx, account.InstagramID, page.AccessToken, imageURL, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create media container")
	}

	// 4. Commit phase. There is no compensating delete for the container if
	// this fails; it stays staged upstream.
	mediaID, err := srv.graph.PublishMediaContainer(ctx, account.InstagramID, page.AccessToken, containerID)
	if err != nil {
		srv.logger.Warn("media container left uncommitted upstream",
			"instagramId", account.InstagramID, "containerId", containerID, "error", err)

		return nil, errors.Wrap(err, "failed to publish media container")
	}

	// 5. Record the outcome. The post is already live at this point; a
	// failed append loses the audit entry, not the publish.
	record := &entity.PublicationRecord{
		InstagramAccountID: account.InstagramID,
		InstagramUsername:  account.Username,
		Content:            input.Content,
		MediaID:            mediaID,
		Timestamp:          time.Now(),
		Status:             entity.PublicationStatusPublished,
	}
	if err := srv.publicationRepo.Append(ctx, record); err != nil {
		srv.logger.Error("publish succeeded but recording it failed",
			"instagramId", account.InstagramID, "mediaId", mediaID, "error", err)

		return nil, errors.Wrap(err, "failed to record publication")
	}

	srv.logger.Info("published to Instagram",
		"instagramId", account.InstagramID, "mediaId", mediaID)

	return &usecase.PublishOutput{MediaID: mediaID}, nil
}

// ListPublications returns the most recent publication records for one
// account, newest first.
func (srv *publishService) ListPublications(ctx context.Context, instagramID string, limit int64) ([]*entity.PublicationRecord, error) {
	if strings.TrimSpace(instagramID) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("instagram account id is required")
	}

	records, err := srv.publicationRepo.ListByAccount(ctx, instagramID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list publications")
	}

	return records, nil
}
