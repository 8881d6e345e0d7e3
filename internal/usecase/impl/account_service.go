// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"igpress/internal/domain/entity"
	domainerrors "igpress/internal/domain/errors"
	"igpress/internal/domain/repository"
	"igpress/internal/domain/service"
	"igpress/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	graph       service.ContentGraph
	pageRepo    repository.PageRepository
	accountRepo repository.LinkedAccountRepository
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	graph service.ContentGraph,
	pageRepo repository.PageRepository,
	accountRepo repository.LinkedAccountRepository,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		graph:       graph,
		pageRepo:    pageRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// ListPages fetches the caller's Facebook pages and upserts them into the
// directory.
func (srv *accountService) ListPages(ctx context.Context, accessToken string) ([]usecase.PageOutput, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("no access token provided")
	}

	pages, err := srv.graph.FetchPages(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch pages")
	}

	now := time.Now()
	outputs := make([]usecase.PageOutput, 0, len(pages))
	for _, page := range pages {
		err := srv.pageRepo.Upsert(ctx, &entity.Page{
			PageID:      page.ID,
			Name:        page.Name,
			AccessToken: page.AccessToken,
			LastUpdated: now,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to store page")
		}

		outputs = append(outputs, usecase.PageOutput{
			ID:          page.ID,
			Name:        page.Name,
			AccessToken: page.AccessToken,
		})
	}

	return outputs, nil
}

// ResolveAccounts walks the caller's pages and returns the Instagram business
// accounts available for publishing, in page order.
//
// The per-page fan-out is sequential and failure-isolated: a page whose
// linked-account lookup or detail fetch fails contributes nothing and is
// only logged; the remaining pages are still processed. Only the initial
// pages call is fatal.
func (srv *accountService) ResolveAccounts(ctx context.Context, accessToken string) ([]usecase.LinkedAccountOutput, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("no access token provided")
	}

	pages, err := srv.graph.FetchPages(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch pages")
	}

	outputs := make([]usecase.LinkedAccountOutput, 0, len(pages))
	for _, page := range pages {
		account, resolved := srv.resolvePage(ctx, page)
		if !resolved {
			continue
		}

		outputs = append(outputs, usecase.LinkedAccountOutput{
			ID:             account.InstagramID,
			Name:           account.Name,
			Username:       account.Username,
			ProfilePicture: account.ProfilePicture,
			PageID:         account.PageID,
			PageName:       account.PageName,
			AccessToken:    account.AccessToken,
		})
	}

	return outputs, nil
}

// resolvePage handles one page of the fan-out. All calls authenticate with
// the page's own token, never the caller's. Returns false when the page
// contributes no account, for whatever reason.
func (srv *accountService) resolvePage(ctx context.Context, page service.GraphPage) (*entity.LinkedAccount, bool) {
	ref, err := srv.graph.FetchLinkedAccountRef(ctx, page.ID, page.AccessToken)
	if err != nil {
		srv.logger.Warn("failed to look up linked account for page",
			"pageId", page.ID, "pageName", page.Name, "error", err)

		return nil, false
	}
	if ref == nil {
		srv.logger.Debug("page has no linked Instagram account", "pageId", page.ID)

		return nil, false
	}

	details, err := srv.graph.FetchAccountDetails(ctx, ref.ID, page.AccessToken)
	if err != nil {
		srv.logger.Warn("failed to fetch Instagram account details",
			"instagramId", ref.ID, "pageId", page.ID, "error", err)

		return nil, false
	}

	// The extended name field is not always populated; fall back to the
	// page-scope name from the reference.
	name := details.Name
	if name == "" {
		name = ref.Name
	}

	account := &entity.LinkedAccount{
		InstagramID:    details.ID,
		Name:           name,
		Username:       details.Username,
		ProfilePicture: details.ProfilePictureURL,
		PageID:         page.ID,
		PageName:       page.Name,
		AccessToken:    page.AccessToken,
		LastUpdated:    time.Now(),
	}

	err = srv.pageRepo.Upsert(ctx, &entity.Page{
		PageID:      page.ID,
		Name:        page.Name,
		AccessToken: page.AccessToken,
		LastUpdated: account.LastUpdated,
	})
	if err != nil {
		srv.logger.Warn("failed to store page", "pageId", page.ID, "error", err)

		return nil, false
	}

	if err := srv.accountRepo.Upsert(ctx, account); err != nil {
		srv.logger.Warn("failed to store linked account",
			"instagramId", account.InstagramID, "error", err)

		return nil, false
	}

	return account, true
}
