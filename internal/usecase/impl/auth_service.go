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

// authService implements the AuthUsecase interface.
type authService struct {
	graph    service.ContentGraph
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	graph service.ContentGraph,
	tokenSvc service.TokenService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		graph:    graph,
		tokenSvc: tokenSvc,
		userRepo: userRepo,
		logger:   logger,
	}
}

// LoginURL returns the Facebook OAuth dialog URL.
func (srv *authService) LoginURL(state string) string {
	return srv.graph.BuildLoginURL(state)
}

// HandleCallback exchanges the authorization code for a user access token,
// stores the user profile, and mints a session token carrying the provider
// token so later requests can pass it down explicitly.
func (srv *authService) HandleCallback(ctx context.Context, code string) (*usecase.LoginOutput, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domainerrors.ErrOAuthCodeInvalid.WrapMessage("missing authorization code")
	}

	providerToken, err := srv.graph.ExchangeCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}
	if providerToken == "" {
		return nil, domainerrors.NewUpstreamError("token exchange returned no access token")
	}

	profile, err := srv.graph.FetchProfile(ctx, providerToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user profile")
	}

	err = srv.userRepo.Upsert(ctx, &entity.UserProfile{
		FacebookID: profile.ID,
		Name:       profile.Name,
		Email:      profile.Email,
		LastLogin:  time.Now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store user profile")
	}

	sessionToken, err := srv.tokenSvc.GenerateSessionToken(profile.ID, providerToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.logger.Info("user logged in", "facebookId", profile.ID)

	return &usecase.LoginOutput{
		SessionToken: sessionToken,
		User: &usecase.UserProfileOutput{
			ID:    profile.ID,
			Name:  profile.Name,
			Email: profile.Email,
		},
	}, nil
}
