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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	graph    service.ContentGraph
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	graph service.ContentGraph,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		graph:    graph,
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile reads the caller's profile from the social graph and upserts
// the denormalized copy, stamping a fresh last-login time.
func (srv *profileService) GetProfile(ctx context.Context, accessToken string) (*usecase.UserProfileOutput, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("no access token provided")
	}

	profile, err := srv.graph.FetchProfile(ctx, accessToken)
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

	return &usecase.UserProfileOutput{
		ID:    profile.ID,
		Name:  profile.Name,
		Email: profile.Email,
	}, nil
}
