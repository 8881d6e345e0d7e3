package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"igpress/internal/domain/entity"
	domainerrors "igpress/internal/domain/errors"
	"igpress/internal/domain/service"
	mockRepo "igpress/internal/mocks/repository"
	mockService "igpress/internal/mocks/service"
	"igpress/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	graph    *mockService.MockContentGraph
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	graph := mockService.NewMockContentGraph(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(graph, userRepo, logger)

	return profileServiceFixtures{
		service:  service,
		graph:    graph,
		userRepo: userRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.graph.EXPECT().
		FetchProfile(ctx, "provider-token").
		Return(&service.GraphProfile{ID: "fb-1", Name: "Alex", Email: "alex@example.com"}, nil)
	fx.userRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Run(func(ctx context.Context, profile *entity.UserProfile) {
			assert.Equal(t, "fb-1", profile.FacebookID)
			assert.False(t, profile.LastLogin.IsZero())
		}).
		Return(nil)

	output, err := fx.service.GetProfile(ctx, "provider-token")

	require.NoError(t, err)
	assert.Equal(t, "fb-1", output.ID)
	assert.Equal(t, "Alex", output.Name)
	assert.Equal(t, "alex@example.com", output.Email)
}

func TestProfileService_GetProfile_NoToken(t *testing.T) {
	fx := createTestProfileService(t)

	output, err := fx.service.GetProfile(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestProfileService_GetProfile_UpstreamFails(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.graph.EXPECT().
		FetchProfile(ctx, "expired-token").
		Return(nil, domainerrors.NewUpstreamError("Error validating access token"))

	output, err := fx.service.GetProfile(ctx, "expired-token")

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
}
