package usecase

import (
	"context"
)

// ProfileUsecase defines the user profile fetch-and-store operation.
type ProfileUsecase interface {
	// GetProfile reads the caller's profile from the social graph and
	// upserts the denormalized copy.
	GetProfile(ctx context.Context, accessToken string) (*UserProfileOutput, error)
}

// UserProfileOutput is the caller-visible user profile.
type UserProfileOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
