package usecase

import (
	"context"
)

// AuthUsecase defines the Facebook login flow.
type AuthUsecase interface {
	// LoginURL returns the Facebook OAuth dialog URL.
	LoginURL(state string) string

	// HandleCallback exchanges the authorization code for a user access
	// token, stores the user profile, and mints a session token.
	HandleCallback(ctx context.Context, code string) (*LoginOutput, error)
}

// LoginOutput carries the session token and the logged-in user's profile.
type LoginOutput struct {
	SessionToken string             `json:"sessionToken"`
	User         *UserProfileOutput `json:"user"`
}
