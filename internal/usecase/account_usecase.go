// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
)

// AccountUsecase defines the page listing and account resolution operations.
// The access token is always an explicit parameter: the caller (middleware)
// extracts it from the session, nothing here reads ambient state.
type AccountUsecase interface {
	// ListPages fetches the caller's Facebook pages and upserts them into
	// the directory.
	ListPages(ctx context.Context, accessToken string) ([]PageOutput, error)

	// ResolveAccounts walks the caller's pages and returns the Instagram
	// business accounts available for publishing, in page order. A single
	// page failing never aborts the others.
	ResolveAccounts(ctx context.Context, accessToken string) ([]LinkedAccountOutput, error)
}

// --- Output DTOs ---

// PageOutput is one Facebook page as returned to the caller.
type PageOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

// LinkedAccountOutput is one publishable Instagram account as returned to
// the caller.
type LinkedAccountOutput struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	PageID         string `json:"pageId"`
	PageName       string `json:"pageName"`
	AccessToken    string `json:"accessToken"`
}
