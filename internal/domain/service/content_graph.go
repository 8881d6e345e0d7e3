// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"context"
)

// GraphProfile is the user profile subset read from the social graph.
type GraphProfile struct {
	ID    string
	Name  string
	Email string
}

// GraphPage is one page as returned by the pages-listing endpoint.
// The access token is page-scoped and authorizes all per-page calls.
type GraphPage struct {
	ID          string
	Name        string
	AccessToken string
}

// LinkedAccountRef is the reference a page carries to its connected
// Instagram business account. Nil when the page has none.
type LinkedAccountRef struct {
	ID       string
	Name     string
	Username string
}

// LinkedAccountDetails are the extended profile fields of an Instagram
// business account.
type LinkedAccountDetails struct {
	ID                string
	Name              string
	Username          string
	ProfilePictureURL string
}

// ContentGraph defines the read/write operations this service needs from
// the Facebook/Instagram Graph API. Every method takes the credential it
// authenticates with as an explicit parameter; nothing reads ambient
// session state.
type ContentGraph interface {
	// BuildLoginURL constructs the Facebook OAuth dialog URL the user is sent
	// to for granting page and publishing permissions.
	BuildLoginURL(state string) string

	// ExchangeCode exchanges an OAuth authorization code for a user access token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile reads the authenticated user's profile.
	FetchProfile(ctx context.Context, userToken string) (*GraphProfile, error)

	// FetchPages lists the pages the user manages, in upstream order.
	FetchPages(ctx context.Context, userToken string) ([]GraphPage, error)

	// FetchLinkedAccountRef looks up the Instagram business account connected
	// to a page, authenticated with the page's own token. Returns nil when
	// the page has no linked account.
	FetchLinkedAccountRef(ctx context.Context, pageID, pageToken string) (*LinkedAccountRef, error)

	// FetchAccountDetails reads the extended profile of an Instagram account.
	FetchAccountDetails(ctx context.Context, instagramID, pageToken string) (*LinkedAccountDetails, error)

	// CreateMediaContainer stages media and caption upstream and returns the
	// container id. The container is not live until published.
	CreateMediaContainer(ctx context.Context, instagramID, pageToken, imageURL, caption string) (string, error)

	// PublishMediaContainer commits a staged container into a live post and
	// returns the media id.
	PublishMediaContainer(ctx context.Context, instagramID, pageToken, containerID string) (string, error)
}
