package entity

import (
	"time"
)

// LinkedAccount represents an Instagram business account connected to a
// Facebook page. It is the actual target of a publish operation.
//
// PageID is a reference, not an embedded relation: credential resolution
// looks the page up by id at publish time. The cached AccessToken is a copy
// of the owning page's token taken at the last refresh; it is reused as-is
// without any freshness check.
type LinkedAccount struct {
	InstagramID    string    // External Instagram account identifier.
	Name           string    // Display name. Falls back to the page-scope name when absent upstream.
	Username       string    // Instagram handle.
	ProfilePicture string    // URL of the profile image.
	PageID         string    // Identifier of the owning Facebook page.
	PageName       string    // Display name of the owning page, denormalized for the UI.
	AccessToken    string    // Cached copy of the owning page's access token.
	LastUpdated    time.Time // When this record was last refreshed from upstream.
}
