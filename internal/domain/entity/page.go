// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Page represents a Facebook page the authenticated user manages.
// Pages are the bridge between a user login and the Instagram accounts
// that can actually publish: every Instagram business account is linked
// to exactly one page, and all publish calls are authenticated with the
// page-scoped access token, never the user token.
type Page struct {
	PageID      string    // External page identifier assigned by the Graph API.
	Name        string    // Display name of the page.
	AccessToken string    // Page-scoped access token. Treated as a secret.
	LastUpdated time.Time // When this record was last refreshed from upstream.
}
