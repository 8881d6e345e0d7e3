package entity

import (
	"time"
)

// UserProfile is the denormalized copy of a Facebook user profile,
// upserted on every successful profile fetch and keyed by the external
// Facebook user id.
type UserProfile struct {
	FacebookID string    // External user identifier assigned by the Graph API.
	Name       string    // Display name.
	Email      string    // Primary email, as reported by the Graph API.
	LastLogin  time.Time // When the profile was last fetched for this user.
}
