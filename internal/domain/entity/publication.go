package entity

import (
	"time"
)

// PublicationStatus is the terminal state of a publish attempt.
// Only successful publishes are recorded, so "published" is currently the
// only value ever written.
type PublicationStatus string

const (
	// PublicationStatusPublished marks a post that was committed upstream.
	PublicationStatusPublished PublicationStatus = "published"
)

// PublicationRecord is an append-only audit entry for a successful publish.
// Records are immutable once created.
type PublicationRecord struct {
	InstagramAccountID string            // Target account the post was published to.
	InstagramUsername  string            // Handle of the target account, denormalized at write time.
	Content            string            // Caption text that was published.
	MediaID            string            // Media identifier returned by the commit phase.
	Timestamp          time.Time         // When the publish completed.
	Status             PublicationStatus // Outcome; see PublicationStatus.
}
