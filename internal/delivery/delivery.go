// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface the application exposes. Each delivery is
// started in its own goroutine and stopped via the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
