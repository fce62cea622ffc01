// Package delivery defines the contract every transport-facing server
// (HTTP, workers) fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by main and stopped through its
// Fx lifecycle hook.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
