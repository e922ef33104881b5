// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a long-running transport started from the entrypoint. Serve
// blocks until the server stops or fails; graceful shutdown happens through
// the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
