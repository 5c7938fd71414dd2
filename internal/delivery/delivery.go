// Package delivery holds the entry points (HTTP API, Pub/Sub push worker) started by cmd.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
