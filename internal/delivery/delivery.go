// Package delivery holds the entry points that drive the usecases: the HTTP API,
// the push worker and the background reconciler.
package delivery

import "context"

// Delivery is a long-running entry point started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
