// Package delivery defines the outer surfaces that serve the catalog.
package delivery

import "context"

// Delivery is a long-running surface started by the application, e.g. the HTTP API.
type Delivery interface {
	Serve(ctx context.Context) error
}
