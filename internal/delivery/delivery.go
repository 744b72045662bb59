// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// lifecycle. Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
