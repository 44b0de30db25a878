package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// Run serves requests until ctx is cancelled or the listener fails, then
	// shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests until ctx expires.
	Shutdown(ctx context.Context) error
}
