package server

import "context"

// Server defines the lifecycle contract for the gateway server.
type Server interface {
	// RunServer serves requests and blocks until ctx is cancelled or a stop
	// signal arrives, then shuts down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
