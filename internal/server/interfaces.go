package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// Run serves until ctx is done or a server fails, then shuts every
	// server down.
	Run(ctx context.Context) error

	// RunServer calls Run with a context cancelled by SIGTERM, SIGINT or
	// SIGQUIT and logs the result.
	RunServer()

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown()
}
