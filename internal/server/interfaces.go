package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until a termination signal arrives or the server fails,
// and returns after the graceful shutdown has completed.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown() error
}
