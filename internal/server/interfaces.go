package server

// Server is the lifecycle contract for the transport servers run by this
// package.
type Server interface {
	// RunServer starts serving and blocks until shutdown is requested.
	RunServer()

	// Shutdown stops the server gracefully and releases its resources.
	Shutdown()
}
