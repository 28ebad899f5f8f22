package server

// Server defines the lifecycle contract of the blog list server.
//
// Implementations block in [RunServer] until a stop signal arrives and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server, letting in-flight requests finish.
	Shutdown()
}
