// Package server runs the HTTP server of the blog list service.
//
// It owns the listener lifecycle: startup, stop signal handling and
// graceful shutdown with a bounded drain period.
package server
