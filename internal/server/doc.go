// Package server wires and runs the application's HTTP server.
//
// It owns the process lifecycle: startup, background workers, signal
// handling and graceful shutdown of the listener.
package server
