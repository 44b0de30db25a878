// Package server runs the HTTP transport of the application: startup,
// request timeouts and graceful shutdown when the run context is cancelled.
package server
