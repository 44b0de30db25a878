// Package http implements the REST transport of the waste tracker.
//
// It wires routes, request handlers and middleware. Request tracing, access
// logging, request metrics, response compression and bearer authentication
// are handled here before requests are delegated to the service layer.
package http
