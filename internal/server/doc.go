// Package server runs the gateway's HTTP server.
//
// It binds the listener, serves until the context is cancelled or a stop
// signal arrives, then shuts down gracefully within the configured timeout
// and releases the resources registered with it, such as the API client.
package server
