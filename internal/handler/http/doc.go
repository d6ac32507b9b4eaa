// Package http implements the gateway's HTTP transport.
//
// It wires the chi router, the image, text and endpoint listing handlers,
// and the middleware chain (panic recovery, trace ids, access logging, gzip,
// Prometheus metrics) in front of the service layer.
package http
