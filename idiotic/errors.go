// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package idiotic

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyToken        = errors.New("empty api token")
	ErrUnknownEndpoint   = errors.New("unknown endpoint")
	ErrClientClosed      = errors.New("client is closed")
	ErrMalformedResponse = errors.New("malformed api response")

	ErrMissingParameter = errors.New("missing required parameter")
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrOutOfRange       = errors.New("value must be between 0 and 255")
	ErrValueNotAllowed  = errors.New("value is not allowed")
)

// Sentinels a [RemoteRequestError] unwraps to, depending on its status code.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServerError  = errors.New("api server error")
)

// RemoteRequestError is returned when the API answers with any status other
// than 200. It is never retried.
type RemoteRequestError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("%s: api returned a non 200 code: %d", e.Endpoint, e.StatusCode)
}

// Unwrap maps the status code to one of the package sentinels so callers can
// use errors.Is without inspecting codes.
func (e *RemoteRequestError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrServerError
	default:
		return nil
	}
}

// EndpointUnavailableError is returned before any network call when a
// development-only endpoint (or parameter value) is used in production.
type EndpointUnavailableError struct {
	Endpoint string

	// Variant names the parameter value that is development-only, e.g.
	// "version=anime". Empty when the whole endpoint is development-only.
	Variant string
}

func (e *EndpointUnavailableError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("%s endpoint (%s) is disabled while in production", e.Endpoint, e.Variant)
	}
	return fmt.Sprintf("%s endpoint is disabled while in production", e.Endpoint)
}

// InvalidParameterError reports a parameter that is out of range, outside its
// allowed set, missing or unknown. Err holds the reason.
type InvalidParameterError struct {
	Endpoint string
	Param    string
	Value    any
	Err      error
}

func (e *InvalidParameterError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: parameter %q: %v", e.Endpoint, e.Param, e.Err)
	}
	return fmt.Sprintf("%s: parameter %q (%v): %v", e.Endpoint, e.Param, e.Value, e.Err)
}

func (e *InvalidParameterError) Unwrap() error {
	return e.Err
}

// TypeMismatchError reports a parameter value of the wrong Go type, e.g. a
// number where text was expected.
type TypeMismatchError struct {
	Endpoint string
	Param    string
	Expected string
	Got      any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: parameter %q must be %s, got %T", e.Endpoint, e.Param, e.Expected, e.Got)
}
