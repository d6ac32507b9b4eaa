// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package idiotic

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-idiotic-api/internal/utils"
	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/rs/zerolog"
)

// Client dispatches endpoint calls to the remote API. Configuration is fixed
// at construction; the only shared resource is the HTTP session, which is
// safe for concurrent use.
type Client struct {
	token   string
	profile profile
	session *utils.HTTPClient

	logger   zerolog.Logger
	observer Observer

	closed atomic.Bool
}

// New constructs a Client for token. No network I/O happens here.
//
// Returns [ErrEmptyToken] if token is blank.
func New(token string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := resolveProfile(o.env)
	if o.baseURL != "" {
		p.baseURL = o.baseURL
	}

	var session *utils.HTTPClient
	if o.session != nil {
		session = utils.WrapHTTPClient(o.session)
	} else {
		session = utils.NewHTTPClient(o.timeout)
	}

	return &Client{
		token:    token,
		profile:  p,
		session:  session,
		logger:   o.logger,
		observer: o.observer,
	}, nil
}

// Environment returns the configured API deployment.
func (c *Client) Environment() models.Environment {
	return c.profile.env
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.profile.baseURL
}

// Lookup implements [Generator].
func (c *Client) Lookup(name string) (models.Endpoint, error) {
	ep, ok := Lookup(name)
	if !ok {
		return models.Endpoint{}, fmt.Errorf("%w: %q", ErrUnknownEndpoint, name)
	}
	return ep, nil
}

// Endpoints implements [Generator]. It returns the endpoints callable in the
// configured environment.
func (c *Client) Endpoints() []models.Endpoint {
	all := Endpoints()
	out := all[:0]
	for _, ep := range all {
		if ep.AvailableIn(c.profile.env) {
			out = append(out, ep)
		}
	}
	return out
}

// Close releases the HTTP session if the client owns it. Calls made after
// Close fail with [ErrClientClosed]. Close is idempotent.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.session.Close()
	return nil
}

// String never includes the token.
func (c *Client) String() string {
	return fmt.Sprintf("idiotic client (env=%s, url=%s)", c.profile.env, c.profile.baseURL)
}
