// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package idiotic is a client for the Idiotic image and text generation API.
//
// Every remote operation is described by a static [models.Endpoint] in the
// package endpoint table. A single dispatcher ([Client.Call]) looks the
// descriptor up, checks availability for the configured environment,
// validates and renders parameters, and delegates to one of two request
// primitives: a binary fetch for image endpoints and a text fetch for text
// styling endpoints.
//
// Basic usage:
//
//	c, err := idiotic.New(token, idiotic.WithEnvironment(models.Development))
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	png, err := c.Image(ctx, "blame", idiotic.Params{"name": "bob"})
//
// A Client is safe for concurrent use. Errors are per call and never leave the
// client in a broken state; see [RemoteRequestError],
// [EndpointUnavailableError], [InvalidParameterError] and [TypeMismatchError].
package idiotic
