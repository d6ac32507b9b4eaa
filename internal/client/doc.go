// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the idiotic command line tool.
//
// It builds the cobra command tree (image, text, endpoints, batch, version),
// resolves configuration from flags, environment and an optional JSON file,
// and runs every command through the service layer.
package client
