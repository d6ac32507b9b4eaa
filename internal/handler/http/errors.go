// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errRouteNotFound is reported for paths and methods the gateway does not
// serve.
var errRouteNotFound = errors.New("route not found")
