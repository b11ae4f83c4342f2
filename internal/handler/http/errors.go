// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Messages written by the transport layer itself, before a request reaches
// a service.
const (
	msgInvalidRequestBody = "invalid request body"
	msgRouteNotFound      = "not found"
)

// errNoUserInContext is logged when an authenticated route runs without the
// auth middleware having attached a user.
var errNoUserInContext = errors.New("no authenticated user in request context")
