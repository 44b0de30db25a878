// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when
	// the request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware having stored a user id.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
