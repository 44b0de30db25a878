// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("no HTTP handler or address configured")
	errServe         = errors.New("HTTP server stopped unexpectedly")
	errShutdown      = errors.New("HTTP server shutdown failed")
)
