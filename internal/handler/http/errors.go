// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingAccountID means the auth middleware did not run before a
	// protected handler.
	ErrMissingAccountID = errors.New("account id is missing in request context")
)
