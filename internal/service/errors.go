// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Caller errors. Each one is the result of the request itself and is
// reported back to the caller; none of them is retried.
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrDuplicateAccount   = errors.New("account with this email already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAlreadyActive      = errors.New("account is already active")
	ErrInvalidCode        = errors.New("invalid code")
	ErrExpiredCode        = errors.New("code has expired")
	ErrNotActivated       = errors.New("account is not activated")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConcurrentUpdate is returned when another request modified the
	// account between read and write. The caller may resubmit.
	ErrConcurrentUpdate = errors.New("account was modified concurrently")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// ErrFatal marks failures that are not attributable to caller input: a
// broken random source, a hashing failure or a missing signing key. They
// surface as server errors.
var ErrFatal = errors.New("internal error")

var (
	ErrTokenCreationFailed  = fmt.Errorf("%w: token creation failed", ErrFatal)
	ErrCodeGenerationFailed = fmt.Errorf("%w: code generation failed", ErrFatal)
	ErrHashingFailed        = fmt.Errorf("%w: hashing failed", ErrFatal)

	ErrMissingTokenSignKey   = fmt.Errorf("%w: token sign key is not configured", ErrFatal)
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
