// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. Any of them aborts startup.
var (
	// ErrInvalidAppConfigs indicates missing or out-of-range token, code or
	// hashing settings (for example, an empty token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates that no listen address was given.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMailConfigs indicates an SMTP host without a sender address
	// or a non-positive worker pool.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
