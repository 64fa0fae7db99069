// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert fails because an
	// account with the same email is already stored. Both the SQL backends
	// (unique index on email) and the in-memory backend report it.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoAccountWasFound is returned when a lookup by email matches no row.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version read by the caller no longer matches the stored one, so
	// another request has modified the account in between.
	ErrVersionConflict = errors.New("account version conflict occurred")

	// ErrUnsupportedDSN is returned by [NewStorages] when the DSN scheme
	// selects no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into an account fails.
	ErrScanningRow = errors.New("failed to scan account row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan account rows")
)
