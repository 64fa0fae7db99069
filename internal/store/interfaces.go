// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the durable account store consumed by the credential
// service. Accounts are keyed by email.
//
// Implementations must guarantee that FindAccountByEmail observes the most
// recent successful CreateAccount or UpdateAccount for the same email.
type AccountRepository interface {
	// FindAccountByEmail returns the account stored under email or
	// [ErrNoAccountWasFound].
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)

	// CreateAccount inserts a new account and returns it with the
	// store-assigned ID, Version and timestamps populated. A second account
	// with the same email fails with [ErrEmailAlreadyExists].
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// UpdateAccount persists the mutable fields of account if the stored
	// version still equals account.Version, and returns the account with the
	// incremented version. Otherwise it fails with [ErrVersionConflict].
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// ListAccounts returns every stored account ordered by ID.
	ListAccounts(ctx context.Context) ([]models.Account, error)
}

// Pinger reports whether the underlying storage is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
