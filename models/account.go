// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is the only persistent entity of the service. It tracks a
// registered email address, its credential hashes and the activation state.
//
// Hash fields and the reset expiry are tagged `json:"-"` so that an Account
// can be written to clients as-is without leaking credential material.
type Account struct {
	// ID is assigned by the store at insert time and never changes.
	ID int64 `json:"id"`

	// Name is the display name supplied at registration.
	Name string `json:"name"`

	// Email is the unique account key.
	Email string `json:"email"`

	// Active is false until the activation code is confirmed. It never
	// goes back to false.
	Active bool `json:"active"`

	// PasswordHash is the bcrypt digest of the current password.
	PasswordHash string `json:"-"`

	// ActivationCodeHash is the bcrypt digest of the activation code sent
	// at registration. It stays in place after activation.
	ActivationCodeHash string `json:"-"`

	// ResetCodeHash is the bcrypt digest of the outstanding password reset
	// code, empty if no reset was ever requested.
	ResetCodeHash string `json:"-"`

	// ResetCodeExpiresAt is meaningful only while ResetCodeHash is set.
	ResetCodeExpiresAt *time.Time `json:"-"`

	// Version is bumped on every successful save and used for optimistic
	// locking.
	Version int64 `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table backing Account.
func (a Account) TableName() string {
	return "accounts"
}

// IsPending reports whether the account still awaits activation.
func (a Account) IsPending() bool {
	return !a.Active
}

// ResetCodeExpired reports whether the outstanding reset code is past its
// expiry at the given moment. An account without an expiry is treated as
// expired.
func (a Account) ResetCodeExpired(now time.Time) bool {
	if a.ResetCodeExpiresAt == nil {
		return true
	}

	return now.After(*a.ResetCodeExpiresAt)
}
