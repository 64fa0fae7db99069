// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService drives the account lifecycle: registration, activation
// by emailed code, authentication into a bearer token and the password reset
// flow.
//
// Inputs are expected to be shape-validated by the caller. Empty required
// fields are still rejected with [ErrValidationFailed].
type CredentialService interface {
	// Register creates a pending account and sends its activation code.
	Register(ctx context.Context, name, email, password string) (models.Account, error)

	// Activate turns a pending account active if activationCode verifies.
	Activate(ctx context.Context, email, activationCode string) (models.Account, error)

	// Authenticate returns a signed token for an active account whose
	// password verifies.
	Authenticate(ctx context.Context, email, password string) (models.Token, error)

	// RequestReset issues a time-limited reset code and sends it.
	RequestReset(ctx context.Context, email string) (models.Account, error)

	// ConfirmReset replaces the password if resetCode verifies and has not
	// expired.
	ConfirmReset(ctx context.Context, email, resetCode, newPassword string) (models.Account, error)

	// ListAccounts returns the public view of every account.
	ListAccounts(ctx context.Context) ([]models.Account, error)
}

// TokenIssuer mints signed bearer tokens for an account.
type TokenIssuer interface {
	Issue(ctx context.Context, accountID int64) (models.Token, error)
}

// TokenParser validates inbound bearer tokens.
type TokenParser interface {
	Parse(ctx context.Context, tokenString string) (models.Token, error)
}

// TokenService both issues and validates tokens with one signing key.
type TokenService interface {
	TokenIssuer
	TokenParser
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
