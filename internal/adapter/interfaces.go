// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the account REST API.
//
// [ServerAdapter] hides the transport from cmd/client. Error values defined in
// errors.go are mapped from HTTP status codes so that callers can use
// [errors.Is], e.g. [ErrConflict] for 409 or [ErrUnauthorized] for 401.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the account service.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates a pending account.
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// Activate confirms an account with the emailed activation code.
	Activate(ctx context.Context, req models.ActivateRequest) (models.Account, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// RequestReset asks the server to email a password reset code.
	RequestReset(ctx context.Context, req models.ResetRequest) error

	// ChangePassword sets a new password using the emailed reset code.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.Account, error)

	// ListUsers returns every account. It requires a token.
	ListUsers(ctx context.Context) ([]models.Account, error)

	// Version returns the server version.
	Version(ctx context.Context) (string, error)
}
