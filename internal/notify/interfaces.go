// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers one-time codes to account owners. Delivery is
// best-effort: the credential service logs failures but never rolls back the
// account change that produced the code.
package notify

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

// Notifier sends one-time codes out of band to an email address.
type Notifier interface {
	// SendActivationCode delivers the code that activates a freshly
	// registered account.
	SendActivationCode(ctx context.Context, email, code string) error

	// SendResetCode delivers the code that authorises a password change.
	SendResetCode(ctx context.Context, email, code string) error
}
