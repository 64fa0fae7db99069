// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// LogNotifier writes codes to the structured log instead of mailing them.
// It is selected when no SMTP host is configured and is meant for local
// development only.
type LogNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [LogNotifier] writing to logger.
func NewLogNotifier(logger *logger.Logger) *LogNotifier {
	logger.Warn().Msg("no SMTP host configured, one-time codes will be written to the log")
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendActivationCode(_ context.Context, email, code string) error {
	n.write(kindActivation, email, code)
	return nil
}

func (n *LogNotifier) SendResetCode(_ context.Context, email, code string) error {
	n.write(kindReset, email, code)
	return nil
}

func (n *LogNotifier) write(k kind, email, code string) {
	n.logger.Info().
		Str("email", email).
		Stringer("kind", k).
		Str("code", code).
		Msg(subjectFor(k))
}
