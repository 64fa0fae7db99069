// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// NewNotifier returns an [SMTPNotifier] when cfg names an SMTP host and a
// [LogNotifier] otherwise.
func NewNotifier(cfg config.Mail, logger *logger.Logger) (Notifier, error) {
	if cfg.Host == "" {
		return NewLogNotifier(logger), nil
	}

	return NewSMTPNotifier(cfg, logger)
}
