// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	minCodeLength = 6
	maxCodeLength = 16
)

// validate checks that the final merged [StructuredConfig] can run the
// server. A missing signing secret is a deployment error, so it is reported
// here rather than on the first login.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.ResetCodeDuration <= 0 {
		return fmt.Errorf("%w: token and reset code durations must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.CodeLength < minCodeLength || cfg.App.CodeLength > maxCodeLength {
		return fmt.Errorf("%w: code length must be in range %d..%d", ErrInvalidAppConfigs, minCodeLength, maxCodeLength)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be in range %d..%d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Mail.Host != "" && cfg.Mail.From == "" {
		return fmt.Errorf("%w: sender address is required with an SMTP host", ErrInvalidMailConfigs)
	}
	if cfg.Mail.Workers < 1 || cfg.Mail.QueueSize < 1 {
		return fmt.Errorf("%w: workers and queue size must be positive", ErrInvalidMailConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
