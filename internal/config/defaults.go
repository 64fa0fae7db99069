// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultTokenIssuer       = "go-account-keeper"
	DefaultTokenDuration     = time.Hour
	DefaultResetCodeDuration = 60 * time.Minute
	DefaultCodeLength        = 16
	DefaultBcryptCost        = 10
	DefaultLogLevel          = "debug"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultMailPort          = 587
	DefaultMailWorkers       = 2
	DefaultMailQueueSize     = 64
)

// applyDefaults fills every zero-valued setting that has a sensible default.
// Secrets and addresses have none.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.ResetCodeDuration == 0 {
		cfg.App.ResetCodeDuration = DefaultResetCodeDuration
	}
	if cfg.App.CodeLength == 0 {
		cfg.App.CodeLength = DefaultCodeLength
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = DefaultMailPort
	}
	if cfg.Mail.Workers == 0 {
		cfg.Mail.Workers = DefaultMailWorkers
	}
	if cfg.Mail.QueueSize == 0 {
		cfg.Mail.QueueSize = DefaultMailQueueSize
	}
}
