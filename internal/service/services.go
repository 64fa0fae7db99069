// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/crypto"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/notify"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

type Services struct {
	CredentialService CredentialService
	TokenService      TokenService
	AppInfoService    AppInfoService
}

// NewServices builds every service from the configured collaborators. Any
// error here is a deployment error and must stop the process.
func NewServices(storages *store.Storages, notifier notify.Notifier, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	codes, err := crypto.NewRandomCodeGenerator(cfg.App.CodeLength)
	if err != nil {
		return nil, fmt.Errorf("error creating code generator: %w", err)
	}

	hasher, err := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating hasher: %w", err)
	}

	tokens, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CredentialService: NewCredentialService(storages.AccountRepository, codes, hasher, tokens, notifier, cfg.App, logger),
		TokenService:      tokens,
		AppInfoService:    appInfo,
	}, nil
}
