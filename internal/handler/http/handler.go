// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/validators"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	credentials service.CredentialService
	tokens      service.TokenParser
	appInfo     service.AppInfoService

	validator validators.Validator

	// requestTimeout bounds every request when positive.
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds a [Handler] from the service container.
func NewHandler(services *service.Services, validator validators.Validator, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		credentials:    services.CredentialService,
		tokens:         services.TokenService,
		appInfo:        services.AppInfoService,
		validator:      validator,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
