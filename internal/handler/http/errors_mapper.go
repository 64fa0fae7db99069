// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/internal/validators"
	"github.com/MKhiriev/go-account-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:              http.StatusBadRequest,
	service.ErrValidationFailed: http.StatusBadRequest,
	validators.ErrInvalidInput:  http.StatusBadRequest,

	service.ErrInvalidCode:        http.StatusBadRequest,
	service.ErrExpiredCode:        http.StatusBadRequest,
	service.ErrNotActivated:       http.StatusBadRequest,
	service.ErrAlreadyActive:      http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusBadRequest,

	service.ErrAccountNotFound:  http.StatusNotFound,
	service.ErrDuplicateAccount: http.StatusConflict,
	service.ErrConcurrentUpdate: http.StatusConflict,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	utils.ErrInvalidAuthorization:      http.StatusUnauthorized,
}

// statusFromError returns the status for err. Unknown errors are 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it as {"error": "..."}. Server errors are
// reported with the generic status text so internals never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
