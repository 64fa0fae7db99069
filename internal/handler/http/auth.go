// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/internal/validators"
	"github.com/MKhiriev/go-account-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.credentials.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeResponse(w, r, account)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	var req models.ActivateRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.credentials.Activate(r.Context(), req.Email, req.ActivationCode)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeResponse(w, r, account)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.credentials.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeResponse(w, r, models.TokenResponse{Token: token.SignedString})
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	var req models.ResetRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.credentials.RequestReset(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	h.writeResponse(w, r, models.SuccessResponse{Success: true})
}

func (h *Handler) change(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.credentials.ConfirmReset(r.Context(), req.Email, req.ResetCode, req.NewPassword)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeResponse(w, r, account)
}

// decodeRequest reads a JSON body into dst and checks its format rules.
// Rule violations are reported as [service.ErrValidationFailed].
func (h *Handler) decodeRequest(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if err := h.validator.Validate(r.Context(), dst); err != nil {
		if errors.Is(err, validators.ErrInvalidInput) {
			return fmt.Errorf("%w: %w", service.ErrValidationFailed, err)
		}
		return err
	}

	return nil
}

func (h *Handler) writeResponse(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
