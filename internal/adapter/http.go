// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL comes from adapterCfg.HTTPAddress; "http://" is assumed when
// no scheme is given.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	var account models.Account
	if err := h.post(ctx, "/api/auth/register", req, &account); err != nil {
		return models.Account{}, fmt.Errorf("register: %w", err)
	}
	return account, nil
}

func (h *httpServerAdapter) Activate(ctx context.Context, req models.ActivateRequest) (models.Account, error) {
	var account models.Account
	if err := h.post(ctx, "/api/auth/activate", req, &account); err != nil {
		return models.Account{}, fmt.Errorf("activate: %w", err)
	}
	return account, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var token models.TokenResponse
	if err := h.post(ctx, "/api/auth/login", req, &token); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	h.SetToken(token.Token)
	return token.Token, nil
}

func (h *httpServerAdapter) RequestReset(ctx context.Context, req models.ResetRequest) error {
	var result models.SuccessResponse
	if err := h.post(ctx, "/api/auth/reset", req, &result); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.Account, error) {
	var account models.Account
	if err := h.post(ctx, "/api/auth/change", req, &account); err != nil {
		return models.Account{}, fmt.Errorf("change password: %w", err)
	}
	return account, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.Account, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	var accounts []models.Account
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&accounts).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return accounts, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("version: %w", err)
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) post(ctx context.Context, path string, body, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}

	h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("response received")

	return mapHTTPError(resp)
}
