// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/models"
)

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	registered := make(map[string]bool)
	require.NoError(t, chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	}))

	for _, want := range []string{
		"POST /api/auth/register",
		"POST /api/auth/activate",
		"POST /api/auth/login",
		"POST /api/auth/reset",
		"POST /api/auth/change",
		"GET /api/users",
		"GET /api/version",
	} {
		assert.True(t, registered[want], "route %s is not registered", want)
	}
}

func TestInit_UsersRequireAuth(t *testing.T) {
	h, deps := newTestHandler(t)
	router := h.Init()

	t.Run("without token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with rejected token", func(t *testing.T) {
		deps.tokens.EXPECT().Parse(gomock.Any(), "stale").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer stale")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with valid token", func(t *testing.T) {
		deps.tokens.EXPECT().Parse(gomock.Any(), "fresh").Return(models.Token{AccountID: 1}, nil)
		deps.credentials.EXPECT().ListAccounts(gomock.Any()).Return([]models.Account{registeredAccount}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer fresh")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "darion@erdman.com")
	})
}

func TestInit_PublicRoutesSkipAuth(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.credentials.EXPECT().RequestReset(gomock.Any(), "darion@erdman.com").Return(registeredAccount, nil)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/reset", strings.NewReader(`{"email":"darion@erdman.com"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/login", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1").Times(2)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "abc")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(traceIDHeader))
}

func TestInit_WithRequestTimeout(t *testing.T) {
	h, deps := newTestHandler(t)
	h.requestTimeout = time.Second
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Body.String())
}
