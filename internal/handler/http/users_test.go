// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

func TestListUsers_ReturnsAccounts(t *testing.T) {
	h, deps := newTestHandler(t)
	second := registeredAccount
	second.ID = 2
	second.Email = "kim@erdman.com"
	deps.credentials.EXPECT().ListAccounts(gomock.Any()).Return([]models.Account{registeredAccount, second}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(utils.WithAccountID(req.Context(), 1))
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "kim@erdman.com", got[1].Email)
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestListUsers_EmptyListIsArray(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.credentials.EXPECT().ListAccounts(gomock.Any()).Return([]models.Account{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(utils.WithAccountID(req.Context(), 1))
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListUsers_WithoutAccountInContext(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListUsers_StoreFailure(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.credentials.EXPECT().ListAccounts(gomock.Any()).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(utils.WithAccountID(req.Context(), 1))
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
