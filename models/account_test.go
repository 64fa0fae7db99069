// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_JSONHidesCredentialFields(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)
	account := Account{
		ID:                 7,
		Name:               "Bolson",
		Email:              "darion@erdman.com",
		PasswordHash:       "$2a$10$password",
		ActivationCodeHash: "$2a$10$activation",
		ResetCodeHash:      "$2a$10$reset",
		ResetCodeExpiresAt: &expiresAt,
		Version:            3,
	}

	raw, err := json.Marshal(account)
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal(raw, &view))

	assert.Equal(t, float64(7), view["id"])
	assert.Equal(t, "Bolson", view["name"])
	assert.Equal(t, "darion@erdman.com", view["email"])
	assert.Equal(t, false, view["active"])
	assert.Contains(t, view, "created_at")
	assert.Contains(t, view, "updated_at")

	assert.NotContains(t, string(raw), "$2a$10$")
	assert.Len(t, view, 6)
}

func TestAccount_ResetCodeExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Minute)

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{name: "no expiry", expiresAt: nil, want: true},
		{name: "in the past", expiresAt: &past, want: true},
		{name: "exactly now", expiresAt: &now, want: false},
		{name: "in the future", expiresAt: &future, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Account{ResetCodeExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, a.ResetCodeExpired(now))
		})
	}
}

func TestAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-16", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-16", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-10-16")
}
