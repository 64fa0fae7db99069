// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-keeper/models"
)

func fixedClock() func() time.Time {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func TestMemoryAccountRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryAccountRepository(fixedClock())

	created, err := repo.CreateAccount(ctx, models.Account{Name: "Bolson", Email: "darion@erdman.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(1), created.Version)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindAccountByEmail(ctx, "darion@erdman.com")
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestMemoryAccountRepository_FindMissing(t *testing.T) {
	repo := NewMemoryAccountRepository()

	_, err := repo.FindAccountByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoAccountWasFound)
}

func TestMemoryAccountRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	_, err := repo.CreateAccount(ctx, models.Account{Name: "First", Email: "dup@example.com", PasswordHash: "1"})
	require.NoError(t, err)

	_, err = repo.CreateAccount(ctx, models.Account{Name: "Second", Email: "dup@example.com", PasswordHash: "2"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := repo.FindAccountByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "First", found.Name)
	assert.Equal(t, "1", found.PasswordHash)
}

func TestMemoryAccountRepository_UpdateBumpsVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	created, err := repo.CreateAccount(ctx, models.Account{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	created.Active = true
	created.Name = "ignored"
	updated, err := repo.UpdateAccount(ctx, created)
	require.NoError(t, err)
	assert.True(t, updated.Active)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, int64(2), updated.Version)
}

func TestMemoryAccountRepository_StaleVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	created, err := repo.CreateAccount(ctx, models.Account{Email: "a@example.com"})
	require.NoError(t, err)

	first := created
	first.PasswordHash = "first"
	_, err = repo.UpdateAccount(ctx, first)
	require.NoError(t, err)

	second := created
	second.PasswordHash = "second"
	_, err = repo.UpdateAccount(ctx, second)
	assert.ErrorIs(t, err, ErrVersionConflict)

	found, err := repo.FindAccountByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "first", found.PasswordHash)
}

func TestMemoryAccountRepository_UpdateUnknownAccount(t *testing.T) {
	repo := NewMemoryAccountRepository()

	_, err := repo.UpdateAccount(context.Background(), models.Account{ID: 99, Version: 1})
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestMemoryAccountRepository_ReturnedAccountsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()
	expiresAt := time.Now().Add(time.Hour)

	created, err := repo.CreateAccount(ctx, models.Account{Email: "a@example.com", ResetCodeExpiresAt: &expiresAt})
	require.NoError(t, err)

	*created.ResetCodeExpiresAt = time.Time{}

	found, err := repo.FindAccountByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, found.ResetCodeExpiresAt)
	assert.True(t, found.ResetCodeExpiresAt.Equal(expiresAt))
}

func TestMemoryAccountRepository_ListAccountsOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	for _, email := range []string{"c@example.com", "a@example.com", "b@example.com"} {
		_, err := repo.CreateAccount(ctx, models.Account{Email: email})
		require.NoError(t, err)
	}

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	for i, account := range accounts {
		assert.Equal(t, int64(i+1), account.ID)
	}
}

func TestMemoryAccountRepository_ConcurrentRegistrationOfSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for range 50 {
		wg.Go(func() {
			if _, err := repo.CreateAccount(ctx, models.Account{Email: "race@example.com"}); err == nil {
				succeeded.Add(1)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
}
