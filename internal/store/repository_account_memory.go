// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-keeper/models"
)

// memoryAccountRepository is an in-process [AccountRepository]. A single
// mutex serialises every operation, which gives the same uniqueness and
// optimistic-locking guarantees as the SQL backends.
type memoryAccountRepository struct {
	mu      sync.RWMutex
	byID    map[int64]models.Account
	byEmail map[string]int64
	nextID  int64
	now     func() time.Time
}

// NewMemoryAccountRepository returns an empty in-memory [AccountRepository].
// It is used when no DSN is configured and in tests.
func NewMemoryAccountRepository() AccountRepository {
	return newMemoryAccountRepository(time.Now)
}

func newMemoryAccountRepository(now func() time.Time) *memoryAccountRepository {
	return &memoryAccountRepository{
		byID:    make(map[int64]models.Account),
		byEmail: make(map[string]int64),
		now:     now,
	}
}

func (m *memoryAccountRepository) FindAccountByEmail(_ context.Context, email string) (models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return models.Account{}, ErrNoAccountWasFound
	}

	return cloneAccount(m.byID[id]), nil
}

func (m *memoryAccountRepository) CreateAccount(_ context.Context, account models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[account.Email]; exists {
		return models.Account{}, ErrEmailAlreadyExists
	}

	m.nextID++
	now := m.now().UTC()
	account.ID = m.nextID
	account.Version = 1
	account.CreatedAt = now
	account.UpdatedAt = now

	stored := cloneAccount(account)
	m.byID[account.ID] = stored
	m.byEmail[account.Email] = account.ID

	return cloneAccount(stored), nil
}

func (m *memoryAccountRepository) UpdateAccount(_ context.Context, account models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.byID[account.ID]
	if !ok || current.Version != account.Version {
		return models.Account{}, ErrVersionConflict
	}

	// name and email are immutable after registration
	current.Active = account.Active
	current.PasswordHash = account.PasswordHash
	current.ActivationCodeHash = account.ActivationCodeHash
	current.ResetCodeHash = account.ResetCodeHash
	current.ResetCodeExpiresAt = account.ResetCodeExpiresAt
	current.Version++
	current.UpdatedAt = m.now().UTC()

	stored := cloneAccount(current)
	m.byID[current.ID] = stored

	return cloneAccount(stored), nil
}

func (m *memoryAccountRepository) ListAccounts(_ context.Context) ([]models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	accounts := make([]models.Account, 0, len(m.byID))
	for _, account := range m.byID {
		accounts = append(accounts, cloneAccount(account))
	}
	slices.SortFunc(accounts, func(a, b models.Account) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return accounts, nil
}

// PingContext implements [Pinger]; the in-memory store is always reachable.
func (m *memoryAccountRepository) PingContext(context.Context) error {
	return nil
}

// cloneAccount copies the expiry pointer so callers never share it with the
// stored record.
func cloneAccount(account models.Account) models.Account {
	if account.ResetCodeExpiresAt != nil {
		expiresAt := *account.ResetCodeExpiresAt
		account.ResetCodeExpiresAt = &expiresAt
	}

	return account
}
