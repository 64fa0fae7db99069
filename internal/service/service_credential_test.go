// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/mock"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

var testNow = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

type credentialMocks struct {
	accounts *mock.MockAccountRepository
	codes    *mock.MockCodeGenerator
	hasher   *mock.MockHasher
	tokens   *mock.MockTokenIssuer
	notifier *mock.MockNotifier
}

func newTestCredentialService(t *testing.T, cfg config.App) (*credentialService, credentialMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := credentialMocks{
		accounts: mock.NewMockAccountRepository(ctrl),
		codes:    mock.NewMockCodeGenerator(ctrl),
		hasher:   mock.NewMockHasher(ctrl),
		tokens:   mock.NewMockTokenIssuer(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
	}

	if cfg.ResetCodeDuration == 0 {
		cfg.ResetCodeDuration = time.Hour
	}
	svc := NewCredentialService(m.accounts, m.codes, m.hasher, m.tokens, m.notifier, cfg, logger.Nop()).(*credentialService)
	svc.now = func() time.Time { return testNow }

	return svc, m
}

func pendingAccount() models.Account {
	return models.Account{
		ID:                 1,
		Name:               "Bolson",
		Email:              "darion@erdman.com",
		PasswordHash:       "pw-hash",
		ActivationCodeHash: "activation-hash",
		Version:            1,
	}
}

func activeAccount() models.Account {
	a := pendingAccount()
	a.Active = true
	return a
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})
	ctx := context.Background()

	gomock.InOrder(
		m.accounts.EXPECT().FindAccountByEmail(ctx, "darion@erdman.com").Return(models.Account{}, store.ErrNoAccountWasFound),
		m.hasher.EXPECT().Hash("Passw0rd!").Return("pw-hash", nil),
		m.codes.EXPECT().Generate().Return("CODE", nil),
		m.hasher.EXPECT().Hash("CODE").Return("activation-hash", nil),
		m.accounts.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Account) (models.Account, error) {
				assert.False(t, a.Active)
				assert.Equal(t, "pw-hash", a.PasswordHash)
				assert.Equal(t, "activation-hash", a.ActivationCodeHash)
				a.ID, a.Version = 1, 1
				return a, nil
			}),
		m.notifier.EXPECT().SendActivationCode(ctx, "darion@erdman.com", "CODE").Return(nil),
	)

	account, err := svc.Register(ctx, "Bolson", "darion@erdman.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	assert.False(t, account.Active)
}

func TestRegister_EmptyFields(t *testing.T) {
	svc, _ := newTestCredentialService(t, config.App{})

	_, err := svc.Register(context.Background(), "", "a@example.com", " ")
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "name, password")
}

func TestRegister_DuplicateFoundByLookup(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})
	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), "darion@erdman.com").Return(pendingAccount(), nil)

	_, err := svc.Register(context.Background(), "Bolson", "darion@erdman.com", "Passw0rd!")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestRegister_DuplicateRejectedByStore(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})

	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrNoAccountWasFound)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("h", nil).Times(2)
	m.codes.EXPECT().Generate().Return("CODE", nil)
	m.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrEmailAlreadyExists)
	// no delivery for a registration that lost the race

	_, err := svc.Register(context.Background(), "Bolson", "darion@erdman.com", "Passw0rd!")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestRegister_DeliveryFailureStillPersists(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})

	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrNoAccountWasFound)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("h", nil).Times(2)
	m.codes.EXPECT().Generate().Return("CODE", nil)
	m.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(pendingAccount(), nil)
	m.notifier.EXPECT().SendActivationCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	account, err := svc.Register(context.Background(), "Bolson", "darion@erdman.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
}

func TestRegister_CodeGenerationFailureIsFatal(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})

	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrNoAccountWasFound)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
	m.codes.EXPECT().Generate().Return("", errors.New("entropy exhausted"))

	_, err := svc.Register(context.Background(), "Bolson", "darion@erdman.com", "Passw0rd!")
	assert.ErrorIs(t, err, ErrCodeGenerationFailed)
	assert.ErrorIs(t, err, ErrFatal)
}

func TestRegister_HashingFailureIsFatal(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})

	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrNoAccountWasFound)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("bcrypt failure"))

	_, err := svc.Register(context.Background(), "Bolson", "darion@erdman.com", "Passw0rd!")
	assert.ErrorIs(t, err, ErrHashingFailed)
	assert.ErrorIs(t, err, ErrFatal)
}

func TestRegister_StoreLookupError(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})
	storeErr := errors.New("connection refused")
	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, storeErr)

	_, err := svc.Register(context.Background(), "Bolson", "darion@erdman.com", "Passw0rd!")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrDuplicateAccount)
}

// ─────────────────────────────────────────────
// Activate
// ─────────────────────────────────────────────

func TestActivate_Success(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})

	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), "darion@erdman.com").Return(pendingAccount(), nil)
	m.hasher.EXPECT().Verify("CODE", "activation-hash").Return(true)
	m.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Account) (models.Account, error) {
			assert.True(t, a.Active)
			assert.Equal(t, int64(1), a.Version)
			a.Version++
			return a, nil
		})

	account, err := svc.Activate(context.Background(), "darion@erdman.com", "CODE")
	require.NoError(t, err)
	assert.True(t, account.Active)
}

func TestActivate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m credentialMocks)
		wantErr error
	}{
		{
			name: "not found",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrNoAccountWasFound)
			},
			wantErr: ErrAccountNotFound,
		},
		{
			name: "already active",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(activeAccount(), nil)
			},
			wantErr: ErrAlreadyActive,
		},
		{
			name: "invalid code",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(pendingAccount(), nil)
				m.hasher.EXPECT().Verify("0000", "activation-hash").Return(false)
			},
			wantErr: ErrInvalidCode,
		},
		{
			name: "concurrent update",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(pendingAccount(), nil)
				m.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
				m.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrVersionConflict)
			},
			wantErr: ErrConcurrentUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestCredentialService(t, config.App{})
			tt.setup(m)

			_, err := svc.Activate(context.Background(), "darion@erdman.com", "0000")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestActivate_EmptyCode(t *testing.T) {
	svc, _ := newTestCredentialService(t, config.App{})

	_, err := svc.Activate(context.Background(), "darion@erdman.com", "")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})
	want := models.Token{SignedString: "signed", AccountID: 1}

	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), "darion@erdman.com").Return(activeAccount(), nil)
	m.hasher.EXPECT().Verify("Passw0rd!", "pw-hash").Return(true)
	m.tokens.EXPECT().Issue(gomock.Any(), int64(1)).Return(want, nil)

	token, err := svc.Authenticate(context.Background(), "darion@erdman.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, "signed", token.String())
}

func TestAuthenticate_Failures(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(m credentialMocks)
		wantErr     error
		wantGeneric error
	}{
		{
			name: "not found",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrNoAccountWasFound)
			},
			wantErr:     ErrAccountNotFound,
			wantGeneric: ErrInvalidCredentials,
		},
		{
			name: "not activated",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(pendingAccount(), nil)
			},
			wantErr:     ErrNotActivated,
			wantGeneric: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(activeAccount(), nil)
				m.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false)
			},
			wantErr:     ErrInvalidCredentials,
			wantGeneric: ErrInvalidCredentials,
		},
		{
			name: "token signing failure",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(activeAccount(), nil)
				m.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
				m.tokens.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(models.Token{}, ErrTokenCreationFailed)
			},
			wantErr:     ErrFatal,
			wantGeneric: ErrFatal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestCredentialService(t, config.App{})
			tt.setup(m)

			_, err := svc.Authenticate(context.Background(), "darion@erdman.com", "Passw0rd!")
			assert.ErrorIs(t, err, tt.wantErr)
		})

		t.Run(tt.name+" generic", func(t *testing.T) {
			svc, m := newTestCredentialService(t, config.App{GenericAuthErrors: true})
			tt.setup(m)

			_, err := svc.Authenticate(context.Background(), "darion@erdman.com", "Passw0rd!")
			assert.ErrorIs(t, err, tt.wantGeneric)
		})
	}
}

// ─────────────────────────────────────────────
// RequestReset
// ─────────────────────────────────────────────

func TestRequestReset_Success(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{ResetCodeDuration: 30 * time.Minute})

	gomock.InOrder(
		m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), "darion@erdman.com").Return(activeAccount(), nil),
		m.codes.EXPECT().Generate().Return("RESET", nil),
		m.hasher.EXPECT().Hash("RESET").Return("reset-hash", nil),
		m.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Account) (models.Account, error) {
				assert.Equal(t, "reset-hash", a.ResetCodeHash)
				require.NotNil(t, a.ResetCodeExpiresAt)
				assert.Equal(t, testNow.Add(30*time.Minute), *a.ResetCodeExpiresAt)
				a.Version++
				return a, nil
			}),
		m.notifier.EXPECT().SendResetCode(gomock.Any(), "darion@erdman.com", "RESET").Return(nil),
	)

	account, err := svc.RequestReset(context.Background(), "darion@erdman.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), account.Version)
}

func TestRequestReset_NotFound(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})
	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrNoAccountWasFound)

	_, err := svc.RequestReset(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRequestReset_NoDeliveryWhenSaveFails(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})

	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(activeAccount(), nil)
	m.codes.EXPECT().Generate().Return("RESET", nil)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("reset-hash", nil)
	m.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrVersionConflict)

	_, err := svc.RequestReset(context.Background(), "darion@erdman.com")
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
}

// ─────────────────────────────────────────────
// ConfirmReset
// ─────────────────────────────────────────────

func accountWithReset(expiresAt time.Time) models.Account {
	a := activeAccount()
	a.ResetCodeHash = "reset-hash"
	a.ResetCodeExpiresAt = &expiresAt
	return a
}

func TestConfirmReset_Success(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})

	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(accountWithReset(testNow.Add(time.Minute)), nil)
	m.hasher.EXPECT().Verify("RESET", "reset-hash").Return(true)
	m.hasher.EXPECT().Hash("N3wPassw0rd").Return("new-hash", nil)
	m.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Account) (models.Account, error) {
			assert.Equal(t, "new-hash", a.PasswordHash)
			assert.Empty(t, a.ResetCodeHash)
			assert.Nil(t, a.ResetCodeExpiresAt)
			return a, nil
		})

	_, err := svc.ConfirmReset(context.Background(), "darion@erdman.com", "RESET", "N3wPassw0rd")
	require.NoError(t, err)
}

func TestConfirmReset_ExpiryBoundary(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})

	// now == expiresAt is still accepted
	m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(accountWithReset(testNow), nil)
	m.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("new-hash", nil)
	m.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Account) (models.Account, error) { return a, nil })

	_, err := svc.ConfirmReset(context.Background(), "darion@erdman.com", "RESET", "N3wPassw0rd")
	assert.NoError(t, err)
}

func TestConfirmReset_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m credentialMocks)
		wantErr error
	}{
		{
			name: "not found",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrNoAccountWasFound)
			},
			wantErr: ErrAccountNotFound,
		},
		{
			name: "invalid code",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(accountWithReset(testNow.Add(time.Hour)), nil)
				m.hasher.EXPECT().Verify(gomock.Any(), "reset-hash").Return(false)
			},
			wantErr: ErrInvalidCode,
		},
		{
			name: "invalid code wins over expiry",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(accountWithReset(testNow.Add(-time.Hour)), nil)
				m.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false)
			},
			wantErr: ErrInvalidCode,
		},
		{
			name: "no reset requested",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(activeAccount(), nil)
				m.hasher.EXPECT().Verify(gomock.Any(), "").Return(false)
			},
			wantErr: ErrInvalidCode,
		},
		{
			name: "expired",
			setup: func(m credentialMocks) {
				m.accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(accountWithReset(testNow.Add(-time.Second)), nil)
				m.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
			},
			wantErr: ErrExpiredCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestCredentialService(t, config.App{})
			tt.setup(m)

			_, err := svc.ConfirmReset(context.Background(), "darion@erdman.com", "RESET", "N3wPassw0rd")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// ListAccounts
// ─────────────────────────────────────────────

func TestListAccounts(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})
	m.accounts.EXPECT().ListAccounts(gomock.Any()).Return([]models.Account{activeAccount()}, nil)

	accounts, err := svc.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestListAccounts_StoreError(t *testing.T) {
	svc, m := newTestCredentialService(t, config.App{})
	m.accounts.EXPECT().ListAccounts(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListAccounts(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
