// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/crypto"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/notify"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

// credentialService is the concrete implementation of [CredentialService].
//
// Account states are Pending (Active == false) and Active. Uniqueness and
// lost-update protection are enforced by the repository (unique email index
// and optimistic version check); the service only maps those failures.
type credentialService struct {
	accounts store.AccountRepository
	codes    crypto.CodeGenerator
	hasher   crypto.Hasher
	tokens   TokenIssuer
	notifier notify.Notifier

	// resetCodeDuration is how long a reset code stays valid after
	// RequestReset.
	resetCodeDuration time.Duration

	// genericAuthErrors collapses the not found, not activated and wrong
	// password outcomes of Authenticate into ErrInvalidCredentials.
	genericAuthErrors bool

	now    func() time.Time
	logger *logger.Logger
}

// NewCredentialService wires a [CredentialService]. All collaborators are
// required.
func NewCredentialService(
	accounts store.AccountRepository,
	codes crypto.CodeGenerator,
	hasher crypto.Hasher,
	tokens TokenIssuer,
	notifier notify.Notifier,
	cfg config.App,
	logger *logger.Logger,
) CredentialService {
	logger.Debug().
		Dur("reset_code_duration", cfg.ResetCodeDuration).
		Bool("generic_auth_errors", cfg.GenericAuthErrors).
		Msg("creating credential service")

	return &credentialService{
		accounts:          accounts,
		codes:             codes,
		hasher:            hasher,
		tokens:            tokens,
		notifier:          notifier,
		resetCodeDuration: cfg.ResetCodeDuration,
		genericAuthErrors: cfg.GenericAuthErrors,
		now:               time.Now,
		logger:            logger,
	}
}

// Register creates a pending account for email.
//
// The activation code is delivered after the insert succeeds; a delivery
// failure is logged and does not undo the registration.
//
// Returns:
//   - ErrValidationFailed if any argument is empty.
//   - ErrDuplicateAccount if email is taken, including a lost insert race.
//   - ErrHashingFailed / ErrCodeGenerationFailed on fatal crypto failures.
func (s *credentialService) Register(ctx context.Context, name, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := requireFields(map[string]string{"name": name, "email": email, "password": password}); err != nil {
		return models.Account{}, err
	}

	if _, err := s.accounts.FindAccountByEmail(ctx, email); err == nil {
		log.Info().Str("email", email).Msg("registration rejected: email already registered")
		return models.Account{}, ErrDuplicateAccount
	} else if !errors.Is(err, store.ErrNoAccountWasFound) {
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}

	passwordHash, err := s.hash(password)
	if err != nil {
		return models.Account{}, err
	}

	code, codeHash, err := s.newCode()
	if err != nil {
		log.Err(err).Str("email", email).Msg("error creating activation code")
		return models.Account{}, err
	}

	account, err := s.accounts.CreateAccount(ctx, models.Account{
		Name:               name,
		Email:              email,
		Active:             false,
		PasswordHash:       passwordHash,
		ActivationCodeHash: codeHash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Str("email", email).Msg("registration rejected by unique email index")
		return models.Account{}, ErrDuplicateAccount
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("account creation failed: %w", err)
	}

	if err = s.notifier.SendActivationCode(ctx, account.Email, code); err != nil {
		log.Err(err).Int64("account_id", account.ID).Str("email", account.Email).Msg("activation code delivery failed")
	}

	log.Info().Int64("account_id", account.ID).Str("email", account.Email).Msg("account registered")
	return account, nil
}

// Activate moves a pending account to active.
//
// Returns ErrAccountNotFound, ErrAlreadyActive, ErrInvalidCode, in that
// order of checks, or ErrConcurrentUpdate if the account changed meanwhile.
func (s *credentialService) Activate(ctx context.Context, email, activationCode string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := requireFields(map[string]string{"email": email, "activation_code": activationCode}); err != nil {
		return models.Account{}, err
	}

	account, err := s.find(ctx, email)
	if err != nil {
		return models.Account{}, err
	}

	if account.Active {
		return models.Account{}, ErrAlreadyActive
	}

	if !s.hasher.Verify(activationCode, account.ActivationCodeHash) {
		log.Info().Int64("account_id", account.ID).Msg("activation rejected: invalid code")
		return models.Account{}, ErrInvalidCode
	}

	account.Active = true
	activated, err := s.save(ctx, account)
	if err != nil {
		return models.Account{}, err
	}

	log.Info().Int64("account_id", activated.ID).Msg("account activated")
	return activated, nil
}

// Authenticate checks existence, then activation state, then the password,
// and returns a token for the account.
//
// With genericAuthErrors set, the first three failures are all reported as
// ErrInvalidCredentials so that callers cannot enumerate accounts.
func (s *credentialService) Authenticate(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := requireFields(map[string]string{"email": email, "password": password}); err != nil {
		return models.Token{}, err
	}

	account, err := s.find(ctx, email)
	if err != nil {
		return models.Token{}, s.authFailure(err)
	}

	if !account.Active {
		log.Info().Int64("account_id", account.ID).Msg("login rejected: account is not activated")
		return models.Token{}, s.authFailure(ErrNotActivated)
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		log.Info().Int64("account_id", account.ID).Msg("login rejected: wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, account.ID)
	if err != nil {
		return models.Token{}, err
	}

	log.Info().Int64("account_id", account.ID).Msg("account authenticated")
	return token, nil
}

// RequestReset stores the hash of a fresh reset code valid for
// resetCodeDuration and delivers the code. Requesting again replaces any
// outstanding code.
func (s *credentialService) RequestReset(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := requireFields(map[string]string{"email": email}); err != nil {
		return models.Account{}, err
	}

	account, err := s.find(ctx, email)
	if err != nil {
		return models.Account{}, err
	}

	code, codeHash, err := s.newCode()
	if err != nil {
		log.Err(err).Int64("account_id", account.ID).Msg("error creating reset code")
		return models.Account{}, err
	}

	expiresAt := s.now().Add(s.resetCodeDuration).UTC()
	account.ResetCodeHash = codeHash
	account.ResetCodeExpiresAt = &expiresAt

	saved, err := s.save(ctx, account)
	if err != nil {
		return models.Account{}, err
	}

	if err = s.notifier.SendResetCode(ctx, saved.Email, code); err != nil {
		log.Err(err).Int64("account_id", saved.ID).Str("email", saved.Email).Msg("reset code delivery failed")
	}

	log.Info().Int64("account_id", saved.ID).Time("expires_at", expiresAt).Msg("password reset requested")
	return saved, nil
}

// ConfirmReset replaces the password. The code is checked before its expiry,
// so a wrong code is reported as ErrInvalidCode even when a valid one would
// have expired. A successful reset consumes the code.
func (s *credentialService) ConfirmReset(ctx context.Context, email, resetCode, newPassword string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := requireFields(map[string]string{"email": email, "reset_code": resetCode, "new_password": newPassword}); err != nil {
		return models.Account{}, err
	}

	account, err := s.find(ctx, email)
	if err != nil {
		return models.Account{}, err
	}

	if !s.hasher.Verify(resetCode, account.ResetCodeHash) {
		log.Info().Int64("account_id", account.ID).Msg("password change rejected: invalid reset code")
		return models.Account{}, ErrInvalidCode
	}

	if account.ResetCodeExpired(s.now()) {
		log.Info().Int64("account_id", account.ID).Msg("password change rejected: reset code expired")
		return models.Account{}, ErrExpiredCode
	}

	passwordHash, err := s.hash(newPassword)
	if err != nil {
		return models.Account{}, err
	}

	account.PasswordHash = passwordHash
	account.ResetCodeHash = ""
	account.ResetCodeExpiresAt = nil

	saved, err := s.save(ctx, account)
	if err != nil {
		return models.Account{}, err
	}

	log.Info().Int64("account_id", saved.ID).Msg("password changed")
	return saved, nil
}

func (s *credentialService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("account listing failed: %w", err)
	}

	return accounts, nil
}

// find loads the account for email, mapping a miss to ErrAccountNotFound.
func (s *credentialService) find(ctx context.Context, email string) (models.Account, error) {
	account, err := s.accounts.FindAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrNoAccountWasFound) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}

	return account, nil
}

// save writes account under its optimistic version.
func (s *credentialService) save(ctx context.Context, account models.Account) (models.Account, error) {
	saved, err := s.accounts.UpdateAccount(ctx, account)
	if errors.Is(err, store.ErrVersionConflict) {
		logger.FromContext(ctx).Warn().Int64("account_id", account.ID).Msg("concurrent account update detected")
		return models.Account{}, ErrConcurrentUpdate
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("account update failed: %w", err)
	}

	return saved, nil
}

func (s *credentialService) hash(secret string) (string, error) {
	digest, err := s.hasher.Hash(secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return digest, nil
}

// newCode returns a fresh one-time code together with its hash.
func (s *credentialService) newCode() (code, codeHash string, err error) {
	code, err = s.codes.Generate()
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrCodeGenerationFailed, err)
	}

	codeHash, err = s.hash(code)
	if err != nil {
		return "", "", err
	}

	return code, codeHash, nil
}

// authFailure applies the generic auth errors policy to a lookup or
// activation failure. Storage errors are passed through.
func (s *credentialService) authFailure(err error) error {
	if !s.genericAuthErrors {
		return err
	}
	if errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrNotActivated) {
		return ErrInvalidCredentials
	}

	return err
}

// requireFields rejects empty or blank values, naming them in sorted order.
func requireFields(fields map[string]string) error {
	missing := make([]string, 0, len(fields))
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	slices.Sort(missing)
	return fmt.Errorf("%w: %s required", ErrValidationFailed, strings.Join(missing, ", "))
}
