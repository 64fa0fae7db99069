// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

// accountRepository is the SQL implementation of [AccountRepository] shared
// by the PostgreSQL and SQLite backends. Dialect differences are confined to
// the placeholder format of [DB.builder] and to [DB.errorClassificator].
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// FindAccountByEmail selects the account whose email equals email.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoAccountWasFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("error building query")
		return models.Account{}, err
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrNoAccountWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error selecting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// CreateAccount inserts account and returns the stored row.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAccountQuery(r.db.builder, account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error building query")
		return models.Account{}, err
	}

	created, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		classification := r.db.errorClassificator.Classify(err)
		log.Err(err).Str("func", "*accountRepository.CreateAccount").
			Stringer("classification", classification).
			Msg("error inserting account")

		if classification == UniqueViolation {
			return models.Account{}, ErrEmailAlreadyExists
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// UpdateAccount writes account if its Version is still current.
//
// Error handling:
//   - no row matched id and version → [ErrVersionConflict].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(r.db.builder, account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Msg("error building query")
		return models.Account{}, err
	}

	updated, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().Str("func", "*accountRepository.UpdateAccount").
			Int64("account_id", account.ID).
			Int64("version", account.Version).
			Msg("stale account version")
		return models.Account{}, ErrVersionConflict
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error updating account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// ListAccounts returns every account ordered by id.
func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error selecting accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error scanning account")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}
