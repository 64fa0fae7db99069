// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-keeper/models"
)

const accountsTable = "accounts"

// accountColumns is the column order shared by every SELECT and RETURNING
// clause; scanAccount depends on it.
var accountColumns = []string{
	"id",
	"name",
	"email",
	"active",
	"password_hash",
	"activation_code_hash",
	"reset_code_hash",
	"reset_code_expires_at",
	"version",
	"created_at",
	"updated_at",
}

var returningAccount = "RETURNING " + strings.Join(accountColumns, ", ")

func buildFindAccountByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCreateAccountQuery inserts a new row. id, version and timestamps are
// left to column defaults and read back through RETURNING.
func buildCreateAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := b.
		Insert(accountsTable).
		Columns(
			"name",
			"email",
			"active",
			"password_hash",
			"activation_code_hash",
			"reset_code_hash",
			"reset_code_expires_at",
		).
		Values(
			account.Name,
			account.Email,
			account.Active,
			account.PasswordHash,
			account.ActivationCodeHash,
			account.ResetCodeHash,
			account.ResetCodeExpiresAt,
		).
		Suffix(returningAccount).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateAccountQuery writes the mutable credential fields guarded by the
// optimistic version check. A stale version matches no row.
func buildUpdateAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := b.
		Update(accountsTable).
		Set("active", account.Active).
		Set("password_hash", account.PasswordHash).
		Set("activation_code_hash", account.ActivationCodeHash).
		Set("reset_code_hash", account.ResetCodeHash).
		Set("reset_code_expires_at", account.ResetCodeExpiresAt).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": account.ID, "version": account.Version}).
		Suffix(returningAccount).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListAccountsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Active,
		&account.PasswordHash,
		&account.ActivationCodeHash,
		&account.ResetCodeHash,
		&account.ResetCodeExpiresAt,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	return account, err
}
