// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

const sqliteScheme = "sqlite://"

// Storages bundles the account repository with the handle used for health
// checks and shutdown.
type Storages struct {
	AccountRepository AccountRepository
	Pinger            Pinger

	db *DB
}

// NewStorages selects the backend from cfg.DSN, applies migrations when the
// backend is SQL, and returns the wired repositories.
//
//   - "postgres://..." / "postgresql://..." → PostgreSQL
//   - "sqlite://path"                        → SQLite file at path
//   - ""                                     → in-memory store
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch dsn := strings.TrimSpace(cfg.DSN); {
	case dsn == "":
		log.Warn().Str("func", "NewStorages").Msg("no database dsn configured, accounts are kept in memory")
		repository := newMemoryAccountRepository(time.Now)
		return &Storages{AccountRepository: repository, Pinger: repository}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(dsn, sqliteScheme):
		db, err = NewConnectSQLite(ctx, strings.TrimPrefix(dsn, sqliteScheme), log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		Pinger:            db,
		db:                db,
	}, nil
}

// Close releases the database connection pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// redactDSN keeps only the scheme so credentials never reach the logs.
func redactDSN(dsn string) string {
	scheme, _, found := strings.Cut(dsn, "://")
	if !found {
		return "<invalid>"
	}

	return scheme + "://..."
}
