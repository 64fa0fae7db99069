// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-account-keeper server. It is populated by merging environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, code and hashing parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the account store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC
	// servers.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds the SMTP settings used to deliver one-time codes.
	Mail Mail `envPrefix:"MAIL_"`

	// Adapter holds the client-side settings used by cmd/client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values controlling credentials and tokens.
type App struct {
	// TokenSignKey is the HMAC secret used to sign bearer tokens. The server
	// refuses to start without it.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ResetCodeDuration is how long a password reset code stays valid.
	// Env: APP_RESET_CODE_DURATION
	ResetCodeDuration time.Duration `env:"RESET_CODE_DURATION"`

	// CodeLength is the number of characters of generated one-time codes.
	// Env: APP_CODE_LENGTH
	CodeLength int `env:"CODE_LENGTH"`

	// BcryptCost is the work factor for password and code hashes.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// GenericAuthErrors collapses "not found", "not activated" and "wrong
	// password" login failures into a single invalid credentials error.
	// Env: APP_GENERIC_AUTH_ERRORS
	GenericAuthErrors bool `env:"GENERIC_AUTH_ERRORS"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the account store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the account store.
type DB struct {
	// DSN selects the backend:
	//   - "postgres://..." or "postgresql://..." selects PostgreSQL via pgx;
	//   - "sqlite://path/to/file.db" selects SQLite;
	//   - "" selects the in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the REST API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the gRPC health endpoint. Optional.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single HTTP request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mail holds the settings of the code delivery channel.
type Mail struct {
	// Host is the SMTP server host. When empty, codes are written to the
	// log instead of being mailed.
	// Env: MAIL_HOST
	Host string `env:"HOST"`

	// Env: MAIL_PORT
	Port int `env:"PORT"`

	// Env: MAIL_USERNAME
	Username string `env:"USERNAME"`

	// Env: MAIL_PASSWORD
	Password string `env:"PASSWORD"`

	// From is the sender address of outgoing messages.
	// Env: MAIL_FROM
	From string `env:"FROM"`

	// Env: MAIL_FROM_NAME
	FromName string `env:"FROM_NAME"`

	// TLS enables mandatory TLS (implicit TLS on port 465, STARTTLS
	// otherwise).
	// Env: MAIL_TLS
	TLS bool `env:"TLS"`

	// Async makes register and reset requests enqueue delivery instead of
	// waiting for the SMTP round trip.
	// Env: MAIL_ASYNC
	Async bool `env:"ASYNC"`

	// Workers is the number of delivery goroutines used in async mode.
	// Env: MAIL_WORKERS
	Workers int `env:"WORKERS"`

	// QueueSize is the capacity of the async delivery queue.
	// Env: MAIL_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// Adapter holds the settings used by the command-line client.
type Adapter struct {
	// HTTPAddress is the base address of the REST API (e.g.
	// "localhost:8080" or "https://accounts.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset values are then filled from defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
