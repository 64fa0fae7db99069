// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the secret-handling primitives of the account
// service: one-time code generation and one-way hashing of passwords and
// codes. Both are exposed as interfaces so the service layer can be tested
// with deterministic fakes.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// CodeGenerator produces one-time codes sent to account owners.
type CodeGenerator interface {
	// Generate returns a fresh code. Every call is independent of the
	// previous ones. An error means the random source is broken and must
	// be treated as fatal by the caller.
	Generate() (string, error)
}

// Hasher turns secrets (passwords, activation and reset codes) into slow,
// salted one-way digests and checks secrets against them.
type Hasher interface {
	// Hash returns the digest of secret.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches digest. A malformed or empty
	// digest yields false, never an error.
	Verify(secret, digest string) bool
}
