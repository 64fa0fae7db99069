// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptySecret = errors.New("secret must not be empty")

// BcryptHasher implements [Hasher] with bcrypt. bcrypt salts every digest
// and compares in constant time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given work factor.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range %d..%d", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &BcryptHasher{cost: cost}, nil
}

// Hash implements [Hasher]. Secrets longer than 72 bytes are rejected by
// bcrypt and reported as an error.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}

	return string(digest), nil
}

// Verify implements [Hasher].
func (h *BcryptHasher) Verify(secret, digest string) bool {
	if secret == "" || digest == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
