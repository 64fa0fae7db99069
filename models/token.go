// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT issued for an account.
//
// The embedded [jwt.RegisteredClaims] makes Token usable directly as the
// claims target of [jwt.ParseWithClaims].
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// AccountID caches the parsed "sub" claim.
	AccountID int64 `json:"-"`
}

// GetAccountID parses the "sub" claim as a base-10 account id.
func (t *Token) GetAccountID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account id from token: %w", err)
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account id from token to int64: %w", err)
	}

	return accountID, nil
}

// String returns the compact serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
