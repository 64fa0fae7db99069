// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// CodeAlphabet is the set of characters one-time codes are drawn from. It
// covers every character accepted by the password rule, so a code can be
// validated with the same rule as a password.
const CodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()-+=/.,{}<>?;"

var (
	ErrInvalidCodeLength = errors.New("code length must be positive")
	ErrRandomSource      = errors.New("random source failure")
)

// RandomCodeGenerator draws each character of a code independently and
// uniformly from [CodeAlphabet].
type RandomCodeGenerator struct {
	length int
	random io.Reader
	max    *big.Int
}

// NewRandomCodeGenerator returns a generator of codes of the given length
// backed by crypto/rand.
func NewRandomCodeGenerator(length int) (*RandomCodeGenerator, error) {
	return newRandomCodeGenerator(length, rand.Reader)
}

func newRandomCodeGenerator(length int, random io.Reader) (*RandomCodeGenerator, error) {
	if length < 1 {
		return nil, ErrInvalidCodeLength
	}

	return &RandomCodeGenerator{
		length: length,
		random: random,
		max:    big.NewInt(int64(len(CodeAlphabet))),
	}, nil
}

// Generate implements [CodeGenerator].
func (g *RandomCodeGenerator) Generate() (string, error) {
	code := make([]byte, g.length)
	for i := range code {
		n, err := rand.Int(g.random, g.max)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
		}
		code[i] = CodeAlphabet[n.Int64()]
	}

	return string(code), nil
}
