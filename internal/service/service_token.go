// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

// jwtTokenService signs HS256 JWTs carrying iss, sub, iat and exp.
type jwtTokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration is the difference between exp and iat.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewTokenService returns a [TokenService] configured from cfg. A missing
// sign key is a deployment error and yields [ErrMissingTokenSignKey].
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrMissingTokenSignKey
	}

	return &jwtTokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}, nil
}

// Issue mints a token for accountID valid from now for the configured
// duration.
func (s *jwtTokenService) Issue(ctx context.Context, accountID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, accountID, s.now(), s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Parse validates signature, issuer and expiry. Every failure is reported
// as [ErrTokenIsExpiredOrInvalid].
func (s *jwtTokenService) Parse(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
