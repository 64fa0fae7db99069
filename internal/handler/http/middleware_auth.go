// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
)

// auth enforces bearer token authentication.
//
// The token from the "Authorization: Bearer <token>" header is validated by
// the token parser and the account id it carries is stored in the request
// context with [utils.WithAccountID]. Missing, malformed, expired or forged
// tokens are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.tokens.Parse(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).With().Int64("account_id", token.AccountID).Logger()
		ctx = l.WithContext(utils.WithAccountID(ctx, token.AccountID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
