// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
)

// listUsers returns the public view of every account. The caller must be
// authenticated.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrMissingAccountID)
		return
	}

	accounts, err := h.credentials.ListAccounts(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("account_id", accountID).Int("count", len(accounts)).Msg("accounts listed")
	h.writeResponse(w, r, accounts)
}
