// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SuccessResponse acknowledges an operation that has nothing else to return,
// such as a password reset request.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse carries a human-readable failure message back to the caller.
type ErrorResponse struct {
	Error string `json:"error"`
}
