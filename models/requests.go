// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ActivateRequest is the body of POST /api/auth/activate.
type ActivateRequest struct {
	Email          string `json:"email"`
	ActivationCode string `json:"activation_code"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetRequest is the body of POST /api/auth/reset.
type ResetRequest struct {
	Email string `json:"email"`
}

// ChangePasswordRequest is the body of POST /api/auth/change.
type ChangePasswordRequest struct {
	Email       string `json:"email"`
	ResetCode   string `json:"reset_code"`
	NewPassword string `json:"new_password"`
}
