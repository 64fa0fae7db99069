// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import "fmt"

// kind identifies which one-time code a message carries.
type kind int

const (
	kindActivation kind = iota
	kindReset
)

func (k kind) String() string {
	if k == kindReset {
		return "reset"
	}
	return "activation"
}

const (
	activationSubject = "Activate your account"
	resetSubject      = "Password reset code"
)

func subjectFor(k kind) string {
	if k == kindReset {
		return resetSubject
	}
	return activationSubject
}

func bodyFor(k kind, code string) string {
	if k == kindReset {
		return fmt.Sprintf("A password reset was requested for your account.\n\n"+
			"Your reset code: %s\n\n"+
			"If you did not request it, ignore this message.\n", code)
	}

	return fmt.Sprintf("Welcome!\n\n"+
		"Your activation code: %s\n\n"+
		"Enter it together with your email to activate the account.\n", code)
}
