// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/MKhiriev/go-account-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the JSON names of the request bodies.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldActivationCode = "activation_code"
	FieldResetCode      = "reset_code"
	FieldNewPassword    = "new_password"
)

const (
	NameMinLength     = 2
	NameMaxLength     = 20
	PasswordMinLength = 6
	PasswordMaxLength = 16
)

var (
	namePattern = regexp.MustCompile(`^[a-zA-Z ]+$`)

	// secretPattern accepts every character a generated one-time code can
	// contain, so codes and passwords share one rule.
	secretPattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()\-+*=/.,{}<>?;]+$`)
)

var (
	nameRules = []validation.Rule{
		validation.Required,
		validation.RuneLength(NameMinLength, NameMaxLength),
		validation.Match(namePattern).Error("must contain only letters and spaces"),
	}
	emailRules = []validation.Rule{
		validation.Required,
		is.Email,
	}
	secretRules = []validation.Rule{
		validation.Required,
		validation.Length(PasswordMinLength, PasswordMaxLength),
		validation.Match(secretPattern).Error("contains characters that are not allowed"),
	}
)

// fieldRule pairs a field value with the rules it must satisfy.
type fieldRule struct {
	name  string
	value string
	rules []validation.Rule
}

// AccountValidator implements [Validator] for the account request bodies:
// RegisterRequest, ActivateRequest, LoginRequest, ResetRequest and
// ChangePasswordRequest. Value and pointer forms are accepted.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator and returns it as the
// Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches on the dynamic type of obj and checks every field of the
// request, or only the named ones when fields is not empty.
//
// All violations are collected. The returned error wraps [ErrInvalidInput]
// and a [validation.Errors] keyed by field name. Unsupported types yield
// [ErrUnsupportedType], unknown field names [ErrUnknownField].
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var rules []fieldRule

	switch value := obj.(type) {
	case models.RegisterRequest:
		rules = registerRules(value)
	case *models.RegisterRequest:
		rules = registerRules(*value)

	case models.ActivateRequest:
		rules = activateRules(value)
	case *models.ActivateRequest:
		rules = activateRules(*value)

	case models.LoginRequest:
		rules = loginRules(value)
	case *models.LoginRequest:
		rules = loginRules(*value)

	case models.ResetRequest:
		rules = resetRules(value)
	case *models.ResetRequest:
		rules = resetRules(*value)

	case models.ChangePasswordRequest:
		rules = changePasswordRules(value)
	case *models.ChangePasswordRequest:
		rules = changePasswordRules(*value)

	default:
		return ErrUnsupportedType
	}

	selected, err := selectFields(rules, fields)
	if err != nil {
		return err
	}

	return validateFields(selected)
}

func registerRules(r models.RegisterRequest) []fieldRule {
	return []fieldRule{
		{name: FieldName, value: r.Name, rules: nameRules},
		{name: FieldEmail, value: r.Email, rules: emailRules},
		{name: FieldPassword, value: r.Password, rules: secretRules},
	}
}

func activateRules(r models.ActivateRequest) []fieldRule {
	return []fieldRule{
		{name: FieldEmail, value: r.Email, rules: emailRules},
		{name: FieldActivationCode, value: r.ActivationCode, rules: secretRules},
	}
}

func loginRules(r models.LoginRequest) []fieldRule {
	return []fieldRule{
		{name: FieldEmail, value: r.Email, rules: emailRules},
		{name: FieldPassword, value: r.Password, rules: secretRules},
	}
}

func resetRules(r models.ResetRequest) []fieldRule {
	return []fieldRule{
		{name: FieldEmail, value: r.Email, rules: emailRules},
	}
}

func changePasswordRules(r models.ChangePasswordRequest) []fieldRule {
	return []fieldRule{
		{name: FieldEmail, value: r.Email, rules: emailRules},
		{name: FieldResetCode, value: r.ResetCode, rules: secretRules},
		{name: FieldNewPassword, value: r.NewPassword, rules: secretRules},
	}
}

func selectFields(all []fieldRule, names []string) ([]fieldRule, error) {
	if len(names) == 0 {
		return all, nil
	}

	selected := make([]fieldRule, 0, len(names))
	for _, name := range names {
		found := false
		for _, f := range all {
			if f.name == name {
				selected = append(selected, f)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}

	return selected, nil
}

func validateFields(fields []fieldRule) error {
	errs := validation.Errors{}
	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			errs[f.name] = err
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, errs)
}
