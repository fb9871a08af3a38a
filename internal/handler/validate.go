package handler

import (
	"net/mail"
	"strings"
)

// FieldError describes a single violated input constraint. Code is a stable
// machine-readable tag; Field names the offending request field.
type FieldError struct {
	Code  string `json:"code"`
	Field string `json:"field"`
}

// Validation codes, one per constraint.
const (
	codeNameNotBlank                 = "NAME_NOT_BLANK"
	codeSurnameNotBlank              = "SURNAME_NOT_BLANK"
	codeEmailNotBlank                = "EMAIL_NOT_BLANK"
	codeIncorrectEmailFormat         = "INCORRECT_EMAIL_FORMAT"
	codeGivenEmailExists             = "GIVEN_EMAIL_EXISTS"
	codePasswordNotBlank             = "PASSWORD_NOT_BLANK"
	codeCurrentPasswordNotBlank      = "CURRENT_PASSWORD_NOT_BLANK"
	codeNewPasswordNotBlank          = "NEW_PASSWORD_NOT_BLANK"
	codeConfirmationPasswordNotBlank = "CONFIRMATION_PASSWORD_NOT_BLANK"
)

// validateRegister checks structural constraints on a registration request
// and returns one FieldError per violation, in field order.
func validateRegister(req RegisterRequest) []FieldError {
	var errs []FieldError
	if isBlank(req.Name) {
		errs = append(errs, FieldError{Code: codeNameNotBlank, Field: "name"})
	}
	if isBlank(req.Surname) {
		errs = append(errs, FieldError{Code: codeSurnameNotBlank, Field: "surname"})
	}
	if isBlank(req.Email) {
		errs = append(errs, FieldError{Code: codeEmailNotBlank, Field: "email"})
	} else if !validEmail(req.Email) {
		errs = append(errs, FieldError{Code: codeIncorrectEmailFormat, Field: "email"})
	}
	if isBlank(req.Password) {
		errs = append(errs, FieldError{Code: codePasswordNotBlank, Field: "password"})
	}
	return errs
}

// validateAuthentication checks structural constraints on an authentication
// request.
func validateAuthentication(req AuthenticationRequest) []FieldError {
	var errs []FieldError
	if isBlank(req.Email) {
		errs = append(errs, FieldError{Code: codeEmailNotBlank, Field: "email"})
	} else if !validEmail(req.Email) {
		errs = append(errs, FieldError{Code: codeIncorrectEmailFormat, Field: "email"})
	}
	if isBlank(req.Password) {
		errs = append(errs, FieldError{Code: codePasswordNotBlank, Field: "password"})
	}
	return errs
}

// validateChangePassword checks structural constraints on a password-change
// request.
func validateChangePassword(req ChangePasswordRequest) []FieldError {
	var errs []FieldError
	if isBlank(req.CurrentPassword) {
		errs = append(errs, FieldError{Code: codeCurrentPasswordNotBlank, Field: "currentPassword"})
	}
	if isBlank(req.NewPassword) {
		errs = append(errs, FieldError{Code: codeNewPasswordNotBlank, Field: "newPassword"})
	}
	if isBlank(req.ConfirmationPassword) {
		errs = append(errs, FieldError{Code: codeConfirmationPasswordNotBlank, Field: "confirmationPassword"})
	}
	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validEmail accepts plain addr-spec addresses like user@example.com.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
