// Package common defines sentinel errors and small helpers shared by the
// StudyKeeper client packages. Callers should match errors with errors.Is.
package common

import "errors"

var (
	// Credential errors, detected before anything is sent.
	ErrEmptyUsername = errors.New("enter a username")
	ErrEmptyPassword = errors.New("enter a password")

	// Password policy errors, in the order the policy checks them.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordCharset  = errors.New("password may contain only letters and digits (no spaces or special characters)")
	ErrPasswordNoUpper  = errors.New("password must contain at least 1 uppercase letter")
	ErrPasswordNoDigit  = errors.New("password must contain at least 1 digit")
)

var validationErrors = []error{
	ErrEmptyUsername,
	ErrEmptyPassword,
	ErrPasswordTooShort,
	ErrPasswordCharset,
	ErrPasswordNoUpper,
	ErrPasswordNoDigit,
}

// IsValidation reports whether err is a local validation failure, i.e. one
// that was raised before any request reached the remote endpoint.
func IsValidation(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
