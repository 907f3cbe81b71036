// Package services contains the application services of the StudyKeeper
// client. This file covers the credential flows: password policy, register
// and login.
package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/studykeeper/internal/client/client"
	"github.com/dmitrijs2005/studykeeper/internal/client/models"
	"github.com/dmitrijs2005/studykeeper/internal/common"
	"github.com/dmitrijs2005/studykeeper/internal/cryptox"
)

// MinPasswordLength is the shortest password the policy accepts.
const MinPasswordLength = 8

// DigestFunc turns a password into the value sent as password_hash.
type DigestFunc func(password string) string

// AuthService defines the credential operations of the client.
//
// Contract:
//   - Register: validate locally, then create the account remotely.
//   - Login: check that both fields are present, then authenticate remotely.
//
// Local validation failures are returned as errors matching one of the
// common.Err* sentinels and never reach the network. Transport failures are
// returned as errors too. Everything the endpoint answers, including
// malformed bodies, comes back as a result with OK set accordingly.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.AuthResult, error)
	Login(ctx context.Context, username, password string) (*models.AuthResult, error)
}

type authService struct {
	client client.Client
	digest DigestFunc
}

// NewAuthService binds the service to an API client. A nil digest means
// cryptox.Digest.
func NewAuthService(c client.Client, digest DigestFunc) AuthService {
	if digest == nil {
		digest = cryptox.Digest
	}
	return &authService{client: c, digest: digest}
}

// ValidatePassword applies the password policy. Rules are checked in order
// and the first one that fails is reported:
//  1. at least MinPasswordLength characters
//  2. ASCII letters and digits only
//  3. at least one uppercase letter
//  4. at least one digit
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return common.ErrPasswordTooShort
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
		default:
			return common.ErrPasswordCharset
		}
	}

	if !hasUpper {
		return common.ErrPasswordNoUpper
	}
	if !hasDigit {
		return common.ErrPasswordNoDigit
	}
	return nil
}

// Register trims both inputs, rejects an empty username or a password that
// fails ValidatePassword, and sends the username with the password digest.
// The raw password never leaves this function.
func (a *authService) Register(ctx context.Context, username, password string) (*models.AuthResult, error) {
	u := strings.TrimSpace(username)
	p := strings.TrimSpace(password)

	if u == "" {
		return nil, common.ErrEmptyUsername
	}
	if err := ValidatePassword(p); err != nil {
		return nil, err
	}

	return a.client.Register(ctx, u, a.digest(p))
}

// Login trims both inputs, rejects empty ones, and sends the username with
// the password digest. The password policy is not applied on login.
func (a *authService) Login(ctx context.Context, username, password string) (*models.AuthResult, error) {
	u := strings.TrimSpace(username)
	p := strings.TrimSpace(password)

	if u == "" {
		return nil, common.ErrEmptyUsername
	}
	if p == "" {
		return nil, common.ErrEmptyPassword
	}

	return a.client.Login(ctx, u, a.digest(p))
}
