// Package identity authenticates portal users, either with a local password
// account or with a Google ID token verified through Firebase.
package identity

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

type Provider string

const (
	ProviderPassword Provider = "password"
	ProviderGoogle   Provider = "google"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrInvalidToken        = errors.New("invalid identity token")
	ErrProviderUnavailable = errors.New("identity provider is not configured")
	ErrInvalidSignUp       = errors.New("invalid sign-up")
)

const MinPasswordLength = 6

// Identity is an authenticated user as seen by the portal.
type Identity struct {
	DisplayName string   `json:"displayName"`
	Email       string   `json:"email"`
	Provider    Provider `json:"provider"`
}

type SignUp struct {
	DisplayName     string `json:"display_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate rejects a sign-up before anything is written. A password and
// confirmation that differ are always rejected.
func (s SignUp) Validate() error {
	if strings.TrimSpace(s.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidSignUp)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(s.Email)); err != nil {
		return fmt.Errorf("%w: email is not valid", ErrInvalidSignUp)
	}
	if s.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidSignUp)
	}
	if len(s.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidSignUp, MinPasswordLength)
	}
	if s.Password != s.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidSignUp)
	}
	return nil
}

// displayNameFor falls back to the local part of the email.
func displayNameFor(name, email string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	local, _, _ := strings.Cut(email, "@")
	return local
}
