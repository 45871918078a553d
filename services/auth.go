// Package services: services/auth.go
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"yala-safari-web/logger"
)

// ------------------- session storage -------------------

// SessionStore is the durable, scoped key-value persistence for the admin
// session. The production implementation wraps the cookie session; tests use
// an in-memory map.
type SessionStore interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
	Save() error
}

// Session keys are centralised here rather than scattered as string
// literals through the screens.
const (
	sessionKeyToken      = "adminToken"
	sessionKeySavedEmail = "adminSavedEmail"
)

// ------------------- auth service -------------------

// Canonical user-facing login messages, one per failure class. Only the
// login path gets status-specific wording; every other flow in the app uses
// the backend message or a generic fallback.
const (
	MsgInvalidCredentials = "invalid email or password"
	MsgAccessDenied       = "access denied"
	MsgUserNotFound       = "user not found"
	MsgTooManyAttempts    = "too many attempts, please try again later"
	MsgLoginFailed        = "login failed, please try again"
	MsgConnectivity       = "cannot reach the server, please check your connection"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService manages the admin credential session: login against the
// backend, token persistence, remembered email and logout.
type AuthService struct {
	client *BackendClient
}

// NewAuthService builds an AuthService over the backend client.
func NewAuthService(client *BackendClient) *AuthService {
	return &AuthService{client: client}
}

// Login validates the credentials client-side, exchanges them for a token
// and persists it. With remember set the email (never the password) is
// persisted too; without it any previously remembered email is cleared.
// Failures map to distinct canonical messages per failure class, and a
// request that never reached the server reads differently from a rejection.
func (s *AuthService) Login(ctx context.Context, store SessionStore, email, password string, remember bool) error {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return errors.New("please fill in all fields")
	}
	if !emailShape.MatchString(email) {
		return errors.New("please enter a valid email address")
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return errors.New(loginMessage(err))
	}
	if resp.Token == "" {
		return errors.New(MsgLoginFailed)
	}

	store.Set(sessionKeyToken, resp.Token)
	if remember {
		store.Set(sessionKeySavedEmail, email)
	} else {
		store.Delete(sessionKeySavedEmail)
	}
	if err := store.Save(); err != nil {
		logger.Error.Printf("Login: failed to persist session: %v", err)
		return errors.New(MsgLoginFailed)
	}

	logger.Info.Printf("Login: admin %s authenticated", email)
	return nil
}

func loginMessage(err error) string {
	var be *BackendError
	if !errors.As(err, &be) {
		return MsgLoginFailed
	}
	if be.Connectivity() {
		return MsgConnectivity
	}
	switch {
	case be.Status == 401:
		return MsgInvalidCredentials
	case be.Status == 403:
		return MsgAccessDenied
	case be.Status == 404:
		return MsgUserNotFound
	case be.Status == 429:
		return MsgTooManyAttempts
	case be.Message != "":
		return be.Message
	default:
		return MsgLoginFailed
	}
}

// IsAuthenticated reports whether a token is present locally. The token is
// trusted without a server round-trip; expiry only surfaces as a 401 on the
// next protected call.
func (s *AuthService) IsAuthenticated(store SessionStore) bool {
	return store.Get(sessionKeyToken) != ""
}

// Token returns the stored admin token, empty when logged out.
func (s *AuthService) Token(store SessionStore) string {
	return store.Get(sessionKeyToken)
}

// SavedEmail returns the remembered login email, if any.
func (s *AuthService) SavedEmail(store SessionStore) string {
	return store.Get(sessionKeySavedEmail)
}

// Logout clears the token. The remembered email is independent and survives
// until a later login is submitted without remember.
func (s *AuthService) Logout(store SessionStore) {
	store.Delete(sessionKeyToken)
	if err := store.Save(); err != nil {
		logger.Error.Printf("Logout: failed to persist session: %v", err)
	}
}
