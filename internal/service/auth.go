package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/identity"
	"github.com/cx-tal-miterani/flightsim-portal/internal/session"
)

// AuthService opens and closes portal sessions
type AuthService interface {
	SignUp(ctx context.Context, req identity.SignUp) (*session.Session, error)
	Login(ctx context.Context, email, password string) (*session.Session, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*session.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) (*session.Session, error)
}

// PasswordAuthenticator is satisfied by *identity.LocalProvider.
type PasswordAuthenticator interface {
	SignUp(ctx context.Context, req identity.SignUp) (*identity.Identity, error)
	Authenticate(ctx context.Context, email, password string) (*identity.Identity, error)
}

// TokenAuthenticator is satisfied by *identity.GoogleProvider.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, idToken string) (*identity.Identity, error)
}

type authServiceImpl struct {
	local    PasswordAuthenticator
	google   TokenAuthenticator
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService. Either provider may be nil when
// it is not configured.
func NewAuthService(local PasswordAuthenticator, google TokenAuthenticator, sessions *session.Manager, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		local:    local,
		google:   google,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *authServiceImpl) SignUp(ctx context.Context, req identity.SignUp) (*session.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.local == nil {
		return nil, identity.ErrProviderUnavailable
	}
	id, err := s.local.SignUp(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.login(ctx, id)
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*session.Session, error) {
	if s.local == nil {
		return nil, identity.ErrProviderUnavailable
	}
	id, err := s.local.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.login(ctx, id)
}

func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, idToken string) (*session.Session, error) {
	if s.google == nil {
		return nil, identity.ErrProviderUnavailable
	}
	id, err := s.google.Authenticate(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return s.login(ctx, id)
}

func (s *authServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Logout(ctx, sessionID)
}

func (s *authServiceImpl) Current(ctx context.Context, sessionID string) (*session.Session, error) {
	return s.sessions.Current(ctx, sessionID)
}

func (s *authServiceImpl) login(ctx context.Context, id *identity.Identity) (*session.Session, error) {
	sess, err := s.sessions.Login(ctx, *id)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return sess, nil
}
