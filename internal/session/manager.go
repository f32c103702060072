package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/identity"
)

type Manager struct {
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewManager(store Store, ttl time.Duration, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, ttl: ttl, now: time.Now, logger: logger}
}

// WithClock replaces the time source, for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// Login opens a new session for an authenticated identity.
func (m *Manager) Login(ctx context.Context, id identity.Identity) (*Session, error) {
	now := m.now().UTC()
	s := &Session{
		ID:          uuid.NewString(),
		DisplayName: id.DisplayName,
		Email:       id.Email,
		Provider:    id.Provider,
		CreatedAt:   now,
		ExpiresAt:   now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	m.logger.Info("session opened",
		zap.String("session_id", s.ID),
		zap.String("provider", string(s.Provider)),
	)
	return s, nil
}

// Logout removes the session. Unknown ids are not an error.
func (m *Manager) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	m.logger.Info("session closed", zap.String("session_id", id))
	return nil
}

// Current resolves a session id. Expired sessions are reported as missing.
func (m *Manager) Current(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Expired(m.now()) {
		return nil, ErrNotFound
	}
	return s, nil
}
