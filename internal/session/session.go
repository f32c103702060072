// Package session holds the explicit portal session. Login and Logout on
// Manager are the only places a session is written.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cx-tal-miterani/flightsim-portal/internal/identity"
)

const CookieName = "flightsim_session"

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"displayName"`
	Email       string            `json:"email"`
	Provider    identity.Provider `json:"provider"`
	CreatedAt   time.Time         `json:"createdAt"`
	ExpiresAt   time.Time         `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Store persists sessions by id. Get returns ErrNotFound for unknown or
// expired sessions.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type contextKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// IDFromRequest returns the session id carried by the request cookie, or "".
func IDFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
