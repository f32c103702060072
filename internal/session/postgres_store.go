package session

import (
	"context"
	"errors"
	"time"

	"github.com/cx-tal-miterani/flightsim-portal/internal/database"
	"github.com/cx-tal-miterani/flightsim-portal/internal/identity"
)

// SessionRepository is the subset of *database.Repository the postgres
// store needs.
type SessionRepository interface {
	SaveSession(ctx context.Context, s *database.Session) error
	GetSession(ctx context.Context, id string) (*database.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type PostgresStore struct {
	repo SessionRepository
}

func NewPostgresStore(repo SessionRepository) *PostgresStore {
	return &PostgresStore{repo: repo}
}

func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	return p.repo.SaveSession(ctx, &database.Session{
		ID:          s.ID,
		DisplayName: s.DisplayName,
		Email:       s.Email,
		Provider:    string(s.Provider),
		CreatedAt:   s.CreatedAt,
		ExpiresAt:   s.ExpiresAt,
	})
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*Session, error) {
	row, err := p.repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &Session{
		ID:          row.ID,
		DisplayName: row.DisplayName,
		Email:       row.Email,
		Provider:    identity.Provider(row.Provider),
		CreatedAt:   row.CreatedAt,
		ExpiresAt:   row.ExpiresAt,
	}, nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	return p.repo.DeleteSession(ctx, id)
}

func (p *PostgresStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return p.repo.DeleteExpiredSessions(ctx, now)
}
