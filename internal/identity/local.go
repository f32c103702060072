package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cx-tal-miterani/flightsim-portal/internal/database"
)

// UserStore persists local accounts. *database.Repository satisfies it.
type UserStore interface {
	CreateUser(ctx context.Context, u *database.User) error
	GetUserByEmail(ctx context.Context, email string) (*database.User, error)
}

// LocalProvider manages email and password accounts.
type LocalProvider struct {
	users UserStore
	cost  int
}

func NewLocalProvider(users UserStore) *LocalProvider {
	return &LocalProvider{users: users, cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost.
func (p *LocalProvider) WithCost(cost int) *LocalProvider {
	p.cost = cost
	return p
}

func (p *LocalProvider) SignUp(ctx context.Context, req SignUp) (*Identity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), p.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user := &database.User{
		ID:           uuid.New(),
		Email:        email,
		DisplayName:  displayNameFor(req.DisplayName, email),
		PasswordHash: string(hash),
	}
	if err := p.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &Identity{DisplayName: user.DisplayName, Email: user.Email, Provider: ProviderPassword}, nil
}

func (p *LocalProvider) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := p.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{DisplayName: user.DisplayName, Email: user.Email, Provider: ProviderPassword}, nil
}
