package identity

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// TokenVerifier checks a Firebase ID token. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// GoogleProvider signs users in with an ID token obtained from the Google
// popup on the client.
type GoogleProvider struct {
	verifier TokenVerifier
}

func NewGoogleProvider(v TokenVerifier) *GoogleProvider {
	return &GoogleProvider{verifier: v}
}

// NewFirebaseProvider initialises the Firebase admin SDK. An empty
// credentials file falls back to application default credentials.
func NewFirebaseProvider(ctx context.Context, projectID, credentialsFile string) (*GoogleProvider, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise firebase: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firebase auth client: %w", err)
	}
	return NewGoogleProvider(client), nil
}

func (p *GoogleProvider) Authenticate(ctx context.Context, idToken string) (*Identity, error) {
	if p == nil || p.verifier == nil {
		return nil, ErrProviderUnavailable
	}
	if strings.TrimSpace(idToken) == "" {
		return nil, ErrInvalidToken
	}

	token, err := p.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: token has no email", ErrInvalidToken)
	}
	name, _ := token.Claims["name"].(string)

	return &Identity{
		DisplayName: displayNameFor(name, email),
		Email:       strings.ToLower(email),
		Provider:    ProviderGoogle,
	}, nil
}
