package auth

import (
	"context"
	"time"
)

// Token is a signed session token.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenGenerator abstracts token creation (e.g., JWT).
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (Token, error)
}

// TokenRevoker invalidates a session token before it expires.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string) error
}
