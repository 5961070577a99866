package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist remembers revoked token ids until the tokens expire.
type Denylist interface {
	Add(ctx context.Context, jti string, until time.Time) error
	Contains(ctx context.Context, jti string) (bool, error)
}

type RedisDenylist struct {
	client *redis.Client
	prefix string
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client, prefix: "jwt:revoked:"}
}

func (d *RedisDenylist) Add(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, d.prefix+jti, 1, ttl).Err()
}

func (d *RedisDenylist) Contains(ctx context.Context, jti string) (bool, error) {
	err := d.client.Get(ctx, d.prefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Revoker implements auth.TokenRevoker on top of a Denylist.
type Revoker struct {
	gen  *Generator
	list Denylist
}

func NewRevoker(gen *Generator, list Denylist) *Revoker {
	return &Revoker{gen: gen, list: list}
}

// Revoke denylists a valid token. Invalid or expired tokens need no revocation.
func (r *Revoker) Revoke(ctx context.Context, token string) error {
	claims, err := r.gen.Parse(token)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	return r.list.Add(ctx, claims.ID, claims.ExpiresAt.Time)
}
