package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// OAuthState stores single-use sign-in nonces.
type OAuthState struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOAuthState(rdb *redis.Client) *OAuthState {
	return &OAuthState{
		rdb: rdb,
		ttl: 10 * time.Minute,
	}
}

func stateKey(state string) string {
	return "oauth:state:" + state
}

func (s *OAuthState) Put(ctx context.Context, state string) error {
	return s.rdb.Set(ctx, stateKey(state), "1", s.ttl).Err()
}

// Consume deletes the nonce and reports whether it existed, so a state
// value can never be replayed.
func (s *OAuthState) Consume(ctx context.Context, state string) bool {
	n, err := s.rdb.Del(ctx, stateKey(state)).Result()
	return err == nil && n > 0
}
