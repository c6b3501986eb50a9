package sso

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cachedVerifier struct {
	redis    *redis.Client
	verifier Verifier
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// raw tokens never reach redis
func (*cachedVerifier) getTokenCachedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("sso:token:%s", hex.EncodeToString(sum[:]))
}

func (c *cachedVerifier) Verify(ctx context.Context, token string) (User, error) {
	key := c.getTokenCachedKey(token)
	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var user User
		e := json.Unmarshal(data, &user)
		if e == nil && !user.Expired(c.now()) {
			return user, nil
		}
		if e != nil {
			c.logger.Warn("dropping malformed cached sso user", zap.String("key", key))
		}
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("sso cache lookup failed", zap.Error(err))
	}

	user, err := c.verifier.Verify(ctx, token)
	if err != nil {
		return User{}, fmt.Errorf("cachedVerifier.Verify: %w", err)
	}
	ttl := c.entryTTL(user, c.now())
	if ttl <= 0 {
		return user, nil
	}
	b, err := json.Marshal(user)
	if err != nil {
		return user, nil
	}
	if e := c.redis.Set(ctx, key, b, ttl).Err(); e != nil {
		c.logger.Warn("failed to cache sso user", zap.Error(e))
	}
	return user, nil
}

// entryTTL caps cacheTTL at the token's remaining lifetime. Zero means the entry is not stored.
func (c *cachedVerifier) entryTTL(user User, now time.Time) time.Duration {
	if user.ExpiresAt == 0 {
		return c.cacheTTL
	}
	remaining := time.Unix(user.ExpiresAt, 0).Sub(now)
	if remaining <= 0 {
		return 0
	}
	return min(remaining, c.cacheTTL)
}

// NewCachedVerifier remembers successful verifications for at most cacheTTL, never past the token exp. Failed ones are not cached.
func NewCachedVerifier(redis *redis.Client, verifier Verifier, cacheTTL time.Duration, logger *zap.Logger) Verifier {
	return &cachedVerifier{
		redis:    redis,
		verifier: verifier,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}
