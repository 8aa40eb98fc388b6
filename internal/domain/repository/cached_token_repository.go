package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"fitastic/internal/domain/model"
	"fitastic/internal/platform/logging"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedTokenRepository caches liveness lookups in redis in front of the
// authoritative store. Entries live at most the configured TTL (recommended
// <=1s), and every revocation writes through by dropping the affected keys,
// so a revoked token is rejected no later than one TTL after revocation.
// All other operations pass straight to the underlying repository.
type cachedTokenRepository struct {
	TokenRepository
	rdb *redis.Client
	ttl time.Duration
}

func NewCachedTokenRepository(inner TokenRepository, rdb *redis.Client, ttl time.Duration) TokenRepository {
	return &cachedTokenRepository{TokenRepository: inner, rdb: rdb, ttl: ttl}
}

func livenessKey(kind, raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return "token:" + kind + ":" + hex.EncodeToString(sum[:])
}

func (r *cachedTokenRepository) IsAccessTokenLive(ctx context.Context, raw string) (bool, error) {
	return r.isLiveCached(ctx, "access", raw, r.TokenRepository.IsAccessTokenLive)
}

func (r *cachedTokenRepository) IsRefreshTokenLive(ctx context.Context, raw string) (bool, error) {
	return r.isLiveCached(ctx, "refresh", raw, r.TokenRepository.IsRefreshTokenLive)
}

func (r *cachedTokenRepository) isLiveCached(ctx context.Context, kind, raw string, lookup func(context.Context, string) (bool, error)) (bool, error) {
	key := livenessKey(kind, raw)

	cached, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		return cached == "1", nil
	}
	if err != redis.Nil {
		// Cache trouble must not take authentication down.
		logging.L.Warn("token liveness cache read failed", zap.Error(err))
	}

	live, err := lookup(ctx, raw)
	if err != nil {
		return false, err
	}

	value := "0"
	if live {
		value = "1"
	}
	if err := r.rdb.Set(ctx, key, value, r.ttl).Err(); err != nil {
		logging.L.Warn("token liveness cache write failed", zap.Error(err))
	}
	return live, nil
}

func (r *cachedTokenRepository) RevokeAllByUser(ctx context.Context, userID string) ([]model.Token, error) {
	revoked, err := r.TokenRepository.RevokeAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range revoked {
		r.invalidate(ctx, &revoked[i])
	}
	return revoked, nil
}

func (r *cachedTokenRepository) Revoke(ctx context.Context, token *model.Token) error {
	if err := r.TokenRepository.Revoke(ctx, token); err != nil {
		return err
	}
	r.invalidate(ctx, token)
	return nil
}

func (r *cachedTokenRepository) invalidate(ctx context.Context, token *model.Token) {
	keys := []string{
		livenessKey("access", token.AccessToken),
		livenessKey("refresh", token.RefreshToken),
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		logging.L.Warn("token liveness cache invalidation failed", zap.String("token_id", token.ID), zap.Error(err))
	}
}
