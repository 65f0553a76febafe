package authz

import (
	"context"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"scrumflow-api/internal/domain"
)

const (
	roleCacheKeyPrefix = "authz:roles:"
	roleCacheTTL       = 60 * time.Second
)

// RoleSource provides the stored role grants for a user
type RoleSource interface {
	FindRolesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Role, error)
}

// Resolver resolves the acting identity for a request. Role grants are
// cached in redis for a short TTL when a client is configured; without
// redis every request hits the database, which is still correct.
type Resolver struct {
	roles  RoleSource
	cache  *redis.Client
	logger *zap.Logger
}

// NewResolver creates a new Resolver. cache may be nil.
func NewResolver(roles RoleSource, cache *redis.Client, logger *zap.Logger) *Resolver {
	return &Resolver{roles: roles, cache: cache, logger: logger}
}

// Resolve builds the Actor for a user, reading role grants through the cache
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID) (Actor, error) {
	if roles, ok := r.cachedRoles(ctx, userID); ok {
		return Actor{UserID: userID, Roles: roles}, nil
	}

	roles, err := r.roles.FindRolesByUserID(ctx, userID)
	if err != nil {
		return Actor{}, err
	}

	r.storeRoles(ctx, userID, roles)
	return Actor{UserID: userID, Roles: roles}, nil
}

// Invalidate drops the cached roles for a user after a grant change
func (r *Resolver) Invalidate(ctx context.Context, userID uuid.UUID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Del(ctx, roleCacheKeyPrefix+userID.String()).Err(); err != nil {
		r.logger.Warn("Failed to invalidate role cache", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

func (r *Resolver) cachedRoles(ctx context.Context, userID uuid.UUID) ([]domain.Role, bool) {
	if r.cache == nil {
		return nil, false
	}
	val, err := r.cache.Get(ctx, roleCacheKeyPrefix+userID.String()).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("Role cache read failed", zap.Error(err))
		}
		return nil, false
	}
	if val == "" {
		return []domain.Role{}, true
	}
	parts := strings.Split(val, ",")
	roles := make([]domain.Role, 0, len(parts))
	for _, p := range parts {
		roles = append(roles, domain.Role(p))
	}
	return roles, true
}

func (r *Resolver) storeRoles(ctx context.Context, userID uuid.UUID, roles []domain.Role) {
	if r.cache == nil {
		return
	}
	parts := make([]string, len(roles))
	for i, role := range roles {
		parts[i] = string(role)
	}
	if err := r.cache.Set(ctx, roleCacheKeyPrefix+userID.String(), strings.Join(parts, ","), roleCacheTTL).Err(); err != nil {
		r.logger.Warn("Role cache write failed", zap.Error(err))
	}
}
