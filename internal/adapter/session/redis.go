package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// RedisStore keeps sessions in Redis with a server-side TTL, so every
// replica sees the same sessions and logout is global.
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a store that namespaces keys with prefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

type redisSession struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

// Save stores s with a TTL matching its expiry.
func (r *RedisStore) Save(ctx context.Context, s domain.Session) error {
	ttl := s.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return domain.NewValidationError("expires_at", "session already expired")
	}

	payload, err := json.Marshal(redisSession{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		Username:  s.Username,
		Role:      string(s.Role),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}

	if err := r.client.Set(ctx, r.key(s.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("session %s save: %w: %w", s.ID, domain.ErrStorage, err)
	}
	return nil
}

// Get returns the session, or domain.ErrNotFound if it is missing or expired.
func (r *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("session %s get: %w: %w", id, domain.ErrStorage, err)
	}

	var rs redisSession
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, fmt.Errorf("session %s unmarshal: %w: %w", id, domain.ErrStorage, err)
	}
	s := rs.toDomain()
	if s.IsExpired(r.now()) {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return &s, nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("session %s delete: %w: %w", id, domain.ErrStorage, err)
	}
	return nil
}

// Ping checks connectivity for /health.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (rs redisSession) toDomain() domain.Session {
	return domain.Session{
		ID:        rs.ID,
		UserID:    rs.UserID,
		Name:      rs.Name,
		Username:  rs.Username,
		Role:      domain.Role(rs.Role),
		CreatedAt: rs.CreatedAt,
		ExpiresAt: rs.ExpiresAt,
	}
}
