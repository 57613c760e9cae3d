package auth

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers when a user's outstanding tokens stopped being valid.
// Tokens issued at or before the recorded instant are rejected by the AuthGate.
type RevocationStore interface {
	Revoke(ctx context.Context, userID string, at time.Time) error
	IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}

// revokedBy compares at millisecond precision, the resolution tokens carry.
func revokedBy(issuedAt, revokedAt time.Time) bool {
	return !issuedAt.After(revokedAt.Truncate(time.Millisecond))
}

// MemoryRevocationStore keeps revocations in process memory. Entries expire after ttl.
type MemoryRevocationStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]time.Time
}

// NewMemoryRevocationStore builds a store whose entries live for ttl (the token lifetime).
func NewMemoryRevocationStore(ttl time.Duration) *MemoryRevocationStore {
	return &MemoryRevocationStore{ttl: ttl, now: time.Now, entries: make(map[string]time.Time)}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = at
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, userID string, issuedAt time.Time) (bool, error) {
	s.mu.RLock()
	revokedAt, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if s.ttl > 0 && s.now().After(revokedAt.Add(s.ttl)) {
		s.mu.Lock()
		delete(s.entries, userID)
		s.mu.Unlock()
		return false, nil
	}
	return revokedBy(issuedAt, revokedAt), nil
}

// RedisRevocationStore shares revocations between service instances.
type RedisRevocationStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisRevocationStore builds a store; keys expire after ttl (the token lifetime).
func NewRedisRevocationStore(client *redis.Client, ttl time.Duration) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, prefix: "jobboard:revoked:", ttl: ttl}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, userID string, at time.Time) error {
	return s.client.Set(ctx, s.prefix+userID, strconv.FormatInt(at.UnixMilli(), 10), s.ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	val, err := s.client.Get(ctx, s.prefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	millis, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, err
	}
	return revokedBy(issuedAt, time.UnixMilli(millis)), nil
}

var (
	_ RevocationStore = (*MemoryRevocationStore)(nil)
	_ RevocationStore = (*RedisRevocationStore)(nil)
)
