package currency

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store holds the active display currency per session. A session that has
// never touched the toggle reads as DefaultCode. Set with an unrecognized
// code is a silent no-op, mirroring the portal's long-standing behavior.
type Store interface {
	Get(ctx context.Context, sessionID string) (Code, error)
	Set(ctx context.Context, sessionID string, c Code) error
	Toggle(ctx context.Context, sessionID string) (Code, error)
}

const sessionKeyPrefix = "currency:"

// RedisStore keeps display-currency state in Redis with a TTL, the same way
// booking-session state is cached.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (Code, error) {
	val, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return DefaultCode, nil
	}
	if err != nil {
		return DefaultCode, err
	}
	c := Code(val)
	if !c.Valid() {
		return DefaultCode, nil
	}
	return c, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID string, c Code) error {
	if !c.Valid() {
		return nil
	}
	return s.Client.Set(ctx, sessionKeyPrefix+sessionID, string(c), s.TTL).Err()
}

func (s *RedisStore) Toggle(ctx context.Context, sessionID string) (Code, error) {
	current, err := s.Get(ctx, sessionID)
	if err != nil {
		return DefaultCode, err
	}
	next := current.Other()
	if err := s.Set(ctx, sessionID, next); err != nil {
		return current, err
	}
	return next, nil
}

// MemoryStore is an in-process Store used in tests and single-instance runs.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Code
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Code)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (Code, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.sessions[sessionID]; ok {
		return c, nil
	}
	return DefaultCode, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID string, c Code) error {
	if !c.Valid() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = c
	return nil
}

func (s *MemoryStore) Toggle(ctx context.Context, sessionID string) (Code, error) {
	current, err := s.Get(ctx, sessionID)
	if err != nil {
		return DefaultCode, err
	}
	next := current.Other()
	if err := s.Set(ctx, sessionID, next); err != nil {
		return current, err
	}
	return next, nil
}
