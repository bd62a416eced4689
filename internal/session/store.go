package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no session exists for a key. Callers
// treat the request as anonymous in that case.
var ErrNotFound = errors.New("session not found")

// keyPrefix namespaces session entries in the shared store.
const keyPrefix = "sess:"

// Store persists sessions between requests. Implementations must be
// safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (Session, error)
	Save(ctx context.Context, key string, s Session, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NewKey returns a fresh random session key for the browser cookie.
func NewKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// RedisStore keeps sessions in Redis so they survive restarts and are
// shared across instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing Redis client. The client must be
// non-nil; callers that failed to connect should fall back to
// NewMemoryStore instead.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("nil redis client passed to NewRedisStore")
	}
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) (Session, error) {
	raw, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, key string, s Session, ttl time.Duration) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+key, raw, ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, keyPrefix+key).Err()
}

// MemoryStore is an in-process fallback used when Redis is not
// reachable at startup, and in tests. Sessions do not survive a
// restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	session Session
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (Session, error) {
	m.mu.RLock()
	e, ok := m.entries[keyPrefix+key]
	m.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		_ = m.Delete(ctx, key)
		return Session{}, ErrNotFound
	}
	return e.session, nil
}

func (m *MemoryStore) Save(_ context.Context, key string, s Session, ttl time.Duration) error {
	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[keyPrefix+key] = memoryEntry{session: s, expires: expires}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, keyPrefix+key)
	m.mu.Unlock()
	return nil
}
