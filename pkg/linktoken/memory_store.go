package linktoken

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

func (e memEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore implements Store in process memory. It is meant for tests and
// single-instance deployments; multi-instance setups need a shared backend
// such as pkg/redis.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memEntry

	now func() time.Time

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithClock overrides the time source. Tests use this to simulate TTL expiry
// without sleeping.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// WithCleanupInterval sets how often expired entries are swept.
// Set to 0 to disable the background sweep; expired entries are still
// filtered lazily on read.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		entries:         make(map[string]memEntry),
		now:             time.Now,
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

func (ms *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	ms.mu.RLock()
	e, ok := ms.entries[key]
	ms.mu.RUnlock()

	if !ok || e.expired(ms.now()) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (ms *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	e := memEntry{value: value}
	if ttl > 0 {
		e.expiresAt = ms.now().Add(ttl)
	}

	ms.mu.Lock()
	ms.entries[key] = e
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	now := ms.now()

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if e, ok := ms.entries[key]; ok && !e.expired(now) {
		return false, nil
	}

	e := memEntry{value: value}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	ms.entries[key] = e
	return true, nil
}

// TTL reports the remaining lifetime of key, following the Redis convention:
// -2 for absent keys, -1 for keys without expiry.
func (ms *MemoryStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	now := ms.now()

	ms.mu.RLock()
	e, ok := ms.entries[key]
	ms.mu.RUnlock()

	switch {
	case !ok || e.expired(now):
		return -2, nil
	case e.expiresAt.IsZero():
		return -1, nil
	default:
		return e.expiresAt.Sub(now), nil
	}
}

// Live always succeeds: process memory cannot be unreachable.
func (ms *MemoryStore) Live(ctx context.Context) error {
	return nil
}

// Close stops the background sweep.
func (ms *MemoryStore) Close() {
	ms.closeOnce.Do(func() {
		close(ms.stopCleanup)
	})
}

func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := ms.now()
			ms.mu.Lock()
			for key, e := range ms.entries {
				if e.expired(now) {
					delete(ms.entries, key)
				}
			}
			ms.mu.Unlock()
		case <-ms.stopCleanup:
			return
		}
	}
}
