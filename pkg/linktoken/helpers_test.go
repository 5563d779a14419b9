package linktoken_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrymomot/botguard/pkg/linktoken"
)

var errStoreDown = errors.New("store unreachable")

// fakeClock is a manually advanced time source for TTL simulation.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// newMemoryStore builds a store on the given clock without the background
// sweep, so tests control expiry deterministically.
func newMemoryStore(clock *fakeClock) *linktoken.MemoryStore {
	return linktoken.NewMemoryStore(
		linktoken.WithClock(clock.Now),
		linktoken.WithCleanupInterval(0),
	)
}

// unreachableStore fails every operation and counts write attempts, so tests
// can pin that a failed probe performed no write.
type unreachableStore struct {
	mu     sync.Mutex
	writes int
}

func (s *unreachableStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errStoreDown
}

func (s *unreachableStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	return errStoreDown
}

func (s *unreachableStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	return false, errStoreDown
}

func (s *unreachableStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	return 0, errStoreDown
}

func (s *unreachableStore) Live(ctx context.Context) error {
	return errStoreDown
}

func (s *unreachableStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
