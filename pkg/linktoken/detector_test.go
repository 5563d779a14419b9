package linktoken_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/botguard/pkg/ipnet"
	"github.com/dmitrymomot/botguard/pkg/linktoken"
)

// newDetector builds a detector grouping IPv4 clients into /24 networks, so
// tests can exercise the network-not-address keying.
func newDetector(t *testing.T, store linktoken.Store) *linktoken.Detector {
	t.Helper()

	resolver, err := ipnet.New(ipnet.Config{IPv4Prefix: 24, IPv6Prefix: 48})
	require.NoError(t, err)

	detector, err := linktoken.New(store, linktoken.DefaultConfig(), linktoken.WithResolver(resolver))
	require.NoError(t, err)
	return detector
}

func newClientRequest(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/search?q=test", nil)
	req.RemoteAddr = remoteAddr
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set("User-Agent", "TestBot/1.0")
	return req
}

func TestNew(t *testing.T) {
	t.Run("requires a store", func(t *testing.T) {
		_, err := linktoken.New(nil, linktoken.DefaultConfig())
		assert.ErrorIs(t, err, linktoken.ErrNoStore)
	})

	t.Run("defaults the resolver", func(t *testing.T) {
		detector, err := linktoken.New(newMemoryStore(newFakeClock()), linktoken.DefaultConfig())
		require.NoError(t, err)
		require.NotNil(t, detector)
	})
}

func TestIsSuspicious(t *testing.T) {
	t.Run("true when no ping was ever recorded", func(t *testing.T) {
		detector := newDetector(t, newMemoryStore(newFakeClock()))

		req := newClientRequest("203.0.113.5:40000")
		assert.True(t, detector.IsSuspicious(t.Context(), testNetwork, req, false))
	})

	t.Run("false after a valid probe from the same network", func(t *testing.T) {
		detector := newDetector(t, newMemoryStore(newFakeClock()))

		probe := newClientRequest("203.0.113.5:40000")
		detector.Probe(t.Context(), probe, detector.Token(t.Context()))

		check := newClientRequest("203.0.113.99:41000")
		assert.False(t, detector.IsSuspicious(t.Context(), testNetwork, check, false))
	})

	t.Run("still true for a different header fingerprint", func(t *testing.T) {
		detector := newDetector(t, newMemoryStore(newFakeClock()))

		probe := newClientRequest("203.0.113.5:40000")
		detector.Probe(t.Context(), probe, detector.Token(t.Context()))

		check := newClientRequest("203.0.113.5:41000")
		check.Header.Set("User-Agent", "OtherBot/2.0")
		assert.True(t, detector.IsSuspicious(t.Context(), testNetwork, check, false))
	})

	t.Run("renew extends the ping ttl to the full window", func(t *testing.T) {
		clock := newFakeClock()
		store := newMemoryStore(clock)
		detector := newDetector(t, store)

		probe := newClientRequest("203.0.113.5:40000")
		detector.Probe(t.Context(), probe, detector.Token(t.Context()))
		clock.Advance(45 * time.Minute)

		check := newClientRequest("203.0.113.5:41000")
		require.False(t, detector.IsSuspicious(t.Context(), testNetwork, check, true))

		ttl, err := store.TTL(t.Context(), detector.Ledger().Key(testNetwork, "en-US", "TestBot/1.0"))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, ttl)
	})

	t.Run("false when store is unreachable", func(t *testing.T) {
		detector := newDetector(t, &unreachableStore{})

		req := newClientRequest("203.0.113.5:40000")
		assert.False(t, detector.IsSuspicious(t.Context(), testNetwork, req, false))
	})
}

func TestProbe(t *testing.T) {
	t.Run("invalid token writes nothing", func(t *testing.T) {
		detector := newDetector(t, newMemoryStore(newFakeClock()))

		probe := newClientRequest("203.0.113.5:40000")
		detector.Probe(t.Context(), probe, "0000000000000000")

		check := newClientRequest("203.0.113.5:41000")
		assert.True(t, detector.IsSuspicious(t.Context(), testNetwork, check, false))
	})

	t.Run("stale token writes nothing", func(t *testing.T) {
		clock := newFakeClock()
		detector := newDetector(t, newMemoryStore(clock))

		stale := detector.Token(t.Context())
		clock.Advance(10*time.Minute + time.Second)

		probe := newClientRequest("203.0.113.5:40000")
		detector.Probe(t.Context(), probe, stale)

		check := newClientRequest("203.0.113.5:41000")
		assert.True(t, detector.IsSuspicious(t.Context(), testNetwork, check, false))
	})

	t.Run("unresolvable client address writes nothing", func(t *testing.T) {
		store := newMemoryStore(newFakeClock())
		detector := newDetector(t, store)

		probe := newClientRequest("not-an-address")
		detector.Probe(t.Context(), probe, detector.Token(t.Context()))

		check := newClientRequest("203.0.113.5:41000")
		assert.True(t, detector.IsSuspicious(t.Context(), testNetwork, check, false))
	})

	t.Run("unreachable store performs no write", func(t *testing.T) {
		store := &unreachableStore{}
		detector := newDetector(t, store)

		probe := newClientRequest("203.0.113.5:40000")
		detector.Probe(t.Context(), probe, linktoken.FallbackToken)

		assert.Zero(t, store.writeCount())
	})
}

func TestEndToEnd(t *testing.T) {
	clock := newFakeClock()
	detector := newDetector(t, newMemoryStore(clock))

	// Step 1: render path reads the current token.
	tok := detector.Token(t.Context())
	require.Regexp(t, "^[a-z0-9]{16}$", tok)

	// Step 2: the browser fetches the stylesheet, recording a ping for
	// 203.0.113.0/24 + en-US + TestBot/1.0.
	probe := newClientRequest("203.0.113.7:52000")
	detector.Probe(t.Context(), probe, tok)

	// Step 3: a later request from the same fingerprint is not suspicious.
	check := newClientRequest("203.0.113.42:53000")
	assert.False(t, detector.IsSuspicious(t.Context(), testNetwork, check, false))

	// Step 4: past the ping lifetime the fingerprint is suspicious again.
	clock.Advance(time.Hour + time.Second)
	assert.True(t, detector.IsSuspicious(t.Context(), testNetwork, check, false))
}
