package cache

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/goliatone/go-catalog-gateway/observe"
)

// Store is the minimal key/value contract a cache backend must satisfy.
// Get reports absence via the bool; Set with ttl <= 0 leaves the entry's
// lifetime to the backend's default policy.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Gateway wraps a Store and absorbs its faults. A backend error or a
// payload that fails to decode is reported to the sink and degraded to a
// miss; it never propagates to the request. Writes are best-effort.
type Gateway struct {
	store Store
	sink  observe.Sink

	hits   *xsync.Counter
	misses *xsync.Counter
	faults *xsync.Counter
}

// NewGateway wraps the given backend. Pass observe.Nop() when no sink is
// wired.
func NewGateway(store Store, sink observe.Sink) *Gateway {
	return &Gateway{
		store:  store,
		sink:   sink,
		hits:   xsync.NewCounter(),
		misses: xsync.NewCounter(),
		faults: xsync.NewCounter(),
	}
}

// Stats is a point-in-time snapshot of gateway traffic. Faults count both
// backend errors and undecodable payloads; each fault also counts as a
// miss from the caller's perspective.
type Stats struct {
	Hits   int64
	Misses int64
	Faults int64
}

// Stats returns the current counters.
func (g *Gateway) Stats() Stats {
	return Stats{
		Hits:   g.hits.Value(),
		Misses: g.misses.Value(),
		Faults: g.faults.Value(),
	}
}

// Lookup fetches and decodes a cached value. Any backend or decode
// failure is reported and treated as a miss, so the caller always falls
// through to the source of truth.
func Lookup[T any](ctx context.Context, g *Gateway, key string) (T, bool) {
	var zero T

	data, found, err := g.store.Get(ctx, key)
	if err != nil {
		g.faults.Inc()
		g.misses.Inc()
		g.sink.Recovered("cache", "get", err, "key", key)
		return zero, false
	}
	if !found {
		g.misses.Inc()
		return zero, false
	}

	var out T
	if err := msgpack.Unmarshal(data, &out); err != nil {
		g.faults.Inc()
		g.misses.Inc()
		g.sink.Recovered("cache", "decode", err, "key", key)
		return zero, false
	}

	g.hits.Inc()
	return out, true
}

// Fill encodes and stores a value with the given lifetime, best-effort.
// ttl <= 0 defers to the backend's default expiry. Failures are reported
// and otherwise ignored: the caller already has its result.
func Fill[T any](ctx context.Context, g *Gateway, key string, value T, ttl time.Duration) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		g.faults.Inc()
		g.sink.Recovered("cache", "encode", err, "key", key)
		return
	}
	if err := g.store.Set(ctx, key, data, ttl); err != nil {
		g.faults.Inc()
		g.sink.Recovered("cache", "set", err, "key", key)
	}
}
