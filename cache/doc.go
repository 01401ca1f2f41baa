// Package cache provides the cache-aside building blocks of the catalogue
// gateway: deterministic key derivation and a fault-absorbing gateway over
// a pluggable key/value backend.
//
// # Overview
//
// The package exports two main contracts and their default implementations:
//
//   - KeyDeriver: builds stable cache keys from a request kind and its
//     semantically relevant parameters
//   - Store: the byte-oriented get/set contract a backend must satisfy
//
// The Gateway wraps a Store and enforces the module's cache-failure
// policy: a backend fault or an undecodable payload is reported to the
// observability sink and degraded to a miss, never surfaced to the
// request. Writes after a successful store read are best-effort.
//
// # Basic Usage
//
//	backend, _ := cache.NewMemoryStore(cache.DefaultConfig())
//	gw := cache.NewGateway(backend, observe.Nop())
//	keys := cache.NewKeyDeriver()
//
//	key := keys.DeriveKey("shows:list", 1, 20, 0, "", "", "date_added")
//	if page, ok := cache.Lookup[*catalog.ShowPage](ctx, gw, key); ok {
//		return page, nil
//	}
//	// ... query the store, project, then:
//	cache.Fill(ctx, gw, key, page, 24*time.Hour)
//
// # Key Derivation Strategy
//
// The default deriver canonicalizes each parameter (quoting strings so a
// value containing the separator cannot alias two adjacent parameters),
// joins them, and digests the result with xxhash. Keys are fixed-length
// regardless of filter length, and the kind survives as a plaintext
// prefix for operability. Derivation is a pure function of its inputs:
// no randomness, no time, no addresses.
//
// # Backends
//
// Two Store implementations ship with the module: an in-process sturdyc
// backend (NewMemoryStore) and a Redis backend (internal/cacheinfra,
// wired through pkg/di). The in-process backend applies its client-wide
// TTL and ignores per-entry lifetimes; Redis honors them, with ttl <= 0
// meaning no expiry.
package cache
