// Package gateway implements the cache-aside query gateway for the show
// catalogue.
//
// # Overview
//
// The Service composes the module's building blocks into the read path
// client applications consume: a key deriver and fault-absorbing cache
// gateway (package cache), the query planner and graph loader (package
// store), and the two-mode projector (package catalog).
//
// # Request flow
//
// Every operation follows the same state machine:
//
//	CheckCache -> (hit: Decode -> respond | decode fail: fall through)
//	           -> ExecutePlanOrLoad -> NotFound (point lookups)
//	           -> Project -> PopulateCache (best-effort) -> Respond
//
// There are no retries against the store: a store fault is fatal to the
// request and surfaces wrapped to the caller. Cache faults on either side
// of the flow are absorbed by the cache gateway and reported to the
// observability sink.
//
// # Caching policy
//
//   - Listing pages expire after ListingTTL (24h): their contents drift
//     as the catalogue grows.
//   - Point lookups (light and detail) are cached without an explicit
//     TTL, deferring to the backend's default policy.
//   - Keys derive from normalized parameters, so a request with
//     limit=100 shares the entry of the same request with limit=20.
//   - Concurrent cold-cache requests are not coalesced; every miss
//     queries the store and repopulates. Entries are idempotent
//     overwrites, so last-write-wins is safe.
//
// WithRefresh marks a context so reads bypass the cache lookup while
// still repopulating, which doubles as a manual invalidation hook.
//
// # Error surfaces
//
// Point lookups for an absent identity return store.ErrNotFound, which
// callers should map to a client-facing not-found signal. Everything
// else that escapes the service is a server-side fault.
package gateway
