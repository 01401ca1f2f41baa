// Package cacheinfra contains the concrete cache backend adapters behind
// the cache.Store contract: an in-process sturdyc client and a shared
// Redis instance. Both store opaque byte payloads; encoding belongs to
// the cache gateway, not the backend.
package cacheinfra

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"
)

// SturdycStore adapts a sturdyc client to the byte-oriented store
// contract.
type SturdycStore struct {
	client *sturdyc.Client[[]byte]
}

// NewSturdycStore validates the configuration and builds the in-process
// backend.
//
// Version compatibility note: this assumes the sturdyc v1.x API. Monitor
// upgrades for constructor and option changes.
func NewSturdycStore(cfg Config) (*SturdycStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []sturdyc.Option
	if cfg.EvictionInterval > 0 {
		opts = append(opts, sturdyc.WithEvictionInterval(cfg.EvictionInterval))
	}

	client := sturdyc.New[[]byte](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		opts...,
	)

	return &SturdycStore{client: client}, nil
}

// Get implements cache.Store. The in-process client cannot fail, so the
// error is always nil.
func (s *SturdycStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := s.client.Get(key)
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

// Set implements cache.Store. sturdyc has no per-entry TTL; the
// client-wide TTL from the configuration applies regardless of the ttl
// argument.
func (s *SturdycStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.client.Set(key, value)
	return nil
}

// Delete removes a single entry. Exposed for operational tooling; the
// gateway itself never invalidates (entries are idempotent overwrites).
func (s *SturdycStore) Delete(_ context.Context, key string) error {
	s.client.Delete(key)
	return nil
}
