package cacheinfra

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T, opts ...RedisOption) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, opts...), mr
}

func TestRedisStore_GetSet(t *testing.T) {
	store, _ := newTestRedis(t)
	ctx := context.Background()

	if _, found, err := store.Get(ctx, "absent"); err != nil || found {
		t.Errorf("Get() on absent key = found %v err %v, want clean miss", found, err)
	}

	want := []byte("payload")
	if err := store.Set(ctx, "key", want, 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, found, err := store.Get(ctx, "key")
	if err != nil || !found {
		t.Fatalf("Get() = found %v err %v, want hit", found, err)
	}
	if string(got) != string(want) {
		t.Errorf("Get() = %q, want %q", got, want)
	}
}

func TestRedisStore_PrefixNamespacesKeys(t *testing.T) {
	store, mr := newTestRedis(t, WithPrefix("catalog"))
	ctx := context.Background()

	if err := store.Set(ctx, "key", []byte("x"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if !mr.Exists("catalog:key") {
		t.Error("Set() did not apply the prefix to the stored key")
	}
	if mr.Exists("key") {
		t.Error("Set() stored the unprefixed key")
	}

	if _, found, err := store.Get(ctx, "key"); err != nil || !found {
		t.Errorf("Get() through the prefix = found %v err %v, want hit", found, err)
	}
}

func TestRedisStore_HonorsTTL(t *testing.T) {
	store, mr := newTestRedis(t)
	ctx := context.Background()

	if err := store.Set(ctx, "expiring", []byte("x"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, found, err := store.Get(ctx, "expiring"); err != nil || found {
		t.Errorf("Get() past the ttl = found %v err %v, want miss", found, err)
	}
}

func TestRedisStore_ZeroTTLMeansNoExpiry(t *testing.T) {
	store, mr := newTestRedis(t)
	ctx := context.Background()

	if err := store.Set(ctx, "pinned", []byte("x"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	mr.FastForward(48 * time.Hour)

	if _, found, err := store.Get(ctx, "pinned"); err != nil || !found {
		t.Errorf("Get() on a no-expiry entry = found %v err %v, want hit", found, err)
	}
}

func TestRedisStore_NegativeTTLStoresWithoutExpiry(t *testing.T) {
	store, mr := newTestRedis(t)
	ctx := context.Background()

	if err := store.Set(ctx, "key", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	mr.FastForward(time.Hour)

	if _, found, _ := store.Get(ctx, "key"); !found {
		t.Error("Get() = miss, want negative ttl treated as no expiry")
	}
}

func TestRedisStore_BackendDownSurfacesError(t *testing.T) {
	store, mr := newTestRedis(t, WithQueryTimeout(time.Second))
	ctx := context.Background()

	mr.Close()

	if _, _, err := store.Get(ctx, "key"); err == nil {
		t.Error("Get() error = nil, want the transport failure surfaced to the gateway")
	}
	if err := store.Set(ctx, "key", []byte("x"), 0); err == nil {
		t.Error("Set() error = nil, want the transport failure surfaced to the gateway")
	}
}
