package cli

import (
	"context"
	"io"
	"testing"
)

func TestApplyServerConfig(t *testing.T) {
	opts := serveOpts{
		addr:      ":8080",
		backend:   cacheBackendFile,
		ttlStr:    "1h",
		redisAddr: "localhost:6379",
	}
	cfg := ServerConfig{
		Addr:          ":9999",
		Cache:         "redis",
		CacheTTL:      "15m",
		RedisAddr:     "redis.internal:6379",
		RedisPassword: "secret",
		RedisDB:       2,
		Namespace:     "v2",
	}

	applyServerConfig(&opts, cfg, func(string) bool { return false })

	if opts.addr != ":9999" {
		t.Errorf("addr = %q, want %q", opts.addr, ":9999")
	}
	if opts.backend != "redis" {
		t.Errorf("backend = %q, want %q", opts.backend, "redis")
	}
	if opts.ttlStr != "15m" {
		t.Errorf("ttlStr = %q, want %q", opts.ttlStr, "15m")
	}
	if opts.redisAddr != "redis.internal:6379" {
		t.Errorf("redisAddr = %q, want %q", opts.redisAddr, "redis.internal:6379")
	}
	if opts.redisPassword != "secret" {
		t.Errorf("redisPassword = %q, want %q", opts.redisPassword, "secret")
	}
	if opts.redisDB != 2 {
		t.Errorf("redisDB = %d, want 2", opts.redisDB)
	}
	if opts.namespace != "v2" {
		t.Errorf("namespace = %q, want %q", opts.namespace, "v2")
	}
}

func TestApplyServerConfigFlagsWin(t *testing.T) {
	opts := serveOpts{addr: ":7000", backend: cacheBackendOff}
	cfg := ServerConfig{Addr: ":9999", Cache: "redis"}

	applyServerConfig(&opts, cfg, func(name string) bool {
		return name == "addr" || name == "cache"
	})

	if opts.addr != ":7000" {
		t.Errorf("addr = %q, want %q (explicit flag must win)", opts.addr, ":7000")
	}
	if opts.backend != cacheBackendOff {
		t.Errorf("backend = %q, want %q (explicit flag must win)", opts.backend, cacheBackendOff)
	}
}

func TestBuildCacheOff(t *testing.T) {
	c := New(io.Discard, LogInfo)
	ctx := context.Background()

	store, err := c.buildCache(ctx, &serveOpts{backend: cacheBackendOff})
	if err != nil {
		t.Fatalf("buildCache(off) error: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("null cache returned a hit after Set")
	}
}

func TestBuildCacheFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	ctx := context.Background()

	store, err := c.buildCache(ctx, &serveOpts{backend: cacheBackendFile})
	if err != nil {
		t.Fatalf("buildCache(file) error: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, ok, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !ok || string(data) != "v" {
		t.Errorf("Get() = %q, %v, want %q, true", data, ok, "v")
	}
}

func TestBuildCacheInvalid(t *testing.T) {
	c := New(io.Discard, LogInfo)

	if _, err := c.buildCache(context.Background(), &serveOpts{backend: "bogus"}); err == nil {
		t.Fatal("buildCache(bogus) should return an error")
	}
}

func TestBuildCacheRedisFallsBack(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis fallback retry in short mode")
	}
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	ctx := context.Background()

	// Port 1 is never a reachable redis; the retry loop exhausts and the
	// server degrades to the file cache.
	store, err := c.buildCache(ctx, &serveOpts{backend: cacheBackendRedis, redisAddr: "localhost:1"})
	if err != nil {
		t.Fatalf("buildCache(redis, unreachable) error: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("fallback Set() error: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); !ok {
		t.Error("fallback cache did not persist the entry")
	}
}
