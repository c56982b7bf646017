package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if err := c.Set(ctx, "verdict", []byte{1}, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "verdict")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if !bytes.Equal(data, []byte{1}) {
		t.Errorf("Get = %v, want %v", data, []byte{1})
	}

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	if err := c.Delete(ctx, "verdict"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "verdict"); hit {
		t.Error("expected miss after Delete")
	}
}

func TestMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expected expired entry to miss")
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "artifact", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "artifact")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "<svg/>" {
		t.Errorf("Get = %q, want %q", data, "<svg/>")
	}

	// Miss for unknown key
	if _, hit, _ := c.Get(ctx, "other"); hit {
		t.Error("expected miss for unknown key")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "artifact", []byte("data"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact"); hit {
		t.Error("expected miss after Clear")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestKey(t *testing.T) {
	k1 := Key("verdict", "RX(0)", "RZ(0)")
	k2 := Key("verdict", "RX(0)", "RZ(0)")
	if k1 != k2 {
		t.Error("Key should be deterministic")
	}

	k3 := Key("verdict", "RX(0)", "RZ(1)")
	if k1 == k3 {
		t.Error("Different parts should produce different keys")
	}

	k4 := Key("artifact", "RX(0)", "RZ(0)")
	if k1 == k4 {
		t.Error("Different prefixes should produce different keys")
	}

	if k1[:8] != "verdict:" {
		t.Errorf("Key should carry its prefix: %s", k1)
	}
}
