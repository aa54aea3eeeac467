package cache

import (
	"testing"
	"time"
)

func TestGetSetRoundTrip(t *testing.T) {
	c := New(50 * time.Millisecond)
	c.Set("k", "v")
	v, ok := c.Get("k")
	if !ok || v != "v" {
		t.Fatalf("expected hit with value 'v', got %v ok=%v", v, ok)
	}
}

func TestExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("k", "v")
	time.Sleep(20 * time.Millisecond)
	_, ok := c.Get("k")
	if ok {
		t.Fatalf("expected miss after ttl elapsed")
	}
}

func TestStatsCounters(t *testing.T) {
	c := New(time.Hour)
	c.Set("k", 1)
	c.Get("k")
	c.Get("missing")
	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Fatalf("expected hits=1 misses=1, got %+v", s)
	}
	if s.HitRate() != 0.5 {
		t.Fatalf("expected hit rate 0.5, got %f", s.HitRate())
	}
}

func TestSweepRemovesStale(t *testing.T) {
	c := New(5 * time.Millisecond)
	c.Set("a", 1)
	c.Set("b", 2)
	time.Sleep(15 * time.Millisecond)
	removed := c.Sweep()
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if c.Stats().Entries != 0 {
		t.Fatalf("expected 0 entries after sweep")
	}
}

func TestKeyCanonicalization(t *testing.T) {
	k1 := Key("search", map[string]any{"query": "ai tutorials", "max": 25})
	k2 := Key("search", map[string]any{"max": 25, "query": "ai tutorials"})
	if k1 != k2 {
		t.Fatalf("expected stable key regardless of declaration order: %s != %s", k1, k2)
	}
	if len(k1) != 16 {
		t.Fatalf("expected 16-char key, got %d: %s", len(k1), k1)
	}
}

func TestKeyDiffersOnDifferentParams(t *testing.T) {
	k1 := Key("search", map[string]any{"query": "ai"})
	k2 := Key("search", map[string]any{"query": "crypto"})
	if k1 == k2 {
		t.Fatalf("expected different keys for different params")
	}
}
