package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want miss", ok, err)
	}

	want := []byte(`{"network_type":"grid"}`)
	if err := c.Set(ctx, "extract:abc", want, TTLExtract); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, "extract:abc")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v, want hit", ok, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}

	if err := c.Delete(ctx, "extract:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "extract:abc"); ok {
		t.Error("Get after Delete reported a hit")
	}
	// Deleting again must not error.
	if err := c.Delete(ctx, "extract:abc"); err != nil {
		t.Errorf("Delete(missing) = %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Errorf("Get(expired) = ok=%v err=%v, want miss", ok, err)
	}

	// Zero TTL means no expiry.
	if err := c.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "forever"); !ok {
		t.Error("Get(zero-TTL entry) missed")
	}
}

func TestFileCachePurgeAndStats(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, key, []byte("data-"+key), 0); err != nil {
			t.Fatalf("Set(%q): %v", key, err)
		}
	}

	entries, size, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if entries != 3 {
		t.Errorf("Stats entries = %d, want 3", entries)
	}
	if size <= 0 {
		t.Errorf("Stats size = %d, want > 0", size)
	}

	removed, err := c.Purge()
	if err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if removed != 3 {
		t.Errorf("Purge removed %d, want 3", removed)
	}

	entries, _, err = c.Stats()
	if err != nil {
		t.Fatalf("Stats after Purge: %v", err)
	}
	if entries != 0 {
		t.Errorf("Stats entries after Purge = %d, want 0", entries)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Errorf("Get = ok=%v err=%v, want miss", ok, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestDefaultKeyerDeterminism(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.ExtractKey("deepseek", "deepseek-chat", "a four-way crossing")
	b := k.ExtractKey("deepseek", "deepseek-chat", "a four-way crossing")
	if a != b {
		t.Errorf("identical inputs produced different keys: %q vs %q", a, b)
	}

	tests := []struct {
		name  string
		other string
	}{
		{"different description", k.ExtractKey("deepseek", "deepseek-chat", "a roundabout")},
		{"different model", k.ExtractKey("deepseek", "deepseek-coder", "a four-way crossing")},
		{"different provider", k.ExtractKey("openai", "deepseek-chat", "a four-way crossing")},
	}
	for _, tt := range tests {
		if tt.other == a {
			t.Errorf("%s produced same key as baseline", tt.name)
		}
	}
}

func TestArtifactKeyDistinctFromExtractKey(t *testing.T) {
	k := NewDefaultKeyer()
	ek := k.ExtractKey("p", "m", "d")
	ak := k.ArtifactKey("deadbeef", "svg")
	if ek == ak {
		t.Error("extract and artifact keys collided")
	}
	if k.ArtifactKey("deadbeef", "svg") == k.ArtifactKey("deadbeef", "png") {
		t.Error("artifact keys for different formats collided")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "test1:")

	key := scoped.ExtractKey("p", "m", "d")
	want := "test1:" + inner.ExtractKey("p", "m", "d")
	if key != want {
		t.Errorf("ExtractKey = %q, want %q", key, want)
	}

	other := NewScopedKeyer(inner, "test2:")
	if other.ExtractKey("p", "m", "d") == key {
		t.Error("different scopes produced identical keys")
	}

	// Nil inner falls back to the default keyer.
	fallback := NewScopedKeyer(nil, "x:")
	if fallback.ExtractKey("p", "m", "d") != "x:"+inner.ExtractKey("p", "m", "d") {
		t.Error("nil inner did not use default keyer")
	}
}
