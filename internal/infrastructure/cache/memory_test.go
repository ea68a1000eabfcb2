package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labelproof/backend/internal/domain"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	recognized := &domain.RecognizedText{Text: "Budweiser Beer 5.0% ABV", Confidence: 0.9}

	t.Run("set then get returns the stored value", func(t *testing.T) {
		c := NewMemoryCache()

		if err := c.Set(ctx, "key1", recognized, time.Minute); err != nil {
			t.Fatalf("Set error: %v", err)
		}

		got, err := c.Get(ctx, "key1")
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		if got.Text != recognized.Text || got.Confidence != recognized.Confidence {
			t.Errorf("got %+v, want %+v", got, recognized)
		}
	})

	t.Run("get returns a copy", func(t *testing.T) {
		c := NewMemoryCache()
		c.Set(ctx, "key1", recognized, time.Minute)

		first, _ := c.Get(ctx, "key1")
		first.Text = "mutated"

		second, _ := c.Get(ctx, "key1")
		if second.Text != recognized.Text {
			t.Errorf("cached entry mutated through returned pointer: %q", second.Text)
		}
	})

	t.Run("missing key is a cache miss", func(t *testing.T) {
		c := NewMemoryCache()

		_, err := c.Get(ctx, "nope")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("expired entry is a cache miss", func(t *testing.T) {
		c := NewMemoryCache()
		c.Set(ctx, "key1", recognized, -time.Second)

		_, err := c.Get(ctx, "key1")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("nil value is rejected", func(t *testing.T) {
		c := NewMemoryCache()

		if err := c.Set(ctx, "key1", nil, time.Minute); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		c := NewMemoryCache()
		c.Set(ctx, "key1", recognized, time.Minute)

		if err := c.Delete(ctx, "key1"); err != nil {
			t.Fatalf("Delete error: %v", err)
		}
		if _, err := c.Get(ctx, "key1"); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss after delete", err)
		}
	})

	t.Run("exists reflects presence and expiry", func(t *testing.T) {
		c := NewMemoryCache()
		c.Set(ctx, "live", recognized, time.Minute)
		c.Set(ctx, "dead", recognized, -time.Second)

		if ok, _ := c.Exists(ctx, "live"); !ok {
			t.Error("Exists(live) = false, want true")
		}
		if ok, _ := c.Exists(ctx, "dead"); ok {
			t.Error("Exists(dead) = true, want false")
		}
		if ok, _ := c.Exists(ctx, "never"); ok {
			t.Error("Exists(never) = true, want false")
		}
	})

	t.Run("size and clear", func(t *testing.T) {
		c := NewMemoryCache()
		c.Set(ctx, "a", recognized, time.Minute)
		c.Set(ctx, "b", recognized, time.Minute)

		if c.Size() != 2 {
			t.Errorf("Size = %d, want 2", c.Size())
		}

		c.Clear()
		if c.Size() != 0 {
			t.Errorf("Size after Clear = %d, want 0", c.Size())
		}
	})
}
