package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"maatwerk_backend/internal/catalog/domain"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute)
}

func TestCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if _, ok := cache.Get(ctx); ok {
		t.Fatal("expected empty cache")
	}

	cat := domain.Catalog{Products: []domain.ProductType{{
		ID:                  "door",
		BasePricePerM2Cents: 50000,
		Dimensions:          domain.Dimensions{Width: true, Height: true},
		Subtypes:            []domain.Subtype{{ID: "single", Materials: []domain.Material{{ID: "pvc"}}}},
	}}}
	if err := cache.Set(ctx, cat); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok := cache.Get(ctx)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got.Products) != 1 || got.Products[0].ID != "door" {
		t.Fatalf("unexpected cached catalog: %+v", got)
	}

	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok := cache.Get(ctx); ok {
		t.Fatal("expected cache miss after invalidation")
	}
}

func TestCacheNilClientIsDisabled(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	if _, ok := cache.Get(ctx); ok {
		t.Fatal("nil cache must miss")
	}
	if err := cache.Set(ctx, domain.Catalog{}); err != nil {
		t.Fatalf("nil cache set must be a no-op, got %v", err)
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("nil cache invalidate must be a no-op, got %v", err)
	}
}
