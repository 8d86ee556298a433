package cartstore

import (
	"context"
	"os"
	"testing"

	"cafecart/internal/domain"
	"github.com/redis/go-redis/v9"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

func TestRedis_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := testRedis(t)
	defer client.Close()

	store := NewRedis(client, nil)
	if err := client.Del(ctx, keyPrefix+"u1").Err(); err != nil {
		t.Fatalf("del: %v", err)
	}

	items, err := store.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}

	saved := []domain.LineItem{{ID: "li1", ProductID: "p1", BasePrice: 25000, UnitPrice: 25000, Quantity: 1, LineTotal: 25000}}
	if err := store.Save(ctx, "u1", saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "li1" || loaded[0].LineTotal != 25000 {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}
