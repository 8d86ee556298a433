package cartstore

import (
	"context"
	"os"
	"testing"

	"cafecart/internal/domain"
	"cafecart/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func TestPostgres_LoadMissingUserIsEmpty(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	store := NewPostgres(pool, nil)
	items, err := store.Load(ctx, "nobody")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}
}

func TestPostgres_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE carts`); err != nil {
		t.Fatalf("truncate carts: %v", err)
	}

	size := "s2"
	saved := []domain.LineItem{{
		ID:                "li1",
		ProductID:         "p1",
		ProductName:       "Black Coffee",
		SizeID:            &size,
		SizeName:          "Medium",
		SizePriceAdd:      5000,
		ToppingIDs:        []string{"t1", "t2"},
		ToppingNames:      []string{"Black Pearl", "White Pearl"},
		ToppingPriceTotal: 20000,
		BasePrice:         25000,
		UnitPrice:         50000,
		Quantity:          2,
		LineTotal:         100000,
	}}

	store := NewPostgres(pool, nil)
	if err := store.Save(ctx, "u1", saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 item, got %d", len(loaded))
	}
	got := loaded[0]
	if got.ID != "li1" || got.UnitPrice != 50000 || got.Quantity != 2 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.SizeID == nil || *got.SizeID != "s2" {
		t.Fatalf("size lost in round trip: %+v", got)
	}
	if len(got.ToppingIDs) != 2 || got.ToppingIDs[0] != "t1" {
		t.Fatalf("toppings lost in round trip: %+v", got)
	}

	// Overwrite replaces the whole list.
	if err := store.Save(ctx, "u1", nil); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	loaded, err = store.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load after clear: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected cleared cart, got %d items", len(loaded))
	}
}

func TestPostgres_EmptyUserIDIsNoop(t *testing.T) {
	store := NewPostgres(nil, nil)

	items, err := store.Load(context.Background(), "")
	if err != nil || items != nil {
		t.Fatalf("expected nil, nil for anonymous load, got %v, %v", items, err)
	}
	if err := store.Save(context.Background(), "", nil); err != nil {
		t.Fatalf("expected anonymous save to be a no-op, got %v", err)
	}
}
