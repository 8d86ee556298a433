package catalog

import (
	"context"
	"errors"
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

func TestPostgres_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE products, sizes, toppings`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	repo := NewPostgres(pool, nil)
	if err := repo.UpsertProduct(ctx, domain.Product{ID: "p1", Name: "Black Coffee", BasePrice: 25000}); err != nil {
		t.Fatalf("UpsertProduct: %v", err)
	}
	if err := repo.UpsertSize(ctx, domain.Size{ID: "s2", Name: "Medium", PriceAdd: 5000}); err != nil {
		t.Fatalf("UpsertSize: %v", err)
	}
	for _, tp := range []domain.Topping{
		{ID: "t1", Name: "Black Pearl", Price: 10000},
		{ID: "t2", Name: "White Pearl", Price: 10000},
	} {
		if err := repo.UpsertTopping(ctx, tp); err != nil {
			t.Fatalf("UpsertTopping %s: %v", tp.ID, err)
		}
	}

	product, err := repo.GetProduct(ctx, "p1")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if product.Name != "Black Coffee" || product.BasePrice != 25000 {
		t.Fatalf("unexpected product %+v", product)
	}

	// Upsert with the same id updates in place.
	if err := repo.UpsertProduct(ctx, domain.Product{ID: "p1", Name: "Black Coffee", BasePrice: 27000}); err != nil {
		t.Fatalf("UpsertProduct update: %v", err)
	}
	product, err = repo.GetProduct(ctx, "p1")
	if err != nil {
		t.Fatalf("GetProduct after update: %v", err)
	}
	if product.BasePrice != 27000 {
		t.Fatalf("expected updated price, got %d", product.BasePrice)
	}

	if _, err := repo.GetProduct(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgres_GetToppingsKeepsRequestOrder(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE toppings`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	repo := NewPostgres(pool, nil)
	for _, tp := range []domain.Topping{
		{ID: "t1", Name: "Black Pearl", Price: 10000},
		{ID: "t3", Name: "Flan Pudding", Price: 12000},
	} {
		if err := repo.UpsertTopping(ctx, tp); err != nil {
			t.Fatalf("UpsertTopping %s: %v", tp.ID, err)
		}
	}

	got, err := repo.GetToppings(ctx, []string{"t3", "ghost", "t1"})
	if err != nil {
		t.Fatalf("GetToppings: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t3" || got[1].ID != "t1" {
		t.Fatalf("expected [t3 t1] with ghost dropped, got %+v", got)
	}
}
