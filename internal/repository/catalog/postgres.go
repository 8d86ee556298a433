package catalog

import (
	"context"
	"errors"
	"io"
	"log"

	"cafecart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres builds a catalog repository over a pgx pool.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) *Postgres {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Postgres{pool: pool, logger: logger}
}

func (r *Postgres) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, image, base_price
FROM products
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("catalog repo: list products error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.BasePrice); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *Postgres) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id, name, image, base_price
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Image, &p.BasePrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("catalog repo: product id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("catalog repo: product id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *Postgres) ListSizes(ctx context.Context) ([]domain.Size, error) {
	const q = `
SELECT id, name, price_add
FROM sizes
ORDER BY price_add ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("catalog repo: list sizes error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Size
	for rows.Next() {
		var s domain.Size
		if err := rows.Scan(&s.ID, &s.Name, &s.PriceAdd); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *Postgres) GetSize(ctx context.Context, id string) (*domain.Size, error) {
	const q = `
SELECT id, name, price_add
FROM sizes
WHERE id = $1
`
	var s domain.Size
	err := r.pool.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.PriceAdd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("catalog repo: size id=%s error=%v", id, err)
		return nil, err
	}
	return &s, nil
}

func (r *Postgres) ListToppings(ctx context.Context) ([]domain.Topping, error) {
	const q = `
SELECT id, name, price
FROM toppings
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("catalog repo: list toppings error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Topping
	for rows.Next() {
		var t domain.Topping
		if err := rows.Scan(&t.ID, &t.Name, &t.Price); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// GetToppings returns the toppings matching ids. Unknown ids are omitted
// rather than reported as errors.
func (r *Postgres) GetToppings(ctx context.Context, ids []string) ([]domain.Topping, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const q = `
SELECT id, name, price
FROM toppings
WHERE id = ANY($1)
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("catalog repo: get toppings error=%v", err)
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]domain.Topping, len(ids))
	for rows.Next() {
		var t domain.Topping
		if err := rows.Scan(&t.ID, &t.Name, &t.Price); err != nil {
			return nil, err
		}
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Preserve the caller's id order for display alignment.
	result := make([]domain.Topping, 0, len(byID))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			result = append(result, t)
			delete(byID, id)
		}
	}
	return result, nil
}

func (r *Postgres) UpsertProduct(ctx context.Context, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, image, base_price)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    image = EXCLUDED.image,
    base_price = EXCLUDED.base_price
`
	if _, err := r.pool.Exec(ctx, q, p.ID, p.Name, p.Image, p.BasePrice); err != nil {
		r.logger.Printf("catalog repo: upsert product id=%s error=%v", p.ID, err)
		return err
	}
	return nil
}

func (r *Postgres) UpsertSize(ctx context.Context, s domain.Size) error {
	const q = `
INSERT INTO sizes (id, name, price_add)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    price_add = EXCLUDED.price_add
`
	if _, err := r.pool.Exec(ctx, q, s.ID, s.Name, s.PriceAdd); err != nil {
		r.logger.Printf("catalog repo: upsert size id=%s error=%v", s.ID, err)
		return err
	}
	return nil
}

func (r *Postgres) UpsertTopping(ctx context.Context, t domain.Topping) error {
	const q = `
INSERT INTO toppings (id, name, price)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    price = EXCLUDED.price
`
	if _, err := r.pool.Exec(ctx, q, t.ID, t.Name, t.Price); err != nil {
		r.logger.Printf("catalog repo: upsert topping id=%s error=%v", t.ID, err)
		return err
	}
	return nil
}
