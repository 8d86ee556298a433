package cartstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"cafecart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStore struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres builds a cart store backed by a single jsonb row per user.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresStore{pool: pool, logger: logger}
}

func (s *postgresStore) Load(ctx context.Context, userID string) ([]domain.LineItem, error) {
	if userID == "" {
		return nil, nil
	}
	const q = `
SELECT items
FROM carts
WHERE user_id = $1
`
	var items []domain.LineItem
	err := s.pool.QueryRow(ctx, q, userID).Scan(&items)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		s.logger.Printf("cart store: load user_id=%s error=%v", userID, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return items, nil
}

func (s *postgresStore) Save(ctx context.Context, userID string, items []domain.LineItem) error {
	if userID == "" {
		return nil
	}
	if items == nil {
		items = []domain.LineItem{}
	}
	const q = `
INSERT INTO carts (user_id, items, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id) DO UPDATE SET
    items = EXCLUDED.items,
    updated_at = now()
`
	if _, err := s.pool.Exec(ctx, q, userID, items); err != nil {
		s.logger.Printf("cart store: save user_id=%s error=%v", userID, err)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
