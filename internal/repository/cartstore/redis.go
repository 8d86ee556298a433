package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"cafecart/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

type redisStore struct {
	client *redis.Client
	logger *log.Logger
}

// NewRedis builds a cart store keeping each user's list under one redis key.
func NewRedis(client *redis.Client, logger *log.Logger) Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &redisStore{client: client, logger: logger}
}

func (s *redisStore) Load(ctx context.Context, userID string) ([]domain.LineItem, error) {
	if userID == "" {
		return nil, nil
	}
	raw, err := s.client.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		s.logger.Printf("cart store: load user_id=%s error=%v", userID, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return items, nil
}

func (s *redisStore) Save(ctx context.Context, userID string, items []domain.LineItem) error {
	if userID == "" {
		return nil
	}
	if items == nil {
		items = []domain.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if err := s.client.Set(ctx, keyPrefix+userID, raw, 0).Err(); err != nil {
		s.logger.Printf("cart store: save user_id=%s error=%v", userID, err)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
