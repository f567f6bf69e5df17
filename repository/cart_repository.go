package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/StephenRJohns/5JKitchens/cart"

	"github.com/redis/go-redis/v9"
)

// CartRepository persists reducer state in Redis keyed by the cart cookie
// id. A missing key is an empty cart, not an error.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartRepository(client *redis.Client, ttl time.Duration) *CartRepository {
	return &CartRepository{client: client, ttl: ttl}
}

func (r *CartRepository) key(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}

func (r *CartRepository) Get(ctx context.Context, cartID string) (cart.State, error) {
	data, err := r.client.Get(ctx, r.key(cartID)).Result()
	if err == redis.Nil {
		return cart.State{Items: []cart.Item{}}, nil
	}
	if err != nil {
		return cart.State{}, err
	}

	var state cart.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return cart.State{}, err
	}
	return state, nil
}

func (r *CartRepository) Save(ctx context.Context, cartID string, state cart.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(cartID), data, r.ttl).Err()
}

func (r *CartRepository) Delete(ctx context.Context, cartID string) error {
	return r.client.Del(ctx, r.key(cartID)).Err()
}
