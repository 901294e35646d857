// Package otp stores short-lived password-reset codes in Redis. Codes are
// single use: a successful read deletes them atomically.
package otp

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("code not found or expired")

const keyPrefix = "reset:"

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) Store(ctx context.Context, phoneNumber, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+phoneNumber, code, ttl).Err()
}

// Consume returns the stored code and removes it, so a code can only be
// checked once regardless of how many attempts race.
func (s *Store) Consume(ctx context.Context, phoneNumber string) (string, error) {
	code, err := s.rdb.GetDel(ctx, keyPrefix+phoneNumber).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return code, nil
}
