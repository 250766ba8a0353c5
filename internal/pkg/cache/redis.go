package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects a go-redis client and verifies the connection.
func NewRedis(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
