package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
)

const feedKeyPrefix = "offers:feed:"

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

type FeedCache struct {
	client *redis.Client
}

func NewFeedCache(client *redis.Client) *FeedCache {
	return &FeedCache{client: client}
}

func (c *FeedCache) Get(ctx context.Context, mode domain.DisplayMode) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, feedKey(mode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (c *FeedCache) Set(ctx context.Context, mode domain.DisplayMode, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, feedKey(mode), payload, ttl).Err()
}

func feedKey(mode domain.DisplayMode) string {
	return feedKeyPrefix + string(mode)
}

var _ ports.FeedCache = (*FeedCache)(nil)
