package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/cases/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

// CaseCache keeps recently read cases
type CaseCache interface {
	FindByID(context.Context, string) (*model.Case, error)
	EvictByID(context.Context, string) error
	Cache(context.Context, *model.Case) error
}

type redisCaseCache struct {
	client     *redis.Client
	timeToLive time.Duration
}

// NewRedisCaseCache builds CaseCache backed by redis, entries expire after ttl
func NewRedisCaseCache(client *redis.Client, ttl time.Duration) CaseCache {
	return &redisCaseCache{client: client, timeToLive: ttl}
}

func (r *redisCaseCache) FindByID(ctx context.Context, id string) (*model.Case, error) {
	res, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c model.Case
	if err := msgpack.Unmarshal(res, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *redisCaseCache) EvictByID(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *redisCaseCache) Cache(ctx context.Context, c *model.Case) error {
	encoded, err := msgpack.Marshal(c)
	if err != nil {
		return err
	}
	return r.client.SetNX(ctx, r.key(c.ID), encoded, r.timeToLive).Err()
}

func (r *redisCaseCache) key(id string) string {
	return fmt.Sprintf("case:%s", id)
}

type nopCaseCache struct{}

// NewNopCaseCache builds CaseCache which never holds anything
func NewNopCaseCache() CaseCache {
	return nopCaseCache{}
}

func (nopCaseCache) FindByID(context.Context, string) (*model.Case, error) {
	return nil, nil
}

func (nopCaseCache) EvictByID(context.Context, string) error {
	return nil
}

func (nopCaseCache) Cache(context.Context, *model.Case) error {
	return nil
}
