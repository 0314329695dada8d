package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		Protocol: 2,
	})
}

func recordKey(id uuid.UUID) string {
	return fmt.Sprintf("record:%s", id)
}

func versionKey(id uuid.UUID) string {
	return fmt.Sprintf("record:%s:ver", id)
}

// versionTTL outlives any read; an expired counter reads as 0, which only ever
// makes a pending fill mismatch.
const versionTTL = 24 * time.Hour

// fillScript stores the view only if nobody invalidated the record since the reader's Get.
var fillScript = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// RecordCache holds catalog record views. Every stock change bumps the record's
// version after commit, and fills carry the version seen before the DB read.
type RecordCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRecordCache(client redis.Cmdable, ttl time.Duration) *RecordCache {
	return &RecordCache{client: client, ttl: ttl}
}

// Get returns the cached view, or nil and the version a later Set must present.
func (c *RecordCache) Get(ctx context.Context, id uuid.UUID) (*queries.RecordView, int64, error) {
	var data, ver *redis.StringCmd
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		data = pipe.Get(ctx, recordKey(id))
		ver = pipe.Get(ctx, versionKey(id))
		return nil
	})
	if err != nil && !errs.Is(err, redis.Nil) {
		return nil, 0, errs.Wrap(err, "redis get record")
	}

	version, err := ver.Int64()
	if err != nil && !errs.Is(err, redis.Nil) {
		return nil, 0, errs.Wrap(err, "redis read record version")
	}

	raw, err := data.Bytes()
	if err != nil {
		return nil, version, nil
	}
	var view queries.RecordView
	if err := json.Unmarshal(raw, &view); err != nil {
		// a corrupt entry is a miss; the next fill overwrites it
		return nil, version, nil
	}
	return &view, version, nil
}

func (c *RecordCache) Set(ctx context.Context, view *queries.RecordView, version int64) error {
	data, err := json.Marshal(view)
	if err != nil {
		return errs.Wrap(err, "marshal record view")
	}
	keys := []string{recordKey(view.ID), versionKey(view.ID)}
	err = fillScript.Run(ctx, c.client, keys, strconv.FormatInt(version, 10), data, c.ttl.Milliseconds()).Err()
	if err != nil {
		return errs.Wrap(err, "redis fill record")
	}
	return nil
}

// Invalidate drops the views and bumps their versions in one transaction.
func (c *RecordCache) Invalidate(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := c.client.TxPipeline()
	for _, id := range ids {
		pipe.Incr(ctx, versionKey(id))
		pipe.Expire(ctx, versionKey(id), versionTTL)
		pipe.Del(ctx, recordKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "redis invalidate records")
	}
	return nil
}

// NoopRecordCache is used when no cache address is configured.
type NoopRecordCache struct{}

func (NoopRecordCache) Get(context.Context, uuid.UUID) (*queries.RecordView, int64, error) {
	return nil, 0, nil
}

func (NoopRecordCache) Set(context.Context, *queries.RecordView, int64) error { return nil }

func (NoopRecordCache) Invalidate(context.Context, ...uuid.UUID) error { return nil }
