package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"paperflow/internal/paper/models"
)

const (
	cacheKeyAll    = "paperflow:papers:all"
	cacheKeyFilled = "paperflow:papers:filled"
)

// Cached decorates a PaperStore with a Redis read-through cache for the two
// listing queries, which back the list and tracking views and dominate read
// traffic. Single-paper reads and all writes pass straight through; writes
// drop both cached listings so readers never see a stale paper for longer
// than one round trip.
//
// Cache failures are logged and degrade to the inner store; Redis being down
// must never take the pipeline down with it.
type Cached struct {
	inner  PaperStore
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewCached(inner PaperStore, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *Cached) Create(ctx context.Context, p *models.Paper) (*models.Paper, error) {
	created, err := c.inner.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return created, nil
}

func (c *Cached) FindByID(ctx context.Context, id string) (*models.Paper, error) {
	return c.inner.FindByID(ctx, id)
}

func (c *Cached) FindByPaperID(ctx context.Context, paperID string) (*models.Paper, error) {
	return c.inner.FindByPaperID(ctx, paperID)
}

func (c *Cached) List(ctx context.Context) ([]*models.Paper, error) {
	return c.cachedList(ctx, cacheKeyAll, c.inner.List)
}

func (c *Cached) ListFullySlotted(ctx context.Context) ([]*models.Paper, error) {
	return c.cachedList(ctx, cacheKeyFilled, c.inner.ListFullySlotted)
}

func (c *Cached) Save(ctx context.Context, p *models.Paper) (*models.Paper, error) {
	saved, err := c.inner.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return saved, nil
}

func (c *Cached) cachedList(ctx context.Context, key string, load func(context.Context) ([]*models.Paper, error)) ([]*models.Paper, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var papers []*models.Paper
		if err := json.Unmarshal(raw, &papers); err == nil {
			return papers, nil
		}
		// Corrupt entry; fall through and rebuild.
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "listing cache read failed", "key", key, "error", err)
	}

	papers, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(papers); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "listing cache write failed", "key", key, "error", err)
		}
	}
	return papers, nil
}

func (c *Cached) invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, cacheKeyAll, cacheKeyFilled).Err(); err != nil {
		c.logger.WarnContext(ctx, "listing cache invalidation failed", "error", err)
	}
}
