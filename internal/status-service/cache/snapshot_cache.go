package cache

import (
	apperrors "VCS_Status_Monitor/internal/status-service/errors"
	"VCS_Status_Monitor/internal/status-service/model"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTTL = 30 * time.Second

	flightKey = "snapshot"
)

type RefreshFunc func(ctx context.Context) (*model.StatusSnapshot, error)

type Stats struct {
	Hits        uint64
	Misses      uint64
	Refreshes   uint64
	StaleServed uint64
}

// SnapshotCache holds the latest snapshot for ttl. Concurrent misses share a
// single refresh and all of them receive the same snapshot pointer.
type SnapshotCache struct {
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	mu       sync.RWMutex
	snapshot *model.StatusSnapshot
	storedAt time.Time

	group singleflight.Group

	hits        atomic.Uint64
	misses      atomic.Uint64
	refreshes   atomic.Uint64
	staleServed atomic.Uint64
}

func (c *SnapshotCache) GetOrRefresh(ctx context.Context, refresh RefreshFunc) (*model.StatusSnapshot, error) {
	if snapshot, ok := c.fresh(); ok {
		c.hits.Add(1)
		return snapshot, nil
	}
	c.misses.Add(1)

	// the refresh outlives the caller that started it, other waiters depend on it
	refreshCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(flightKey, func() (interface{}, error) {
		if snapshot, ok := c.fresh(); ok {
			return snapshot, nil
		}
		return c.refresh(refreshCtx, refresh)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.StatusSnapshot), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("SnapshotCache.GetOrRefresh: %w", ctx.Err())
	}
}

func (c *SnapshotCache) refresh(ctx context.Context, refresh RefreshFunc) (*model.StatusSnapshot, error) {
	c.refreshes.Add(1)
	snapshot, err := refresh(ctx)
	if err == nil && snapshot == nil {
		err = errors.New("refresh returned no snapshot")
	}
	if err != nil {
		c.mu.RLock()
		stale, storedAt := c.snapshot, c.storedAt
		c.mu.RUnlock()
		if stale != nil {
			c.staleServed.Add(1)
			c.logger.Warn("snapshot refresh failed, serving stale snapshot",
				zap.Error(err),
				zap.String("snapshot_id", stale.ID),
				zap.Duration("age", c.now().Sub(storedAt)))
			return stale, nil
		}
		return nil, fmt.Errorf("SnapshotCache.refresh: %w: %w", apperrors.ErrAggregationFailed, err)
	}

	c.mu.Lock()
	c.snapshot = snapshot
	c.storedAt = c.now()
	c.mu.Unlock()
	return snapshot, nil
}

func (c *SnapshotCache) fresh() (*model.StatusSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil || c.now().Sub(c.storedAt) >= c.ttl {
		return nil, false
	}
	return c.snapshot, true
}

// Peek returns the stored snapshot, fresh or not, without refreshing.
func (c *SnapshotCache) Peek() (*model.StatusSnapshot, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot, c.storedAt
}

// Invalidate forces the next read to refresh. The current snapshot is kept as a stale fallback.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.storedAt = time.Time{}
	c.mu.Unlock()
}

func (c *SnapshotCache) Stats() Stats {
	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Refreshes:   c.refreshes.Load(),
		StaleServed: c.staleServed.Load(),
	}
}

func NewSnapshotCache(ttl time.Duration, logger *zap.Logger) *SnapshotCache {
	return &SnapshotCache{
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}
