package stream

import (
	"VCS_Status_Monitor/internal/status-service/model"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const subscriberBuffer = 4

type SnapshotSource interface {
	GetSnapshot(ctx context.Context) (*model.StatusSnapshot, error)
}

type Subscription struct {
	C  <-chan *model.StatusSnapshot
	ch chan *model.StatusSnapshot
}

// Broadcaster polls the snapshot source and pushes every new generation to its subscribers.
// A subscriber that falls behind is dropped and its channel closed.
type Broadcaster struct {
	source   SnapshotSource
	interval time.Duration
	logger   *zap.Logger

	mu          sync.Mutex
	subscribers map[*Subscription]struct{}
	latest      *model.StatusSnapshot
}

func (b *Broadcaster) Subscribe() *Subscription {
	ch := make(chan *model.StatusSnapshot, subscriberBuffer)
	sub := &Subscription{C: ch, ch: ch}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.latest != nil {
		ch <- b.latest
	}
	b.subscribers[sub] = struct{}{}
	return sub
}

func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[sub]; ok {
		delete(b.subscribers, sub)
		close(sub.ch)
	}
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

// Publish fans a snapshot out. A generation already published is ignored.
func (b *Broadcaster) Publish(snapshot *model.StatusSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if snapshot == nil || (b.latest != nil && b.latest.ID == snapshot.ID) {
		return
	}
	b.latest = snapshot
	for sub := range b.subscribers {
		select {
		case sub.ch <- snapshot:
		default:
			b.logger.Warn("dropping slow stream subscriber")
			delete(b.subscribers, sub)
			close(sub.ch)
		}
	}
}

// Run polls until ctx is cancelled, then closes every subscription.
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	b.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			b.closeAll()
			return
		case <-ticker.C:
			b.poll(ctx)
		}
	}
}

func (b *Broadcaster) poll(ctx context.Context) {
	snapshot, err := b.source.GetSnapshot(ctx)
	if err != nil {
		if ctx.Err() == nil {
			b.logger.Error("stream poll failed", zap.Error(err))
		}
		return
	}
	b.Publish(snapshot)
}

func (b *Broadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subscribers {
		delete(b.subscribers, sub)
		close(sub.ch)
	}
}

func NewBroadcaster(source SnapshotSource, interval time.Duration, logger *zap.Logger) *Broadcaster {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Broadcaster{
		source:      source,
		interval:    interval,
		logger:      logger,
		subscribers: make(map[*Subscription]struct{}),
	}
}
