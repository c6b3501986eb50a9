package service

import (
	"VCS_Status_Monitor/internal/status-service/aggregator"
	"VCS_Status_Monitor/internal/status-service/cache"
	"VCS_Status_Monitor/internal/status-service/events"
	"VCS_Status_Monitor/internal/status-service/model"
	"VCS_Status_Monitor/internal/status-service/registry"
	"VCS_Status_Monitor/internal/status-service/uptime"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultPublishTimeout bounds the status-change publish inside a refresh.
const defaultPublishTimeout = 3 * time.Second

type StatusService interface {
	GetSnapshot(ctx context.Context) (*model.StatusSnapshot, error)
	Registry() *registry.Registry
	Uptime(serviceName string) (float64, error)
	CacheStats() cache.Stats
}

type statusService struct {
	registry   *registry.Registry
	aggregator aggregator.Aggregator
	tracker    uptime.Tracker
	cache      *cache.SnapshotCache
	publisher  events.Publisher
	logger     *zap.Logger
	now        func() time.Time

	publishTimeout time.Duration
}

func (s *statusService) GetSnapshot(ctx context.Context) (*model.StatusSnapshot, error) {
	snapshot, err := s.cache.GetOrRefresh(ctx, s.refresh)
	if err != nil {
		return nil, fmt.Errorf("StatusService.GetSnapshot: %w", err)
	}
	return snapshot, nil
}

func (s *statusService) Registry() *registry.Registry {
	return s.registry
}

func (s *statusService) Uptime(serviceName string) (float64, error) {
	if _, err := s.registry.Lookup(serviceName); err != nil {
		return 0, fmt.Errorf("StatusService.Uptime: %w", err)
	}
	return s.tracker.Percentage(serviceName), nil
}

func (s *statusService) CacheStats() cache.Stats {
	return s.cache.Stats()
}

// refresh runs inside the cache flight, so there is one writer to the uptime counters per cycle.
func (s *statusService) refresh(ctx context.Context) (*model.StatusSnapshot, error) {
	run := s.aggregator.RunAll(ctx, s.registry)
	if len(run.Results) != s.registry.Len() {
		return nil, fmt.Errorf("StatusService.refresh: got %d results for %d services", len(run.Results), s.registry.Len())
	}

	views := make([]model.ServiceView, len(run.Results))
	for i, result := range run.Results {
		descriptor := s.registry.At(i)
		s.tracker.Record(descriptor.Name, result)
		total, _ := s.tracker.Counts(descriptor.Name)
		views[i] = model.ServiceView{
			Descriptor:       descriptor,
			Result:           result,
			UptimePercentage: s.tracker.Percentage(descriptor.Name),
			UptimeSamples:    total,
		}
	}

	snapshot := &model.StatusSnapshot{
		ID:            uuid.NewString(),
		GeneratedAt:   s.now(),
		Services:      views,
		Overall:       run.Overall,
		Summary:       model.Summarize(run.Results),
		CheckDuration: run.Duration,
	}
	s.logger.Info("status snapshot generated",
		zap.String("snapshot_id", snapshot.ID),
		zap.String("overall", snapshot.Overall),
		zap.Int("operational", snapshot.Summary.OperationalCount),
		zap.Int("total", snapshot.Summary.Total),
		zap.Duration("check_duration", snapshot.CheckDuration))

	prev, _ := s.cache.Peek()
	publishCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()
	if err := s.publisher.PublishChanges(publishCtx, prev, snapshot); err != nil {
		s.logger.Error("failed to publish status changes", zap.Error(err), zap.String("snapshot_id", snapshot.ID))
	}
	return snapshot, nil
}

func NewStatusService(reg *registry.Registry, agg aggregator.Aggregator, tracker uptime.Tracker, snapshotCache *cache.SnapshotCache, publisher events.Publisher, logger *zap.Logger) StatusService {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &statusService{
		registry:   reg,
		aggregator: agg,
		tracker:    tracker,
		cache:      snapshotCache,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,

		publishTimeout: defaultPublishTimeout,
	}
}
