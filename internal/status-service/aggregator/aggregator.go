package aggregator

import (
	"VCS_Status_Monitor/internal/status-service/model"
	"VCS_Status_Monitor/internal/status-service/probe"
	"VCS_Status_Monitor/internal/status-service/registry"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run is the outcome of one probe cycle. Results follow registry order.
type Run struct {
	Results  []model.ProbeResult
	Duration time.Duration
	Overall  string
}

type Aggregator interface {
	RunAll(ctx context.Context, reg *registry.Registry) Run
}

type aggregator struct {
	executor probe.Executor
	limit    int
	logger   *zap.Logger
}

func (a *aggregator) RunAll(ctx context.Context, reg *registry.Registry) Run {
	start := time.Now()
	results := make([]model.ProbeResult, reg.Len())

	// plain Group: a failing probe must not cancel its siblings
	var g errgroup.Group
	if a.limit > 0 {
		g.SetLimit(a.limit)
	}
	for i := 0; i < reg.Len(); i++ {
		service := reg.At(i)
		g.Go(func() error {
			results[i] = a.probe(ctx, service)
			return nil
		})
	}
	_ = g.Wait()

	run := Run{
		Results:  results,
		Duration: time.Since(start),
		Overall:  OverallHealth(results),
	}
	a.logger.Debug("probe cycle completed",
		zap.Int("services", len(results)),
		zap.Duration("duration", run.Duration),
		zap.String("overall", run.Overall))
	return run
}

func (a *aggregator) probe(ctx context.Context, service model.ServiceDescriptor) (result model.ProbeResult) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("probe panicked", zap.String("service", service.Name), zap.Any("panic", r))
			result = model.ProbeResult{
				ServiceName: service.Name,
				Status:      model.StatusDown,
				CheckedAt:   time.Now(),
				Error:       fmt.Sprintf("probe panicked: %v", r),
			}
		}
	}()
	return a.executor.Probe(ctx, service)
}

// OverallHealth is down when any service is down, degraded when any service
// is degraded or timed out, healthy otherwise.
func OverallHealth(results []model.ProbeResult) string {
	overall := model.OverallHealthy
	for _, r := range results {
		switch r.Status {
		case model.StatusDown:
			return model.OverallDown
		case model.StatusDegraded, model.StatusTimeout:
			overall = model.OverallDegraded
		}
	}
	return overall
}

// NewAggregator builds an aggregator. A limit of zero runs one probe per service at once.
func NewAggregator(executor probe.Executor, limit int, logger *zap.Logger) Aggregator {
	return &aggregator{
		executor: executor,
		limit:    limit,
		logger:   logger,
	}
}
