package aggregator

import (
	mockprobe "VCS_Status_Monitor/internal/status-service/mocks/probe"
	"VCS_Status_Monitor/internal/status-service/model"
	"VCS_Status_Monitor/internal/status-service/registry"
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRegistry(t *testing.T, n int) *registry.Registry {
	services := make([]model.ServiceDescriptor, n)
	for i := range services {
		services[i] = model.ServiceDescriptor{
			Name:     fmt.Sprintf("service-%d", i),
			URL:      fmt.Sprintf("http://127.0.0.1:%d", 9000+i),
			Type:     model.ServiceTypeAPI,
			Category: model.CategoryCore,
		}
	}
	reg, err := registry.New(services)
	require.NoError(t, err)
	return reg
}

func TestAggregator_RunAll_PreservesRegistryOrder(t *testing.T) {
	for _, n := range []int{0, 1, 3, 8} {
		t.Run(fmt.Sprintf("%d services", n), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockExecutor := mockprobe.NewMockExecutor(ctrl)
			reg := newTestRegistry(t, n)

			// earlier services answer later, so completion order is the reverse of registry order
			mockExecutor.EXPECT().Probe(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, svc model.ServiceDescriptor) model.ProbeResult {
					var idx int
					_, _ = fmt.Sscanf(svc.Name, "service-%d", &idx)
					time.Sleep(time.Duration(n-idx) * 10 * time.Millisecond)
					return model.ProbeResult{ServiceName: svc.Name, Status: model.StatusOperational, Latency: time.Millisecond}
				}).Times(n)

			run := NewAggregator(mockExecutor, 0, zap.NewNop()).RunAll(context.Background(), reg)

			require.Len(t, run.Results, n)
			for i, res := range run.Results {
				assert.Equal(t, reg.At(i).Name, res.ServiceName)
			}
			assert.Equal(t, model.OverallHealthy, run.Overall)
		})
	}
}

func TestAggregator_RunAll_IsConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mockprobe.NewMockExecutor(ctrl)
	reg := newTestRegistry(t, 6)

	var inFlight, maxInFlight atomic.Int32
	mockExecutor.EXPECT().Probe(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, svc model.ServiceDescriptor) model.ProbeResult {
			cur := inFlight.Add(1)
			for {
				prev := maxInFlight.Load()
				if cur <= prev || maxInFlight.CompareAndSwap(prev, cur) {
					break
				}
			}
			time.Sleep(100 * time.Millisecond)
			inFlight.Add(-1)
			return model.ProbeResult{ServiceName: svc.Name, Status: model.StatusOperational}
		}).Times(6)

	run := NewAggregator(mockExecutor, 0, zap.NewNop()).RunAll(context.Background(), reg)

	assert.Len(t, run.Results, 6)
	assert.Equal(t, int32(6), maxInFlight.Load())
	assert.Less(t, run.Duration, 400*time.Millisecond)
}

func TestAggregator_RunAll_RespectsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mockprobe.NewMockExecutor(ctrl)
	reg := newTestRegistry(t, 6)

	var inFlight, maxInFlight atomic.Int32
	mockExecutor.EXPECT().Probe(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, svc model.ServiceDescriptor) model.ProbeResult {
			cur := inFlight.Add(1)
			for {
				prev := maxInFlight.Load()
				if cur <= prev || maxInFlight.CompareAndSwap(prev, cur) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			return model.ProbeResult{ServiceName: svc.Name, Status: model.StatusOperational}
		}).Times(6)

	run := NewAggregator(mockExecutor, 2, zap.NewNop()).RunAll(context.Background(), reg)

	assert.Len(t, run.Results, 6)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
}

func TestAggregator_RunAll_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mockprobe.NewMockExecutor(ctrl)
	reg := newTestRegistry(t, 3)

	mockExecutor.EXPECT().Probe(gomock.Any(), reg.At(0)).Return(model.ProbeResult{ServiceName: "service-0", Status: model.StatusOperational})
	mockExecutor.EXPECT().Probe(gomock.Any(), reg.At(1)).DoAndReturn(
		func(_ context.Context, _ model.ServiceDescriptor) model.ProbeResult {
			panic("boom")
		})
	mockExecutor.EXPECT().Probe(gomock.Any(), reg.At(2)).Return(model.ProbeResult{ServiceName: "service-2", Status: model.StatusDegraded})

	run := NewAggregator(mockExecutor, 0, zap.NewNop()).RunAll(context.Background(), reg)

	require.Len(t, run.Results, 3)
	assert.Equal(t, model.StatusOperational, run.Results[0].Status)
	assert.Equal(t, model.StatusDown, run.Results[1].Status)
	assert.Equal(t, "service-1", run.Results[1].ServiceName)
	assert.Contains(t, run.Results[1].Error, "boom")
	assert.Equal(t, model.StatusDegraded, run.Results[2].Status)
	assert.Equal(t, model.OverallDown, run.Overall)
}

func TestOverallHealth(t *testing.T) {
	testCases := []struct {
		name     string
		statuses []string
		expected string
	}{
		{"no services", nil, model.OverallHealthy},
		{"all operational", []string{model.StatusOperational, model.StatusOperational}, model.OverallHealthy},
		{"one degraded", []string{model.StatusOperational, model.StatusDegraded, model.StatusOperational}, model.OverallDegraded},
		{"one timeout", []string{model.StatusOperational, model.StatusTimeout}, model.OverallDegraded},
		{"one down", []string{model.StatusOperational, model.StatusDown, model.StatusOperational}, model.OverallDown},
		{"down wins over degraded", []string{model.StatusDegraded, model.StatusTimeout, model.StatusDown}, model.OverallDown},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results := make([]model.ProbeResult, len(tc.statuses))
			for i, s := range tc.statuses {
				results[i] = model.ProbeResult{Status: s}
			}
			assert.Equal(t, tc.expected, OverallHealth(results))
		})
	}
}
