package service

import (
	"VCS_Status_Monitor/internal/status-service/aggregator"
	"VCS_Status_Monitor/internal/status-service/cache"
	apperrors "VCS_Status_Monitor/internal/status-service/errors"
	mockaggregator "VCS_Status_Monitor/internal/status-service/mocks/aggregator"
	mockevents "VCS_Status_Monitor/internal/status-service/mocks/events"
	"VCS_Status_Monitor/internal/status-service/model"
	"VCS_Status_Monitor/internal/status-service/registry"
	"VCS_Status_Monitor/internal/status-service/uptime"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New([]model.ServiceDescriptor{
		{Name: "alpha", URL: "https://alpha.example.com", Type: model.ServiceTypeWeb, Category: model.CategoryCore},
		{Name: "beta", URL: "https://beta.example.com", HealthPath: "/health", Type: model.ServiceTypeAPI, Category: model.CategoryAI},
		{Name: "gamma", URL: "https://gamma.example.com", Type: model.ServiceTypeWeb, Category: model.CategoryDev},
	})
	require.NoError(t, err)
	return reg
}

func healthyRun() aggregator.Run {
	results := []model.ProbeResult{
		{ServiceName: "alpha", Status: model.StatusOperational, Latency: 100 * time.Millisecond, HTTPStatusCode: 200},
		{ServiceName: "beta", Status: model.StatusDegraded, Latency: 300 * time.Millisecond, HTTPStatusCode: 503},
		{ServiceName: "gamma", Status: model.StatusTimeout, Latency: 10 * time.Second, Error: "deadline exceeded"},
	}
	return aggregator.Run{
		Results:  results,
		Duration: 310 * time.Millisecond,
		Overall:  aggregator.OverallHealth(results),
	}
}

func newTestService(t *testing.T, agg aggregator.Aggregator, publisher *mockevents.MockPublisher) (StatusService, *cache.SnapshotCache) {
	t.Helper()
	snapshotCache := cache.NewSnapshotCache(time.Minute, zap.NewNop())
	return NewStatusService(testRegistry(t), agg, uptime.NewTracker(true), snapshotCache, publisher, zap.NewNop()), snapshotCache
}

func TestStatusService_GetSnapshot(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(agg *mockaggregator.MockAggregator, pub *mockevents.MockPublisher)
		expectErr  error
		verify     func(t *testing.T, snapshot *model.StatusSnapshot)
	}{
		{
			name: "Success snapshot assembled in registry order",
			setupMocks: func(agg *mockaggregator.MockAggregator, pub *mockevents.MockPublisher) {
				agg.EXPECT().RunAll(gomock.Any(), gomock.Any()).Return(healthyRun())
				pub.EXPECT().PublishChanges(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, snapshot *model.StatusSnapshot) {
				require.Len(t, snapshot.Services, 3)
				assert.NotEmpty(t, snapshot.ID)
				assert.Equal(t, "alpha", snapshot.Services[0].Descriptor.Name)
				assert.Equal(t, "beta", snapshot.Services[1].Descriptor.Name)
				assert.Equal(t, "gamma", snapshot.Services[2].Descriptor.Name)
				assert.Equal(t, model.OverallDegraded, snapshot.Overall)
				assert.Equal(t, 100.0, snapshot.Services[0].UptimePercentage)
				assert.Equal(t, 100.0, snapshot.Services[1].UptimePercentage)
				assert.Equal(t, 0.0, snapshot.Services[2].UptimePercentage)
				assert.Equal(t, int64(1), snapshot.Services[2].UptimeSamples)
				assert.Equal(t, 200*time.Millisecond, snapshot.Summary.AverageLatency)
				assert.Equal(t, 1, snapshot.Summary.DownCount)
				assert.Equal(t, 310*time.Millisecond, snapshot.CheckDuration)
			},
		},
		{
			name: "Success publisher failure does not fail the refresh",
			setupMocks: func(agg *mockaggregator.MockAggregator, pub *mockevents.MockPublisher) {
				agg.EXPECT().RunAll(gomock.Any(), gomock.Any()).Return(healthyRun())
				pub.EXPECT().PublishChanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
			},
			verify: func(t *testing.T, snapshot *model.StatusSnapshot) {
				assert.Len(t, snapshot.Services, 3)
			},
		},
		{
			name: "Failure aggregator returned a partial run",
			setupMocks: func(agg *mockaggregator.MockAggregator, pub *mockevents.MockPublisher) {
				run := healthyRun()
				run.Results = run.Results[:2]
				agg.EXPECT().RunAll(gomock.Any(), gomock.Any()).Return(run)
			},
			expectErr: apperrors.ErrAggregationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			agg := mockaggregator.NewMockAggregator(ctrl)
			pub := mockevents.NewMockPublisher(ctrl)
			tc.setupMocks(agg, pub)

			svc, _ := newTestService(t, agg, pub)
			snapshot, err := svc.GetSnapshot(context.Background())
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, snapshot)
				return
			}
			require.NoError(t, err)
			tc.verify(t, snapshot)
		})
	}
}

func TestStatusService_GetSnapshot_CachedWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	agg := mockaggregator.NewMockAggregator(ctrl)
	pub := mockevents.NewMockPublisher(ctrl)
	agg.EXPECT().RunAll(gomock.Any(), gomock.Any()).Return(healthyRun()).Times(1)
	pub.EXPECT().PublishChanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc, _ := newTestService(t, agg, pub)
	first, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	second, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, uint64(1), svc.CacheStats().Hits)
}

func TestStatusService_GetSnapshot_ConcurrentMissesShareOneCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	agg := mockaggregator.NewMockAggregator(ctrl)
	pub := mockevents.NewMockPublisher(ctrl)
	agg.EXPECT().RunAll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *registry.Registry) aggregator.Run {
			time.Sleep(100 * time.Millisecond)
			return healthyRun()
		}).Times(1)
	pub.EXPECT().PublishChanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc, _ := newTestService(t, agg, pub)

	const callers = 20
	ids := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snapshot, err := svc.GetSnapshot(context.Background())
			if assert.NoError(t, err) {
				ids[i] = snapshot.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestStatusService_GetSnapshot_PublishesAgainstPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	agg := mockaggregator.NewMockAggregator(ctrl)
	pub := mockevents.NewMockPublisher(ctrl)
	agg.EXPECT().RunAll(gomock.Any(), gomock.Any()).Return(healthyRun()).Times(2)

	var published [][2]*model.StatusSnapshot
	pub.EXPECT().PublishChanges(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prev, next *model.StatusSnapshot) error {
			published = append(published, [2]*model.StatusSnapshot{prev, next})
			return nil
		}).Times(2)

	svc, snapshotCache := newTestService(t, agg, pub)
	first, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	snapshotCache.Invalidate()
	second, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, published, 2)
	assert.Nil(t, published[0][0])
	assert.Same(t, first, published[1][0])
	assert.Same(t, second, published[1][1])
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(2), second.Services[0].UptimeSamples)
}

func TestStatusService_Uptime(t *testing.T) {
	ctrl := gomock.NewController(t)
	agg := mockaggregator.NewMockAggregator(ctrl)
	pub := mockevents.NewMockPublisher(ctrl)
	agg.EXPECT().RunAll(gomock.Any(), gomock.Any()).Return(healthyRun())
	pub.EXPECT().PublishChanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	svc, _ := newTestService(t, agg, pub)

	pct, err := svc.Uptime("alpha")
	require.NoError(t, err)
	assert.Equal(t, 100.0, pct)

	_, err = svc.GetSnapshot(context.Background())
	require.NoError(t, err)

	pct, err = svc.Uptime("gamma")
	require.NoError(t, err)
	assert.Equal(t, 0.0, pct)

	_, err = svc.Uptime("unknown")
	assert.ErrorIs(t, err, apperrors.ErrServiceNotFound)
}

func TestStatusService_GetSnapshot_BlockedPublisherDoesNotStallRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	agg := mockaggregator.NewMockAggregator(ctrl)
	pub := mockevents.NewMockPublisher(ctrl)
	agg.EXPECT().RunAll(gomock.Any(), gomock.Any()).Return(healthyRun())
	pub.EXPECT().PublishChanges(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, _ *model.StatusSnapshot) error {
			<-ctx.Done()
			return ctx.Err()
		})

	svc, _ := newTestService(t, agg, pub)
	svc.(*statusService).publishTimeout = 50 * time.Millisecond

	start := time.Now()
	snapshot, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.Services, 3)
	assert.Less(t, time.Since(start), time.Second)
}
