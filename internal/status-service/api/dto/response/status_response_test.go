package response

import (
	"VCS_Status_Monitor/internal/status-service/model"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusResponse(t *testing.T) {
	results := []model.ProbeResult{
		{ServiceName: "a", Status: model.StatusOperational, Latency: 1234 * time.Microsecond, HTTPStatusCode: 200},
		{ServiceName: "b", Status: model.StatusTimeout, Latency: 10 * time.Second, Error: "deadline exceeded"},
	}
	snapshot := &model.StatusSnapshot{
		ID:      "gen-1",
		Overall: model.OverallDegraded,
		Services: []model.ServiceView{
			{Descriptor: model.ServiceDescriptor{Name: "a", Category: model.CategoryCore}, Result: results[0], UptimePercentage: 100, UptimeSamples: 1},
			{Descriptor: model.ServiceDescriptor{Name: "b", Category: model.CategoryAI}, Result: results[1], UptimePercentage: 0, UptimeSamples: 1},
		},
		Summary:       model.Summarize(results),
		CheckDuration: 10 * time.Second,
	}

	resp := NewStatusResponse(snapshot, "2.0.0")
	require.Len(t, resp.Services, 2)
	require.NotNil(t, resp.Services[0].LatencyMs)
	assert.Equal(t, int64(1), *resp.Services[0].LatencyMs)
	assert.Nil(t, resp.Services[1].LatencyMs)
	require.NotNil(t, resp.Summary.AverageLatencyMs)
	assert.Equal(t, int64(1), *resp.Summary.AverageLatencyMs)
	assert.Equal(t, 1, resp.Summary.Down)
	assert.Equal(t, int64(10000), resp.CheckDurationMs)

	b, err := json.Marshal(resp.Services[1])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"latency_ms":null`)
	assert.NotContains(t, string(b), "http_status")
}

func TestNewStatusResponse_NoLatency(t *testing.T) {
	resp := NewStatusResponse(&model.StatusSnapshot{Overall: model.OverallHealthy}, "2.0.0")

	assert.Nil(t, resp.Summary.AverageLatencyMs)
	assert.NotNil(t, resp.Services)
	assert.Empty(t, resp.Services)
}
