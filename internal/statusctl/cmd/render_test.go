package cmd

import (
	"VCS_Status_Monitor/internal/status-service/api/dto/response"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestRenderStatus(t *testing.T) {
	s := &response.StatusResponse{
		GenerationID: "gen-1",
		Overall:      "degraded",
		Summary:      response.SummaryResponse{Total: 3, Operational: 2, Down: 1, AverageLatencyMs: int64Ptr(210)},
		Services: []response.ServiceStatusResponse{
			{Name: "Ollama Free API", Category: "ai", Status: "timeout", UptimePercentage: 50, UptimeSamples: 2},
			{Name: "Orcest AI", Category: "core", Status: "operational", LatencyMs: int64Ptr(120), UptimePercentage: 100, UptimeSamples: 2},
			{Name: "Gitea", Category: "dev", Status: "operational", LatencyMs: int64Ptr(300)},
		},
	}

	var buf bytes.Buffer
	renderStatus(&buf, s)
	out := buf.String()

	assert.Contains(t, out, "gen-1")
	assert.Contains(t, out, "120ms")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "2/3 operational")
	assert.Contains(t, out, "avg 210ms")
	assert.Less(t, strings.Index(out, "Core"), strings.Index(out, "AI"))
	assert.Less(t, strings.Index(out, "AI"), strings.Index(out, "Developer tools"))
	assert.Less(t, strings.Index(out, "Orcest AI"), strings.Index(out, "Ollama Free API"))
}

func TestCategoriesOf(t *testing.T) {
	services := []response.ServiceStatusResponse{
		{Category: "custom"},
		{Category: "dev"},
		{Category: "core"},
		{Category: "custom"},
	}
	assert.Equal(t, []string{"core", "dev", "custom"}, categoriesOf(services))
}

func TestRenderUptime(t *testing.T) {
	assert.Equal(t, "99.5%", renderUptime(99.54, 10))
	assert.NotContains(t, renderUptime(0, 0), "%")
}
