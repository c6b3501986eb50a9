package response

import (
	"VCS_Status_Monitor/internal/status-service/model"
	"time"
)

type ServiceStatusResponse struct {
	Name             string    `json:"name"`
	URL              string    `json:"url"`
	Type             string    `json:"type"`
	Category         string    `json:"category"`
	Description      string    `json:"description"`
	DescriptionEn    string    `json:"description_en"`
	Status           string    `json:"status"`
	LatencyMs        *int64    `json:"latency_ms"`
	HTTPStatus       int       `json:"http_status,omitempty"`
	UptimePercentage float64   `json:"uptime_percentage"`
	UptimeSamples    int64     `json:"uptime_samples"`
	CheckedAt        time.Time `json:"checked_at"`
	Error            string    `json:"error,omitempty"`
}

type SummaryResponse struct {
	Total            int    `json:"total"`
	Operational      int    `json:"operational"`
	Degraded         int    `json:"degraded"`
	Down             int    `json:"down"`
	AverageLatencyMs *int64 `json:"average_latency_ms"`
}

type StatusResponse struct {
	GenerationID    string                  `json:"generation_id"`
	Overall         string                  `json:"overall"`
	Version         string                  `json:"version"`
	CheckedAt       time.Time               `json:"checked_at"`
	CheckDurationMs int64                   `json:"check_duration_ms"`
	Summary         SummaryResponse         `json:"summary"`
	Services        []ServiceStatusResponse `json:"services"`
}

// NewStatusResponse maps a snapshot to its wire form. Latencies that were not measured are null.
func NewStatusResponse(snapshot *model.StatusSnapshot, version string) StatusResponse {
	services := make([]ServiceStatusResponse, len(snapshot.Services))
	for i, svc := range snapshot.Services {
		services[i] = ServiceStatusResponse{
			Name:             svc.Descriptor.Name,
			URL:              svc.Descriptor.URL,
			Type:             svc.Descriptor.Type,
			Category:         svc.Descriptor.Category,
			Description:      svc.Descriptor.Description,
			DescriptionEn:    svc.Descriptor.DescriptionEn,
			Status:           svc.Result.Status,
			HTTPStatus:       svc.Result.HTTPStatusCode,
			UptimePercentage: svc.UptimePercentage,
			UptimeSamples:    svc.UptimeSamples,
			CheckedAt:        svc.Result.CheckedAt,
			Error:            svc.Result.Error,
		}
		if ms, ok := svc.Result.LatencyMillis(); ok {
			services[i].LatencyMs = &ms
		}
	}
	summary := SummaryResponse{
		Total:       snapshot.Summary.Total,
		Operational: snapshot.Summary.OperationalCount,
		Degraded:    snapshot.Summary.DegradedCount,
		Down:        snapshot.Summary.DownCount,
	}
	if snapshot.Summary.HasAverageLatency {
		avg := snapshot.Summary.AverageLatency.Round(time.Millisecond).Milliseconds()
		summary.AverageLatencyMs = &avg
	}
	return StatusResponse{
		GenerationID:    snapshot.ID,
		Overall:         snapshot.Overall,
		Version:         version,
		CheckedAt:       snapshot.GeneratedAt,
		CheckDurationMs: snapshot.CheckDuration.Milliseconds(),
		Summary:         summary,
		Services:        services,
	}
}
