package model

import "time"

const (
	StatusOperational = "operational"
	StatusDegraded    = "degraded"
	StatusTimeout     = "timeout"
	StatusDown        = "down"
)

type ProbeResult struct {
	ServiceName    string
	Status         string
	Latency        time.Duration
	HTTPStatusCode int
	CheckedAt      time.Time
	Error          string
}

// HasLatency reports whether Latency is a measured round trip, which is only
// the case when the service answered.
func (r ProbeResult) HasLatency() bool {
	return r.Status == StatusOperational || r.Status == StatusDegraded
}

// LatencyMillis rounds the measured latency to whole milliseconds.
func (r ProbeResult) LatencyMillis() (int64, bool) {
	if !r.HasLatency() {
		return 0, false
	}
	return r.Latency.Round(time.Millisecond).Milliseconds(), true
}
