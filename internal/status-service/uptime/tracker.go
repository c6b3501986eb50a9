package uptime

import (
	"VCS_Status_Monitor/internal/status-service/model"
	"sync"
)

// Tracker keeps per-service probe counters for the lifetime of the process.
// Nothing is persisted: counters start over on restart.
type Tracker interface {
	Record(serviceName string, result model.ProbeResult)
	Percentage(serviceName string) float64
	Counts(serviceName string) (total int64, success int64)
}

type counter struct {
	total   int64
	success int64
}

type tracker struct {
	mu                sync.RWMutex
	counters          map[string]*counter
	countDegradedAsUp bool
}

func (t *tracker) Record(serviceName string, result model.ProbeResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.counters[serviceName]
	if !ok {
		c = &counter{}
		t.counters[serviceName] = c
	}
	c.total++
	if t.isUp(result.Status) {
		c.success++
	}
}

func (t *tracker) isUp(status string) bool {
	switch status {
	case model.StatusOperational:
		return true
	case model.StatusDegraded:
		return t.countDegradedAsUp
	default:
		return false
	}
}

// Percentage returns 100 for a service that has not been probed yet.
func (t *tracker) Percentage(serviceName string) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.counters[serviceName]
	if !ok || c.total == 0 {
		return 100
	}
	return float64(c.success) / float64(c.total) * 100
}

func (t *tracker) Counts(serviceName string) (int64, int64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.counters[serviceName]
	if !ok {
		return 0, 0
	}
	return c.total, c.success
}

// NewTracker creates an empty tracker. countDegradedAsUp decides whether a
// service answering with an HTTP error still counts as up.
func NewTracker(countDegradedAsUp bool) Tracker {
	return &tracker{
		counters:          make(map[string]*counter),
		countDegradedAsUp: countDegradedAsUp,
	}
}
