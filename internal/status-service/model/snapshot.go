package model

import (
	"slices"
	"time"
)

const (
	OverallHealthy  = "healthy"
	OverallDegraded = "degraded"
	OverallDown     = "down"
)

type ServiceView struct {
	Descriptor       ServiceDescriptor
	Result           ProbeResult
	UptimePercentage float64
	// UptimeSamples is the number of probes behind UptimePercentage.
	UptimeSamples int64
}

type Summary struct {
	Total            int
	OperationalCount int
	DegradedCount    int
	// DownCount counts services that did not answer at all (down or timeout).
	DownCount         int
	AverageLatency    time.Duration
	HasAverageLatency bool
}

// StatusSnapshot is built once per refresh cycle and shared read-only by every reader.
type StatusSnapshot struct {
	ID            string
	GeneratedAt   time.Time
	Services      []ServiceView
	Overall       string
	Summary       Summary
	CheckDuration time.Duration
}

type CategoryGroup struct {
	Category string
	Services []ServiceView
}

// ByCategory groups services following CategoryOrder, keeping registry order
// inside a group. Unknown categories are appended after the known ones.
func (s *StatusSnapshot) ByCategory() []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, cat := range CategoryOrder {
		index[cat] = len(groups)
		groups = append(groups, CategoryGroup{Category: cat})
	}
	for _, svc := range s.Services {
		i, ok := index[svc.Descriptor.Category]
		if !ok {
			i = len(groups)
			index[svc.Descriptor.Category] = i
			groups = append(groups, CategoryGroup{Category: svc.Descriptor.Category})
		}
		groups[i].Services = append(groups[i].Services, svc)
	}
	return slices.DeleteFunc(groups, func(g CategoryGroup) bool {
		return len(g.Services) == 0
	})
}

// Find returns the view of the named service.
func (s *StatusSnapshot) Find(name string) (ServiceView, bool) {
	for _, svc := range s.Services {
		if svc.Descriptor.Name == name {
			return svc, true
		}
	}
	return ServiceView{}, false
}

func Summarize(results []ProbeResult) Summary {
	summary := Summary{Total: len(results)}
	var latencySum time.Duration
	var latencyCnt int
	for _, r := range results {
		switch r.Status {
		case StatusOperational:
			summary.OperationalCount++
		case StatusDegraded:
			summary.DegradedCount++
		case StatusDown, StatusTimeout:
			summary.DownCount++
		}
		if r.HasLatency() {
			latencySum += r.Latency
			latencyCnt++
		}
	}
	if latencyCnt > 0 {
		summary.AverageLatency = latencySum / time.Duration(latencyCnt)
		summary.HasAverageLatency = true
	}
	return summary
}
