package probe

import (
	"VCS_Status_Monitor/internal/status-service/model"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// bodies are drained so keep-alive connections can be reused, but never read past this
	maxDrainBytes = 64 << 10
)

type Executor interface {
	Probe(ctx context.Context, service model.ServiceDescriptor) model.ProbeResult
}

type executor struct {
	client  *http.Client
	timeout time.Duration
}

// Probe issues a single GET to the service health URL and never returns an
// error: every failure is folded into the result status.
func (e *executor) Probe(ctx context.Context, service model.ServiceDescriptor) model.ProbeResult {
	result := model.ProbeResult{ServiceName: service.Name}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, service.HealthURL(), nil)
	if err != nil {
		result.Status = model.StatusDown
		result.Error = err.Error()
		result.CheckedAt = time.Now()
		return result
	}
	req.Header.Set("User-Agent", "status-monitor-probe")

	start := time.Now()
	resp, err := e.client.Do(req)
	elapsed := time.Since(start)
	result.CheckedAt = time.Now()
	if err != nil {
		if isTimeout(err) {
			result.Status = model.StatusTimeout
			result.Latency = e.timeout
			result.Error = "deadline exceeded"
		} else {
			result.Status = model.StatusDown
			result.Error = err.Error()
		}
		return result
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
	resp.Body.Close()

	result.Latency = elapsed
	result.HTTPStatusCode = resp.StatusCode
	if resp.StatusCode < http.StatusBadRequest {
		result.Status = model.StatusOperational
	} else {
		result.Status = model.StatusDegraded
	}
	return result
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// NewExecutor classifies the first response as is; redirects are not followed.
func NewExecutor(timeout time.Duration) Executor {
	return NewExecutorWithClient(&http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}, timeout)
}

func NewExecutorWithClient(client *http.Client, timeout time.Duration) Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &executor{
		client:  client,
		timeout: timeout,
	}
}
