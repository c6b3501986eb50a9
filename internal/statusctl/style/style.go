package style

import (
	"VCS_Status_Monitor/internal/status-service/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	green  = lipgloss.Color("#22c55e")
	yellow = lipgloss.Color("#eab308")
	orange = lipgloss.Color("#f97316")
	red    = lipgloss.Color("#ef4444")
	gray   = lipgloss.Color("#6b7280")

	Title   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa"))
	Bold    = lipgloss.NewStyle().Bold(true)
	DimText = lipgloss.NewStyle().Foreground(gray)
	Header  = lipgloss.NewStyle().Bold(true).Underline(true)

	Healthy   = lipgloss.NewStyle().Foreground(green)
	Degraded  = lipgloss.NewStyle().Foreground(yellow)
	TimedOut  = lipgloss.NewStyle().Foreground(orange)
	Unhealthy = lipgloss.NewStyle().Foreground(red)

	Box = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// ForStatus picks the colour for a probe status or an overall health value.
func ForStatus(status string) lipgloss.Style {
	switch status {
	case model.StatusOperational, model.OverallHealthy:
		return Healthy
	case model.StatusDegraded:
		return Degraded
	case model.StatusTimeout:
		return TimedOut
	case model.StatusDown:
		return Unhealthy
	}
	return DimText
}

func StatusDot(status string) string {
	return ForStatus(status).Render("●")
}

// ForLatency uses the same bands as the dashboard.
func ForLatency(ms int64) lipgloss.Style {
	switch {
	case ms < 500:
		return Healthy
	case ms < 2000:
		return Degraded
	}
	return Unhealthy
}
