package handler

import (
	"VCS_Status_Monitor/internal/status-service/model"
	"VCS_Status_Monitor/internal/status-service/sso"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

const (
	dashboardRefreshSeconds = 60
	noValue                 = "—"
	defaultUserLabel        = "کاربر"
)

var statusLabels = map[string]string{
	model.StatusOperational: "فعال",
	model.StatusDegraded:    "ناپایدار",
	model.StatusTimeout:     "تایم‌اوت",
	model.StatusDown:        "قطع",
}

var statusColors = map[string]template.CSS{
	model.StatusOperational: "#22c55e",
	model.StatusDegraded:    "#eab308",
	model.StatusTimeout:     "#f97316",
	model.StatusDown:        "#ef4444",
}

type typeBadge struct {
	label string
	color template.CSS
}

var typeBadges = map[string]typeBadge{
	model.ServiceTypeWeb:      {"وب", "#3b82f6"},
	model.ServiceTypeAPI:      {"API", "#8b5cf6"},
	model.ServiceTypeInternal: {"داخلی", "#6b7280"},
}

var categoryLabels = map[string]string{
	model.CategoryCore: "زیرساخت اصلی",
	model.CategoryAI:   "هوش مصنوعی و LLM",
	model.CategoryDev:  "ابزار توسعه‌دهنده",
}

var categoryIcons = map[string]template.HTML{
	model.CategoryCore: "&#9881;",
	model.CategoryAI:   "&#9733;",
	model.CategoryDev:  "&#9000;",
}

type heroView struct {
	Label          string
	Color          template.CSS
	Background     template.CSS
	Operational    int
	Total          int
	AverageLatency string
	Down           int
	CheckedAt      string
}

type cardView struct {
	Name         string
	URL          string
	Description  string
	TypeLabel    string
	TypeColor    template.CSS
	StatusLabel  string
	StatusColor  template.CSS
	Latency      string
	LatencyColor template.CSS
	Uptime       string
}

type sectionView struct {
	Label string
	Icon  template.HTML
	Cards []cardView
}

type dashboardView struct {
	UserName       string
	ShowLogout     bool
	Hero           heroView
	Sections       []sectionView
	Version        string
	RefreshSeconds int
}

func newDashboardView(snapshot *model.StatusSnapshot, user *sso.User, version string) dashboardView {
	view := dashboardView{
		UserName:       defaultUserLabel,
		Version:        version,
		RefreshSeconds: dashboardRefreshSeconds,
		Hero:           newHeroView(snapshot),
	}
	if user != nil {
		view.ShowLogout = true
		if name := user.DisplayName(); name != "" {
			view.UserName = name
		}
	}
	for _, group := range snapshot.ByCategory() {
		section := sectionView{Label: group.Category, Icon: categoryIcons[group.Category]}
		if label, ok := categoryLabels[group.Category]; ok {
			section.Label = label
		}
		for _, svc := range group.Services {
			section.Cards = append(section.Cards, newCardView(svc))
		}
		view.Sections = append(view.Sections, section)
	}
	return view
}

func newHeroView(snapshot *model.StatusSnapshot) heroView {
	summary := snapshot.Summary
	hero := heroView{
		Operational:    summary.OperationalCount,
		Total:          summary.Total,
		Down:           summary.DownCount,
		AverageLatency: noValue,
		CheckedAt:      snapshot.GeneratedAt.UTC().Format("15:04:05 UTC"),
	}
	if summary.HasAverageLatency {
		hero.AverageLatency = fmt.Sprintf("%d ms", summary.AverageLatency.Round(time.Millisecond).Milliseconds())
	}
	switch snapshot.Overall {
	case model.OverallHealthy:
		hero.Label = "همه سرویس‌ها فعال هستند"
		hero.Color, hero.Background = "#22c55e", "rgba(34,197,94,0.08)"
	case model.OverallDown:
		hero.Label = fmt.Sprintf("%d از %d سرویس فعال", summary.OperationalCount, summary.Total)
		hero.Color, hero.Background = "#ef4444", "rgba(239,68,68,0.08)"
	default:
		hero.Label = fmt.Sprintf("%d از %d سرویس فعال", summary.OperationalCount, summary.Total)
		hero.Color, hero.Background = "#eab308", "rgba(234,179,8,0.08)"
	}
	return hero
}

func newCardView(svc model.ServiceView) cardView {
	card := cardView{
		Name:         svc.Descriptor.Name,
		URL:          svc.Descriptor.URL,
		Description:  svc.Descriptor.Description,
		TypeLabel:    "?",
		TypeColor:    "#888",
		StatusLabel:  svc.Result.Status,
		StatusColor:  "#888",
		Latency:      noValue,
		LatencyColor: "#64748b",
		Uptime:       formatUptime(svc),
	}
	if badge, ok := typeBadges[svc.Descriptor.Type]; ok {
		card.TypeLabel, card.TypeColor = badge.label, badge.color
	}
	if label, ok := statusLabels[svc.Result.Status]; ok {
		card.StatusLabel = label
	}
	if color, ok := statusColors[svc.Result.Status]; ok {
		card.StatusColor = color
	}
	if ms, ok := svc.Result.LatencyMillis(); ok {
		card.Latency = fmt.Sprintf("%d ms", ms)
		card.LatencyColor = latencyColor(ms)
	}
	return card
}

func latencyColor(ms int64) template.CSS {
	switch {
	case ms < 500:
		return "#22c55e"
	case ms < 2000:
		return "#eab308"
	default:
		return "#f97316"
	}
}

func formatUptime(svc model.ServiceView) string {
	if svc.UptimeSamples == 0 {
		return noValue
	}
	return fmt.Sprintf("%.1f%%", svc.UptimePercentage)
}
