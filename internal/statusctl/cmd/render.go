package cmd

import (
	"VCS_Status_Monitor/internal/status-service/api/dto/response"
	"VCS_Status_Monitor/internal/status-service/model"
	"VCS_Status_Monitor/internal/statusctl/style"
	"fmt"
	"io"
	"slices"
)

var categoryTitles = map[string]string{
	model.CategoryCore: "Core",
	model.CategoryAI:   "AI",
	model.CategoryDev:  "Developer tools",
}

func renderStatus(w io.Writer, s *response.StatusResponse) {
	fmt.Fprintln(w, style.Title.Render("service status"), style.DimText.Render(s.GenerationID))
	fmt.Fprintln(w)

	for _, category := range categoriesOf(s.Services) {
		title, ok := categoryTitles[category]
		if !ok {
			title = category
		}
		fmt.Fprintln(w, style.Header.Render(title))
		for _, svc := range s.Services {
			if svc.Category != category {
				continue
			}
			fmt.Fprintf(w, "  %s %-24s %-12s %8s %8s\n",
				style.StatusDot(svc.Status),
				svc.Name,
				style.ForStatus(svc.Status).Render(svc.Status),
				renderLatency(svc.LatencyMs),
				renderUptime(svc.UptimePercentage, svc.UptimeSamples),
			)
		}
		fmt.Fprintln(w)
	}

	summary := fmt.Sprintf("%s  %d/%d operational  avg %s  down %d",
		style.ForStatus(s.Overall).Render(s.Overall),
		s.Summary.Operational, s.Summary.Total,
		renderLatency(s.Summary.AverageLatencyMs),
		s.Summary.Down,
	)
	fmt.Fprintln(w, style.Box.Render(summary))
}

// categoriesOf lists known categories first, then any others in first-seen order.
func categoriesOf(services []response.ServiceStatusResponse) []string {
	var out []string
	for _, cat := range model.CategoryOrder {
		if slices.ContainsFunc(services, func(s response.ServiceStatusResponse) bool { return s.Category == cat }) {
			out = append(out, cat)
		}
	}
	for _, svc := range services {
		if !slices.Contains(out, svc.Category) {
			out = append(out, svc.Category)
		}
	}
	return out
}

func renderLatency(ms *int64) string {
	if ms == nil {
		return style.DimText.Render("-")
	}
	return style.ForLatency(*ms).Render(fmt.Sprintf("%dms", *ms))
}

func renderUptime(pct float64, samples int64) string {
	if samples == 0 {
		return style.DimText.Render("-")
	}
	return fmt.Sprintf("%.1f%%", pct)
}
