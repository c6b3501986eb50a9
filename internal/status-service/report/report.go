package report

import (
	"VCS_Status_Monitor/internal/status-service/export"
	"VCS_Status_Monitor/internal/status-service/model"
	"VCS_Status_Monitor/internal/status-service/service"
	"VCS_Status_Monitor/pkg/mail"
	"context"
	"fmt"
	"html"
	"strings"
)

type Service interface {
	SendDailyReport(ctx context.Context) error
}

type reportService struct {
	statusService service.StatusService
	mailSender    mail.Sender
	recipients    []string
}

// SendDailyReport mails the current snapshot with an xlsx export attached.
func (r *reportService) SendDailyReport(ctx context.Context) error {
	snapshot, err := r.statusService.GetSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("ReportService.SendDailyReport: %w", err)
	}
	attachment, err := export.Bytes(snapshot)
	if err != nil {
		return fmt.Errorf("ReportService.SendDailyReport: %w", err)
	}
	err = r.mailSender.Send(mail.Message{
		To:       r.recipients,
		Subject:  fmt.Sprintf("Service Status Report %s (%s)", snapshot.GeneratedAt.UTC().Format("2006-01-02"), snapshot.Overall),
		TextBody: generateTextMailBody(snapshot),
		HTMLBody: generateHTMLBody(snapshot),
		Attachments: []mail.Attachment{
			{Name: export.FileName(snapshot), ContentType: export.ContentType, Data: attachment},
		},
	})
	if err != nil {
		return fmt.Errorf("ReportService.SendDailyReport: %w", err)
	}
	return nil
}

func averageUptime(snapshot *model.StatusSnapshot) float64 {
	if len(snapshot.Services) == 0 {
		return 100
	}
	var sum float64
	for _, svc := range snapshot.Services {
		sum += svc.UptimePercentage
	}
	return sum / float64(len(snapshot.Services))
}

func averageLatency(snapshot *model.StatusSnapshot) string {
	if !snapshot.Summary.HasAverageLatency {
		return "n/a"
	}
	return fmt.Sprintf("%dms", snapshot.Summary.AverageLatency.Milliseconds())
}

func generateTextMailBody(snapshot *model.StatusSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"--- SUMMARY ---\n"+
			"Overall: %s\n"+
			"Total Services: %d\n"+
			"Operational: %d\n"+
			"Degraded: %d\n"+
			"Down: %d\n"+
			"Average Latency: %s\n"+
			"Average Uptime Across All Services: %.2f%%\n\n"+
			"--- SERVICES ---\n",
		snapshot.Overall,
		snapshot.Summary.Total,
		snapshot.Summary.OperationalCount,
		snapshot.Summary.DegradedCount,
		snapshot.Summary.DownCount,
		averageLatency(snapshot),
		averageUptime(snapshot),
	)
	for _, svc := range snapshot.Services {
		fmt.Fprintf(&b, "%s: %s, uptime %.2f%%\n", svc.Descriptor.Name, svc.Result.Status, svc.UptimePercentage)
	}
	return b.String()
}

const (
	labelCell = `<td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">%s</td>`
	valueCell = `<td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>`
)

func generateHTMLBody(snapshot *model.StatusSnapshot) string {
	rows := [][2]string{
		{"Overall:", snapshot.Overall},
		{"Total Services:", fmt.Sprint(snapshot.Summary.Total)},
		{"Operational Services:", fmt.Sprint(snapshot.Summary.OperationalCount)},
		{"Degraded Services:", fmt.Sprint(snapshot.Summary.DegradedCount)},
		{"Down Services:", fmt.Sprint(snapshot.Summary.DownCount)},
		{"Average Latency:", averageLatency(snapshot)},
		{"Average Uptime Percentage:", fmt.Sprintf("%.2f%%", averageUptime(snapshot))},
	}
	for _, svc := range snapshot.Services {
		rows = append(rows, [2]string{svc.Descriptor.Name + ":", fmt.Sprintf("%s (%.2f%%)", svc.Result.Status, svc.UptimePercentage)})
	}

	var b strings.Builder
	b.WriteString("\n<body>\n    <table style=\"width:100%; border-collapse: collapse;\">\n")
	for _, row := range rows {
		b.WriteString("        <tr>\n            ")
		fmt.Fprintf(&b, labelCell, html.EscapeString(row[0]))
		b.WriteString("\n            ")
		fmt.Fprintf(&b, valueCell, html.EscapeString(row[1]))
		b.WriteString("\n        </tr>\n")
	}
	b.WriteString("    </table>\n</body>")
	return b.String()
}

func NewReportService(statusService service.StatusService, mailSender mail.Sender, recipients ...string) Service {
	return &reportService{
		statusService: statusService,
		mailSender:    mailSender,
		recipients:    recipients,
	}
}
