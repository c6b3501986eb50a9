package export

import (
	"VCS_Status_Monitor/internal/status-service/model"
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	ServicesSheet = "Services"
	SummarySheet  = "Summary"
	ContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	timeLayout = "2006-01-02 15:04:05"
)

var serviceHeaders = []interface{}{
	"name", "category", "type", "url", "status", "http_status", "latency_ms", "uptime_percentage", "uptime_samples", "checked_at", "error",
}

// FileName is the attachment name used for a snapshot export.
func FileName(snapshot *model.StatusSnapshot) string {
	return fmt.Sprintf("status-%s.xlsx", snapshot.GeneratedAt.UTC().Format("2006-01-02T15-04-05"))
}

// Workbook renders a snapshot into a two sheet workbook. The caller closes the file.
func Workbook(snapshot *model.StatusSnapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	err := f.SetSheetName("Sheet1", ServicesSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("export.Workbook: %w", err)
	}
	if err = f.SetSheetRow(ServicesSheet, "A1", &serviceHeaders); err != nil {
		f.Close()
		return nil, fmt.Errorf("export.Workbook: %w", err)
	}
	for i, svc := range snapshot.Services {
		var latency interface{} = ""
		if ms, ok := svc.Result.LatencyMillis(); ok {
			latency = ms
		}
		var httpStatus interface{} = ""
		if svc.Result.HTTPStatusCode != 0 {
			httpStatus = svc.Result.HTTPStatusCode
		}
		rowData := []interface{}{
			svc.Descriptor.Name,
			svc.Descriptor.Category,
			svc.Descriptor.Type,
			svc.Descriptor.URL,
			svc.Result.Status,
			httpStatus,
			latency,
			svc.UptimePercentage,
			svc.UptimeSamples,
			svc.Result.CheckedAt.UTC().Format(timeLayout),
			svc.Result.Error,
		}
		if err = f.SetSheetRow(ServicesSheet, fmt.Sprintf("A%d", i+2), &rowData); err != nil {
			f.Close()
			return nil, fmt.Errorf("export.Workbook: %w", err)
		}
	}

	if _, err = f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("export.Workbook: %w", err)
	}
	var avg interface{} = ""
	if snapshot.Summary.HasAverageLatency {
		avg = snapshot.Summary.AverageLatency.Milliseconds()
	}
	summaryRows := [][]interface{}{
		{"snapshot_id", snapshot.ID},
		{"generated_at", snapshot.GeneratedAt.UTC().Format(timeLayout)},
		{"overall", snapshot.Overall},
		{"total", snapshot.Summary.Total},
		{"operational", snapshot.Summary.OperationalCount},
		{"degraded", snapshot.Summary.DegradedCount},
		{"down", snapshot.Summary.DownCount},
		{"average_latency_ms", avg},
		{"check_duration_ms", snapshot.CheckDuration.Milliseconds()},
	}
	for i, row := range summaryRows {
		if err = f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("export.Workbook: %w", err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Bytes renders the workbook into memory, used for mail attachments.
func Bytes(snapshot *model.StatusSnapshot) ([]byte, error) {
	f, err := Workbook(snapshot)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var buf bytes.Buffer
	if err = f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export.Bytes: %w", err)
	}
	return buf.Bytes(), nil
}
