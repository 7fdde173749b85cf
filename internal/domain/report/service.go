package report

import "context"

// ReportService derives narrative performance reports from employee metrics.
type ReportService interface {
	// UpdateReport regenerates and persists the narrative for one employee
	UpdateReport(ctx context.Context, employeeID string) (UpdateReportResponse, error)

	// UpdateAllReports regenerates every employee's narrative, continuing
	// independently per record
	UpdateAllReports(ctx context.Context) (UpdateAllReportsResponse, error)

	// AnalyzeReport computes the rating and narrative without persisting
	AnalyzeReport(ctx context.Context, employeeID string) (ReportAnalysisResponse, error)
}
