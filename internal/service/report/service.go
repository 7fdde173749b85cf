package report

import (
	"context"
	"log/slog"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewReportService(employeeRepo employee.EmployeeRepository, logger *slog.Logger) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func metricsOf(e employee.Employee) report.Metrics {
	return report.Metrics{
		PerformanceScore: e.PerformanceScore,
		WorkedHours:      e.WorkedHours,
		TotalLeaveTaken:  e.TotalLeaveTaken,
		OvertimeApproved: e.OvertimeApproved,
	}
}

// UpdateReport implements report.ReportService.
func (s *ReportServiceImpl) UpdateReport(ctx context.Context, employeeID string) (report.UpdateReportResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.UpdateReportResponse{}, err
	}

	_, narrative := Generate(metricsOf(emp))

	if err := s.employeeRepo.UpdateReport(ctx, emp.ID, narrative); err != nil {
		return report.UpdateReportResponse{}, err
	}

	return report.UpdateReportResponse{
		ID:     emp.ID,
		Name:   emp.FullName(),
		Report: narrative,
	}, nil
}

// UpdateAllReports implements report.ReportService. A failing record is
// logged and skipped so one bad row cannot abort the whole run.
func (s *ReportServiceImpl) UpdateAllReports(ctx context.Context) (report.UpdateAllReportsResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return report.UpdateAllReportsResponse{}, err
	}

	count := 0
	for _, emp := range employees {
		_, narrative := Generate(metricsOf(emp))
		if err := s.employeeRepo.UpdateReport(ctx, emp.ID, narrative); err != nil {
			s.logger.ErrorContext(ctx, "failed to update employee report",
				slog.String("employee_id", emp.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		count++
	}

	return report.UpdateAllReportsResponse{Count: count}, nil
}

// AnalyzeReport implements report.ReportService.
func (s *ReportServiceImpl) AnalyzeReport(ctx context.Context, employeeID string) (report.ReportAnalysisResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.ReportAnalysisResponse{}, err
	}

	rating, narrative := Generate(metricsOf(emp))

	return report.ReportAnalysisResponse{
		ID:               emp.ID,
		Name:             emp.FullName(),
		WorkedHours:      emp.WorkedHours,
		PerformanceScore: emp.PerformanceScore,
		TotalLeaveTaken:  emp.TotalLeaveTaken,
		OvertimeApproved: emp.OvertimeApproved,
		CurrentReport:    emp.Report,
		GeneratedRating:  string(rating),
		GeneratedReport:  narrative,
	}, nil
}
