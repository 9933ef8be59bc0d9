package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/export"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type PayrollServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	estimator      payroll.Estimator
	location       *time.Location
	now            func() time.Time
}

func NewPayrollService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	rates payroll.Rates,
	location *time.Location,
) payroll.PayrollService {
	if location == nil {
		location = time.UTC
	}
	return &PayrollServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		estimator:      payroll.NewEstimator(rates),
		location:       location,
		now:            time.Now,
	}
}

// Helper to get company_id from JWT context
func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", payroll.ErrMissingTenant, err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || !validator.IsValidUUID(companyID) {
		return "", payroll.ErrMissingTenant
	}

	return companyID, nil
}

// GenerateReport reads employees and attendance once each and computes the
// month's payroll. A failed read aborts the whole report.
func (s *PayrollServiceImpl) GenerateReport(ctx context.Context, req payroll.ReportRequest) (payroll.Report, error) {
	if err := req.Validate(); err != nil {
		return payroll.Report{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.Report{}, err
	}

	start, end := attendance.MonthRange(req.Year, time.Month(req.Month), s.location)

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		slog.ErrorContext(ctx, "payroll: employee fetch failed", "company_id", companyID, "error", err)
		return payroll.Report{}, fmt.Errorf("%w: employees: %v", payroll.ErrFetchFailed, err)
	}

	records, err := s.attendanceRepo.ListByDateRange(ctx, companyID, start, end)
	if err != nil {
		slog.ErrorContext(ctx, "payroll: attendance fetch failed", "company_id", companyID, "error", err)
		return payroll.Report{}, fmt.Errorf("%w: attendance: %v", payroll.ErrFetchFailed, err)
	}

	report := ComputeReport(s.estimator, employees, records, s.location)
	report.Month = req.Month
	report.Year = req.Year
	report.PeriodStart = start
	report.PeriodEnd = end
	report.GeneratedAt = s.now().In(s.location)

	for _, row := range report.Rows {
		if row.Anomalies > 0 || row.Clamped {
			slog.WarnContext(ctx, "payroll: attendance anomalies",
				"company_id", companyID,
				"employee_id", row.EmployeeID,
				"anomalies", row.Anomalies,
				"clamped", row.Clamped,
			)
		}
	}
	slog.InfoContext(ctx, "payroll: report generated",
		"company_id", companyID,
		"month", req.Month,
		"year", req.Year,
		"employees", len(report.Rows),
		"records", len(records),
		"anomalies", report.AnomalyCount,
	)

	return report, nil
}

func (s *PayrollServiceImpl) ExportReport(ctx context.Context, req payroll.ReportRequest) ([]byte, error) {
	report, err := s.GenerateReport(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := export.PayrollXLSX(report)
	if err != nil {
		return nil, fmt.Errorf("failed to render payroll export: %w", err)
	}
	return data, nil
}

// ComputeReport is the pure part of report generation: normalize attendance,
// estimate pay for every active employee and order the rows by name.
// Employees without attendance still get a zero row. Undated rows are put on
// their check-in day in loc. Only Rows, Rates and AnomalyCount are filled in.
func ComputeReport(estimator payroll.Estimator, employees []employee.Employee, records []attendance.Record, loc *time.Location) payroll.Report {
	normalized := attendance.NormalizeMonth(records, loc)

	rows := make([]payroll.PayrollRow, 0, len(employees))
	anomalies := len(normalized.Anomalies)
	for _, emp := range employees {
		if !emp.IsActive() {
			continue
		}

		summary := normalized.For(emp.ID)
		est := estimator.Estimate(payroll.EstimateInput{
			PresentDays:   summary.PresentDays(),
			WorkedMinutes: summary.WorkedMinutes,
			BaseSalary:    emp.BaseSalaryFloat(),
		})
		if est.Clamped {
			anomalies++
		}

		rows = append(rows, payroll.PayrollRow{
			EmployeeID:       emp.ID,
			EmployeeCode:     emp.EmployeeCode,
			FullName:         emp.FullName,
			PresentDays:      summary.PresentDays(),
			AbsentDays:       summary.AbsentDays(),
			TotalWorkedHours: est.WorkedHours,
			OvertimeHours:    est.OvertimeHours,
			BaseSalary:       est.BaseSalary,
			BasePayEarned:    est.BasePayEarned,
			OvertimePay:      est.OvertimePay,
			TotalPay:         est.TotalPay,
			Anomalies:        summary.Anomalies,
			Clamped:          est.Clamped,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].FullName != rows[j].FullName {
			return rows[i].FullName < rows[j].FullName
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})

	return payroll.Report{
		Rates:        estimator.Rates(),
		Rows:         rows,
		AnomalyCount: anomalies,
	}
}
