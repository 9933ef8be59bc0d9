package payroll

import "context"

// PayrollService produces payroll estimates on demand. Every call reads a
// fresh snapshot of employees and attendance; nothing is cached or stored.
type PayrollService interface {
	GenerateReport(ctx context.Context, req ReportRequest) (Report, error)
	ExportReport(ctx context.Context, req ReportRequest) ([]byte, error)
}
