package payroll

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REPORT DTOs ==========

type ReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}

	maxYear := time.Now().Year() + 1
	if r.Year < 2000 || r.Year > maxYear {
		errs = append(errs, validator.ValidationError{Field: "year", Message: fmt.Sprintf("year must be between 2000 and %d", maxYear)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRowResponse struct {
	EmployeeID       string          `json:"employee_id"`
	EmployeeCode     string          `json:"employee_code"`
	EmployeeName     string          `json:"employee_name"`
	PresentDays      int             `json:"present_days"`
	AbsentDays       int             `json:"absent_days"`
	TotalWorkedHours decimal.Decimal `json:"total_worked_hours"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	BasePayEarned    decimal.Decimal `json:"base_pay_earned"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	TotalPay         decimal.Decimal `json:"total_pay"`
	Anomalies        int             `json:"anomalies,omitempty"`
}

type ReportResponse struct {
	PeriodMonth  int                  `json:"period_month"`
	PeriodYear   int                  `json:"period_year"`
	PeriodStart  string               `json:"period_start"`
	PeriodEnd    string               `json:"period_end"`
	GeneratedAt  string               `json:"generated_at"`
	Rates        Rates                `json:"rates"`
	Rows         []PayrollRowResponse `json:"rows"`
	TotalPay     decimal.Decimal      `json:"total_pay"`
	AnomalyCount int                  `json:"anomaly_count"`
}

// ToResponse applies presentation rounding: hours to one decimal place and
// money to whole units. The grand total is summed before rounding.
func (r Report) ToResponse() ReportResponse {
	rows := make([]PayrollRowResponse, 0, len(r.Rows))
	total := 0.0
	for _, row := range r.Rows {
		total += row.TotalPay
		rows = append(rows, PayrollRowResponse{
			EmployeeID:       row.EmployeeID,
			EmployeeCode:     row.EmployeeCode,
			EmployeeName:     row.FullName,
			PresentDays:      row.PresentDays,
			AbsentDays:       row.AbsentDays,
			TotalWorkedHours: RoundHours(row.TotalWorkedHours),
			OvertimeHours:    RoundHours(row.OvertimeHours),
			BaseSalary:       RoundMoney(row.BaseSalary),
			BasePayEarned:    RoundMoney(row.BasePayEarned),
			OvertimePay:      RoundMoney(row.OvertimePay),
			TotalPay:         RoundMoney(row.TotalPay),
			Anomalies:        row.Anomalies,
		})
	}

	return ReportResponse{
		PeriodMonth:  r.Month,
		PeriodYear:   r.Year,
		PeriodStart:  r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    r.PeriodEnd.Format("2006-01-02"),
		GeneratedAt:  r.GeneratedAt.Format(time.RFC3339),
		Rates:        r.Rates,
		Rows:         rows,
		TotalPay:     RoundMoney(total),
		AnomalyCount: r.AnomalyCount,
	}
}
