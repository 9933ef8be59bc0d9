package payroll

import (
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
)

const (
	DefaultStandardHoursPerDay = 9
	DefaultWorkingDaysPerMonth = 26
	DefaultOvertimeRatePerHour = 200
	DefaultBaseSalary          = 25000
)

// Rates are the configured constants the estimator works against.
type Rates struct {
	StandardHoursPerDay float64 `json:"standard_hours_per_day"`
	WorkingDaysPerMonth float64 `json:"working_days_per_month"`
	OvertimeRatePerHour float64 `json:"overtime_rate_per_hour"`
	DefaultBaseSalary   float64 `json:"default_base_salary"`
}

func DefaultRates() Rates {
	return Rates{
		StandardHoursPerDay: DefaultStandardHoursPerDay,
		WorkingDaysPerMonth: DefaultWorkingDaysPerMonth,
		OvertimeRatePerHour: DefaultOvertimeRatePerHour,
		DefaultBaseSalary:   DefaultBaseSalary,
	}
}

func (r Rates) Validate() error {
	var errs validator.ValidationErrors

	if r.StandardHoursPerDay <= 0 || r.StandardHoursPerDay > 24 {
		errs = append(errs, validator.ValidationError{Field: "standard_hours_per_day", Message: "must be between 0 and 24"})
	}
	if r.WorkingDaysPerMonth <= 0 || r.WorkingDaysPerMonth > 31 {
		errs = append(errs, validator.ValidationError{Field: "working_days_per_month", Message: "must be between 1 and 31"})
	}
	if r.OvertimeRatePerHour < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate_per_hour", Message: "must be non-negative"})
	}
	if r.DefaultBaseSalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "default_base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayrollRow is one employee's computed pay for a month. It is derived on
// every request and never stored.
type PayrollRow struct {
	EmployeeID       string
	EmployeeCode     string
	FullName         string
	PresentDays      int
	AbsentDays       int
	TotalWorkedHours float64
	OvertimeHours    float64
	BaseSalary       float64
	BasePayEarned    float64
	OvertimePay      float64
	TotalPay         float64
	Anomalies        int
	Clamped          bool
}

// Report is a full monthly payroll estimate for one company.
type Report struct {
	Month        int
	Year         int
	PeriodStart  time.Time
	PeriodEnd    time.Time
	GeneratedAt  time.Time
	Rates        Rates
	Rows         []PayrollRow
	AnomalyCount int
}
