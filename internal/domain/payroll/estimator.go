package payroll

import (
	"math"

	"github.com/shopspring/decimal"
)

// EstimateInput is one employee's normalized month.
type EstimateInput struct {
	PresentDays   int
	WorkedMinutes float64
	BaseSalary    *float64
}

type Estimate struct {
	BaseSalary    float64
	WorkedHours   float64
	StandardHours float64
	OvertimeHours float64
	PerDayRate    float64
	BasePayEarned float64
	OvertimePay   float64
	TotalPay      float64
	// Clamped is set when worked time exists without any present day.
	// Such time earns nothing.
	Clamped bool
}

// Estimator computes monthly pay from present days and worked minutes using
// a monthly standard-hours baseline for overtime.
type Estimator struct {
	rates Rates
}

func NewEstimator(rates Rates) Estimator {
	return Estimator{rates: rates}
}

func (e Estimator) Rates() Rates {
	return e.rates
}

func (e Estimator) Estimate(in EstimateInput) Estimate {
	baseSalary := e.rates.DefaultBaseSalary
	if in.BaseSalary != nil {
		baseSalary = *in.BaseSalary
	}

	out := Estimate{
		BaseSalary:  baseSalary,
		WorkedHours: in.WorkedMinutes / 60,
	}
	if e.rates.WorkingDaysPerMonth > 0 {
		out.PerDayRate = baseSalary / e.rates.WorkingDaysPerMonth
	}

	if in.PresentDays <= 0 {
		out.Clamped = in.WorkedMinutes > 0
		return out
	}

	out.StandardHours = float64(in.PresentDays) * e.rates.StandardHoursPerDay
	out.OvertimeHours = math.Max(0, out.WorkedHours-out.StandardHours)
	out.BasePayEarned = out.PerDayRate * float64(in.PresentDays)
	out.OvertimePay = out.OvertimeHours * e.rates.OvertimeRatePerHour
	out.TotalPay = out.BasePayEarned + out.OvertimePay
	return out
}

// RoundMoney rounds an amount to whole currency units for presentation.
func RoundMoney(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(0)
}

// RoundHours rounds an hour figure to one decimal place for presentation.
func RoundHours(hours float64) decimal.Decimal {
	return decimal.NewFromFloat(hours).Round(1)
}
