package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	UserID           *string
	CompanyID        string
	EmployeeCode     string
	FullName         string
	Role             Role
	EmploymentStatus EmploymentStatus
	BaseSalary       *decimal.Decimal
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// IsActive gates inclusion in payroll reports.
func (e Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive && e.DeletedAt == nil
}

// BaseSalaryFloat returns the monthly base salary, or nil when none is configured.
func (e Employee) BaseSalaryFloat() *float64 {
	if e.BaseSalary == nil {
		return nil
	}
	v := e.BaseSalary.InexactFloat64()
	return &v
}

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTelecaller Role = "telecaller"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusInactive   EmploymentStatus = "inactive"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
