package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, user_id, company_id, employee_code, full_name, role,
			employment_status, base_salary, hire_date, created_at, updated_at, deleted_at
		FROM employees
		WHERE company_id = $1 AND employment_status = $2 AND deleted_at IS NULL
		ORDER BY full_name, id
	`

	rows, err := q.Query(ctx, query, companyID, employee.EmploymentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName, &emp.Role,
			&emp.EmploymentStatus, &emp.BaseSalary, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
