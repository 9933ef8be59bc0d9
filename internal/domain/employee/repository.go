package employee

import "context"

type EmployeeRepository interface {
	// GetActiveByCompanyID returns employees that are active and not soft-deleted.
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
