package payroll

import "errors"

var (
	ErrFetchFailed   = errors.New("failed to load payroll source data")
	ErrMissingTenant = errors.New("company_id claim is missing or invalid")
)
