package attendance

import "errors"

var (
	ErrSessionNotOpen   = errors.New("attendance session is not open")
	ErrInvalidDateRange = errors.New("invalid attendance date range")
)
