package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines read access to attendance rows plus the single
// write used by the auto-checkout job.
// All tenant-facing methods include companyID to prevent cross-company reads.
type AttendanceRepository interface {
	// ListByDateRange returns every row whose day falls in [start, end], both inclusive.
	ListByDateRange(ctx context.Context, companyID string, start, end time.Time) ([]Record, error)

	// GetOpenSessions returns rows with a check-in and no check-out that started before cutoff.
	GetOpenSessions(ctx context.Context, cutoff time.Time) ([]Record, error)

	// CloseSession stores check_out, total_hours and status for an open row,
	// and lunch_end when the row has none yet.
	CloseSession(ctx context.Context, record Record) error
}
