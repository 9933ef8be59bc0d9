package attendance

import (
	"time"
)

const (
	StatusPresent    = "present"
	StatusAbsent     = "absent"
	StatusAutoClosed = "auto_closed"
)

// Record is a single attendance row. An employee may have several rows for
// the same calendar date (multiple check-in/out sessions or duplicate inserts).
type Record struct {
	ID         string
	UserID     string
	CompanyID  string
	Date       *time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	LunchStart *time.Time
	LunchEnd   *time.Time
	Status     string
	TotalHours *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAbsent reports whether the row carries the distinguished absent status.
func (r Record) IsAbsent() bool {
	return r.Status == StatusAbsent
}

// IsComplete reports whether the row has both timestamps with CheckOut after CheckIn.
func (r Record) IsComplete() bool {
	return r.CheckIn != nil && r.CheckOut != nil && r.CheckOut.After(*r.CheckIn)
}
