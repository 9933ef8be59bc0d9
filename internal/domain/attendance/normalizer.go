package attendance

import (
	"time"
)

// DayKeyLayout is the canonical calendar-date format used for day keys.
const DayKeyLayout = "2006-01-02"

type AnomalyKind string

const (
	AnomalyMissingDayKey   AnomalyKind = "missing_day_key"
	AnomalyNegativeSession AnomalyKind = "negative_session"
	AnomalyMissingUser     AnomalyKind = "missing_user"
)

// Anomaly marks a row that was partly or wholly excluded from aggregation.
type Anomaly struct {
	RecordID string
	UserID   string
	Kind     AnomalyKind
}

// Summary is one employee's attendance for a month after day normalization.
type Summary struct {
	UserID        string
	PresentDates  map[string]struct{}
	AbsentDates   map[string]struct{}
	WorkedMinutes float64
	Anomalies     int
}

func newSummary(userID string) *Summary {
	return &Summary{
		UserID:       userID,
		PresentDates: make(map[string]struct{}),
		AbsentDates:  make(map[string]struct{}),
	}
}

func (s Summary) PresentDays() int {
	return len(s.PresentDates)
}

func (s Summary) AbsentDays() int {
	return len(s.AbsentDates)
}

// Normalized is the result of NormalizeMonth.
type Normalized struct {
	ByUser    map[string]*Summary
	Anomalies []Anomaly
}

// For returns the summary of userID, or an empty summary when the user has no rows.
func (n Normalized) For(userID string) Summary {
	if s, ok := n.ByUser[userID]; ok {
		return *s
	}
	return *newSummary(userID)
}

// DayKey resolves the calendar day a row belongs to: Date when set,
// otherwise the date portion of CheckIn seen from loc. Date is a calendar
// value and is never shifted. A nil loc keeps CheckIn's own location.
func DayKey(r Record, loc *time.Location) (string, bool) {
	if r.Date != nil && !r.Date.IsZero() {
		return r.Date.Format(DayKeyLayout), true
	}
	if r.CheckIn != nil && !r.CheckIn.IsZero() {
		checkIn := *r.CheckIn
		if loc != nil {
			checkIn = checkIn.In(loc)
		}
		return checkIn.Format(DayKeyLayout), true
	}
	return "", false
}

// SessionMinutes is the row's check-in to check-out span in minutes.
// Missing timestamps and non-positive spans yield zero.
func SessionMinutes(r Record) float64 {
	if !r.IsComplete() {
		return 0
	}
	return r.CheckOut.Sub(*r.CheckIn).Minutes()
}

type dayMarks struct {
	present bool
	absent  bool
}

// NormalizeMonth collapses attendance rows into per-employee present/absent
// date sets and a worked-minutes total.
//
// A date counts once regardless of how many rows it has. It is absent only
// when every row keyed to it is absent; any non-absent row makes it present.
// Worked minutes are summed over all rows without deduplication and lunch
// breaks are not subtracted. Days without a Date are taken from the check-in
// in loc. The input slice is not modified.
func NormalizeMonth(records []Record, loc *time.Location) Normalized {
	out := Normalized{ByUser: make(map[string]*Summary)}
	days := make(map[string]map[string]*dayMarks)

	for _, r := range records {
		if r.UserID == "" {
			out.Anomalies = append(out.Anomalies, Anomaly{RecordID: r.ID, Kind: AnomalyMissingUser})
			continue
		}

		summary, ok := out.ByUser[r.UserID]
		if !ok {
			summary = newSummary(r.UserID)
			out.ByUser[r.UserID] = summary
			days[r.UserID] = make(map[string]*dayMarks)
		}

		if key, ok := DayKey(r, loc); ok {
			marks, seen := days[r.UserID][key]
			if !seen {
				marks = &dayMarks{}
				days[r.UserID][key] = marks
			}
			if r.IsAbsent() {
				marks.absent = true
			} else {
				marks.present = true
			}
		} else {
			summary.Anomalies++
			out.Anomalies = append(out.Anomalies, Anomaly{RecordID: r.ID, UserID: r.UserID, Kind: AnomalyMissingDayKey})
		}

		if r.CheckIn != nil && r.CheckOut != nil && r.CheckOut.Before(*r.CheckIn) {
			summary.Anomalies++
			out.Anomalies = append(out.Anomalies, Anomaly{RecordID: r.ID, UserID: r.UserID, Kind: AnomalyNegativeSession})
			continue
		}
		summary.WorkedMinutes += SessionMinutes(r)
	}

	for userID, byDay := range days {
		summary := out.ByUser[userID]
		for key, marks := range byDay {
			if marks.present {
				summary.PresentDates[key] = struct{}{}
			} else {
				summary.AbsentDates[key] = struct{}{}
			}
		}
	}

	return out
}

// MonthRange returns the first and last calendar day of the given month in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, -1)
}
