package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.company_id, a.date, a.check_in, a.check_out,
	a.lunch_start, a.lunch_end, a.status, a.total_hours,
	a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.CompanyID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.LunchStart, &rec.LunchEnd, &rec.Status, &rec.TotalHours,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func collectAttendance(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

// ListByDateRange implements attendance.AttendanceRepository.
// Undated rows are placed on their check-in day in start's location.
// Rows with neither date nor check-in are matched on created_at so they
// reach the normalizer and get counted as anomalies.
func (a *attendanceRepository) ListByDateRange(ctx context.Context, companyID string, start, end time.Time) ([]attendance.Record, error) {
	if end.Before(start) {
		return nil, attendance.ErrInvalidDateRange
	}
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.company_id = $1
		  AND (
			COALESCE(a.date, (a.check_in AT TIME ZONE $4)::date) BETWEEN $2::date AND $3::date
			OR (a.date IS NULL AND a.check_in IS NULL AND (a.created_at AT TIME ZONE $4)::date BETWEEN $2::date AND $3::date)
		  )
		ORDER BY a.user_id, COALESCE(a.date, (a.check_in AT TIME ZONE $4)::date), a.check_in NULLS LAST, a.id
	`

	rows, err := q.Query(ctx, query, companyID, start.Format("2006-01-02"), end.Format("2006-01-02"), timeZoneName(start.Location()))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return collectAttendance(rows)
}

// timeZoneName returns an IANA name Postgres accepts for loc.
func timeZoneName(loc *time.Location) string {
	if loc == nil || loc.String() == "Local" {
		return "UTC"
	}
	return loc.String()
}

// GetOpenSessions implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetOpenSessions(ctx context.Context, cutoff time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.check_in IS NOT NULL
		  AND a.check_out IS NULL
		  AND a.check_in < $1
		  AND a.status <> $2
		ORDER BY a.check_in
	`

	rows, err := q.Query(ctx, query, cutoff, attendance.StatusAbsent)
	if err != nil {
		return nil, fmt.Errorf("failed to get open sessions: %w", err)
	}
	return collectAttendance(rows)
}

// CloseSession implements attendance.AttendanceRepository.
func (a *attendanceRepository) CloseSession(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $1, total_hours = $2, status = $3,
			lunch_end = COALESCE(lunch_end, $4), updated_at = NOW()
		WHERE id = $5 AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, record.CheckOut, record.TotalHours, record.Status, record.LunchEnd, record.ID)
	if err != nil {
		return fmt.Errorf("failed to close attendance session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSessionNotOpen
	}
	return nil
}
