package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// TxRunner runs fn inside a database transaction.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	withTx         TxRunner
	standardHours  float64
	after          time.Duration
	interval       time.Duration
	now            func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	withTx TxRunner,
	standardHours float64,
	after time.Duration,
	interval time.Duration,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		withTx:         withTx,
		standardHours:  standardHours,
		after:          after,
		interval:       interval,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_open_sessions", j.interval, j.AutoCloseOpenSessions)
}

// AutoCloseOpenSessions closes sessions left open for longer than the
// configured window. All updates of one run share a transaction; a row closed
// concurrently by the employee is skipped.
func (j *AttendanceJobs) AutoCloseOpenSessions(ctx context.Context) error {
	now := j.now()
	cutoff := now.Add(-j.after)

	slog.Info("Cron: Starting auto-close open sessions job", "cutoff", cutoff)

	closed, skipped := 0, 0
	err := j.withTx(ctx, func(ctx context.Context) error {
		sessions, err := j.attendanceRepo.GetOpenSessions(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("failed to get open sessions: %w", err)
		}

		for _, session := range sessions {
			record := CloseSession(session, j.standardHours, now)
			if err := j.attendanceRepo.CloseSession(ctx, record); err != nil {
				if errors.Is(err, attendance.ErrSessionNotOpen) {
					skipped++
					continue
				}
				return fmt.Errorf("failed to close attendance %s: %w", session.ID, err)
			}
			closed++
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Cron: Auto-closed open sessions", "count", closed, "skipped", skipped)
	return nil
}

// CloseSession returns r with a synthetic check-out standardHours after the
// check-in, never later than now, and the lunch-deducted total_hours of the
// resulting session. A lunch break that was never ended closes at the
// synthetic check-out.
func CloseSession(r attendance.Record, standardHours float64, now time.Time) attendance.Record {
	if r.CheckIn == nil {
		return r
	}

	checkOut := r.CheckIn.Add(time.Duration(standardHours * float64(time.Hour)))
	if checkOut.After(now) {
		checkOut = now
	}
	if checkOut.Before(*r.CheckIn) {
		checkOut = *r.CheckIn
	}

	r.CheckOut = &checkOut
	if r.LunchStart != nil && r.LunchEnd == nil {
		r.LunchEnd = &checkOut
	}
	hours := decimal.NewFromFloat(attendance.DailyWorkedMinutes(r) / 60).Round(2).InexactFloat64()
	r.TotalHours = &hours
	r.Status = attendance.StatusAutoClosed
	return r
}
