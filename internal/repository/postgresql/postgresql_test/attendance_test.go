package postgresqltest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) (*TestDatabaseSetup, context.Context) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	setup, err := NewTestDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(setup.Close)
	require.NoError(t, setup.TruncateAllTables(ctx))
	return setup, ctx
}

func insertEmployee(t *testing.T, ctx context.Context, setup *TestDatabaseSetup, companyID, name, status string, salary *float64) string {
	t.Helper()
	var id string
	err := setup.DB.QueryRow(ctx, `
		INSERT INTO employees (company_id, full_name, employment_status, base_salary)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, companyID, name, status, salary).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertAttendance(t *testing.T, ctx context.Context, setup *TestDatabaseSetup, userID, companyID string, date *string, checkIn, checkOut *time.Time, status string) string {
	t.Helper()
	var id string
	err := setup.DB.QueryRow(ctx, `
		INSERT INTO attendances (user_id, company_id, date, check_in, check_out, status)
		VALUES ($1, $2, $3::date, $4, $5, $6)
		RETURNING id
	`, userID, companyID, date, checkIn, checkOut, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestEmployeeRepository_GetActiveByCompanyID(t *testing.T) {
	setup, ctx := setupDB(t)
	companyID := uuid.NewString()
	salary := 30000.0

	insertEmployee(t, ctx, setup, companyID, "Bea", string(employee.EmploymentStatusActive), &salary)
	insertEmployee(t, ctx, setup, companyID, "Adi", string(employee.EmploymentStatusActive), nil)
	insertEmployee(t, ctx, setup, companyID, "Cal", string(employee.EmploymentStatusResigned), nil)
	insertEmployee(t, ctx, setup, uuid.NewString(), "Other", string(employee.EmploymentStatusActive), nil)

	repo := postgresql.NewEmployeeRepository(setup.DB)
	got, err := repo.GetActiveByCompanyID(ctx, companyID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Adi", got[0].FullName)
	assert.Nil(t, got[0].BaseSalary)
	assert.Equal(t, "Bea", got[1].FullName)
	require.NotNil(t, got[1].BaseSalary)
	assert.Equal(t, "30000", got[1].BaseSalary.String())
}

func TestAttendanceRepository_ListByDateRange(t *testing.T) {
	setup, ctx := setupDB(t)
	companyID := uuid.NewString()
	empID := insertEmployee(t, ctx, setup, companyID, "Adi", string(employee.EmploymentStatusActive), nil)

	in := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)
	insertAttendance(t, ctx, setup, empID, companyID, strPtr("2024-06-10"), &in, &out, attendance.StatusPresent)
	insertAttendance(t, ctx, setup, empID, companyID, nil, timePtr(in.AddDate(0, 0, 1)), nil, attendance.StatusPresent)
	insertAttendance(t, ctx, setup, empID, companyID, strPtr("2024-07-01"), nil, nil, attendance.StatusAbsent)

	repo := postgresql.NewAttendanceRepository(setup.DB)
	start, end := attendance.MonthRange(2024, time.June, time.UTC)
	got, err := repo.ListByDateRange(ctx, companyID, start, end)

	require.NoError(t, err)
	assert.Len(t, got, 2)

	other, err := repo.ListByDateRange(ctx, uuid.NewString(), start, end)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAttendanceRepository_ListByDateRangeUsesWindowLocation(t *testing.T) {
	setup, ctx := setupDB(t)
	companyID := uuid.NewString()
	empID := insertEmployee(t, ctx, setup, companyID, "Adi", string(employee.EmploymentStatusActive), nil)

	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 01:00 on 1 July in Kolkata, still 30 June in UTC.
	in := time.Date(2024, 6, 30, 19, 30, 0, 0, time.UTC)
	id := insertAttendance(t, ctx, setup, empID, companyID, nil, &in, timePtr(in.Add(2*time.Hour)), attendance.StatusPresent)

	repo := postgresql.NewAttendanceRepository(setup.DB)

	start, end := attendance.MonthRange(2024, time.July, kolkata)
	july, err := repo.ListByDateRange(ctx, companyID, start, end)
	require.NoError(t, err)
	require.Len(t, july, 1)
	assert.Equal(t, id, july[0].ID)

	start, end = attendance.MonthRange(2024, time.June, kolkata)
	june, err := repo.ListByDateRange(ctx, companyID, start, end)
	require.NoError(t, err)
	assert.Empty(t, june)
}

func TestAttendanceRepository_CloseSession(t *testing.T) {
	setup, ctx := setupDB(t)
	companyID := uuid.NewString()
	empID := insertEmployee(t, ctx, setup, companyID, "Adi", string(employee.EmploymentStatusActive), nil)

	in := time.Now().Add(-20 * time.Hour).UTC().Truncate(time.Second)
	id := insertAttendance(t, ctx, setup, empID, companyID, nil, &in, nil, attendance.StatusPresent)

	repo := postgresql.NewAttendanceRepository(setup.DB)
	open, err := repo.GetOpenSessions(ctx, time.Now().Add(-12*time.Hour))
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, id, open[0].ID)

	rec := open[0]
	rec.CheckOut = timePtr(in.Add(9 * time.Hour))
	hours := 9.0
	rec.TotalHours = &hours
	rec.Status = attendance.StatusAutoClosed

	err = postgresql.WithTransaction(ctx, setup.DB, func(ctx context.Context) error {
		return repo.CloseSession(ctx, rec)
	})
	require.NoError(t, err)

	err = repo.CloseSession(ctx, rec)
	assert.ErrorIs(t, err, attendance.ErrSessionNotOpen)
}
