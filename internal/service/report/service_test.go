package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/report"
)

type fakeReportRepo struct {
	rows []report.AttendanceRow
}

func (f *fakeReportRepo) ListAttendanceRows(_ context.Context, _, _ time.Time) ([]report.AttendanceRow, error) {
	return f.rows, nil
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func strPtr(s string) *string { return &s }

func TestDisciplineReportAverageIsTruncated(t *testing.T) {
	// Scores 100, 70, 0 over three days: raw average 56.666..., reported
	// as 56.66, never 56.67.
	repo := &fakeReportRepo{rows: []report.AttendanceRow{
		{EmployeeID: "emp-1", EmployeeName: "Sari", EmployeeRole: "pegawai", DailyRate: 150000, Date: day("2026-08-03"), CheckInClock: strPtr("07:00"), Status: "HADIR"},
		{EmployeeID: "emp-1", EmployeeName: "Sari", EmployeeRole: "pegawai", DailyRate: 150000, Date: day("2026-08-04"), CheckInClock: strPtr("07:30"), Status: "TERLAMBAT"},
		{EmployeeID: "emp-1", EmployeeName: "Sari", EmployeeRole: "pegawai", DailyRate: 150000, Date: day("2026-08-05"), CheckInClock: nil, Status: "TIDAK_HADIR"},
	}}
	svc := NewReportService(repo, nil, 0)

	resp, err := svc.DisciplineReport(context.Background(), report.DisciplineReportRequest{
		StartDate: "2026-08-03",
		EndDate:   "2026-08-05",
	})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)

	emp := resp.Employees[0]
	assert.Equal(t, 3, emp.Days)
	assert.Equal(t, 170, emp.TotalScore)
	assert.Equal(t, 56.66, emp.AverageScore)
	assert.Equal(t, 1, emp.LateDays)
	assert.Equal(t, 1, emp.ZeroDays)
	assert.Equal(t, int64(150000), emp.DailyRate)
}

func TestDisciplineReportDoctorBaseAndOverride(t *testing.T) {
	repo := &fakeReportRepo{rows: []report.AttendanceRow{
		// Doctor at Olak Kemang, 15:40 check-in: base 15:30, 10 minutes late.
		{EmployeeID: "dok-1", EmployeeName: "dr. Ratna", EmployeeRole: "dokter", AreaName: strPtr("Klinik Olak Kemang"), Date: day("2026-08-03"), CheckInClock: strPtr("15:40"), Status: "TERLAMBAT"},
		// Non-doctor elsewhere in the midday window, on time.
		{EmployeeID: "emp-2", EmployeeName: "Budi", EmployeeRole: "pegawai", AreaName: strPtr("Klinik Kota"), Date: day("2026-08-03"), CheckInClock: strPtr("12:30"), Status: "HADIR"},
	}}
	svc := NewReportService(repo, nil, 0)

	resp, err := svc.DisciplineReport(context.Background(), report.DisciplineReportRequest{
		StartDate: "2026-08-03",
		EndDate:   "2026-08-03",
	})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 2)

	doctor := resp.Employees[0]
	require.Len(t, doctor.Rows, 1)
	require.NotNil(t, doctor.Rows[0].ShiftName)
	assert.Equal(t, "SORE_OLAK_KEMANG", *doctor.Rows[0].ShiftName)
	assert.Equal(t, 90, doctor.Rows[0].Score)

	staff := resp.Employees[1]
	require.Len(t, staff.Rows, 1)
	assert.Equal(t, "SIANG", *staff.Rows[0].ShiftName)
	assert.Equal(t, 100, staff.Rows[0].Score)
}

func TestDisciplineReportUnparseableDayScoresZero(t *testing.T) {
	repo := &fakeReportRepo{rows: []report.AttendanceRow{
		{EmployeeID: "emp-1", EmployeeName: "Sari", EmployeeRole: "pegawai", Date: day("2026-08-03"), CheckInClock: strPtr("-"), Status: "TIDAK_VALID"},
		{EmployeeID: "emp-1", EmployeeName: "Sari", EmployeeRole: "pegawai", Date: day("2026-08-04"), CheckInClock: strPtr("banana"), Status: "TIDAK_VALID"},
		// Check-in outside every shift window also scores zero.
		{EmployeeID: "emp-1", EmployeeName: "Sari", EmployeeRole: "pegawai", Date: day("2026-08-05"), CheckInClock: strPtr("20:00"), Status: "TIDAK_VALID"},
	}}
	svc := NewReportService(repo, nil, 0)

	resp, err := svc.DisciplineReport(context.Background(), report.DisciplineReportRequest{
		StartDate: "2026-08-03",
		EndDate:   "2026-08-05",
	})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)

	emp := resp.Employees[0]
	assert.Equal(t, 0, emp.TotalScore)
	assert.Equal(t, 0.0, emp.AverageScore)
	assert.Equal(t, 3, emp.ZeroDays)
	for _, row := range emp.Rows {
		assert.Equal(t, 0, row.Score)
		assert.Nil(t, row.ShiftName)
	}
}

func TestDisciplineReportValidation(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, nil, 0)
	ctx := context.Background()

	_, err := svc.DisciplineReport(ctx, report.DisciplineReportRequest{StartDate: "2026-08-05", EndDate: "2026-08-01"})
	assert.Error(t, err)

	_, err = svc.DisciplineReport(ctx, report.DisciplineReportRequest{StartDate: "not-a-date", EndDate: "2026-08-01"})
	assert.Error(t, err)

	_, err = svc.DisciplineReport(ctx, report.DisciplineReportRequest{})
	assert.Error(t, err)
}
