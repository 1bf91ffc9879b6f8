package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/attendance"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/employee"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func attKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = attKey(att.EmployeeID, att.Date)
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	att, ok := f.records[attKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if _, ok := f.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, att)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListAbsentEmployeeIDs(_ context.Context, _ time.Time) ([]string, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func newTestService() (attendance.AttendanceService, *fakeAttendanceRepo) {
	olakKemang := "Klinik Olak Kemang"
	attendanceRepo := &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1":  {ID: "emp-1", Name: "Sari", Role: "pegawai", IsActive: true},
		"dok-1":  {ID: "dok-1", Name: "dr. Ratna", Role: "dokter", IsActive: true},
		"emp-ok": {ID: "emp-ok", Name: "Putri", Role: "pegawai", IsActive: true, AreaName: &olakKemang},
		"emp-x":  {ID: "emp-x", Name: "Resigned", Role: "pegawai", IsActive: false},
	}}
	svc := &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	return svc, attendanceRepo
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func TestCheckInDerivesShiftAndLateness(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name       string
		employeeID string
		clock      string
		area       string
		wantShift  string
		wantLate   *int
		wantStatus string
	}{
		{
			name:       "on time morning",
			employeeID: "emp-1",
			clock:      "07:00",
			area:       "Klinik Kota",
			wantShift:  "PAGI",
			wantLate:   intPtr(0),
			wantStatus: "HADIR",
		},
		{
			name:       "ten minutes late morning",
			employeeID: "emp-1",
			clock:      "07:10",
			area:       "Klinik Kota",
			wantShift:  "PAGI",
			wantLate:   intPtr(600),
			wantStatus: "TERLAMBAT",
		},
		{
			name:       "doctor morning base is later",
			employeeID: "dok-1",
			clock:      "07:25",
			area:       "Klinik Kota",
			wantShift:  "PAGI",
			wantLate:   intPtr(0),
			wantStatus: "HADIR",
		},
		{
			name:       "olak kemang override beats midday window",
			employeeID: "emp-1",
			clock:      "15:00",
			area:       "Klinik Olak Kemang",
			wantShift:  "SORE_OLAK_KEMANG",
			wantLate:   intPtr(0),
			wantStatus: "HADIR",
		},
		{
			name:       "dot separated clock",
			employeeID: "emp-1",
			clock:      "13.10",
			area:       "Klinik Kota",
			wantShift:  "SIANG",
			wantLate:   intPtr(600),
			wantStatus: "TERLAMBAT",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
			resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{
				EmployeeID: tt.employeeID,
				Date:       date,
				Clock:      tt.clock,
				AreaName:   tt.area,
			})
			require.NoError(t, err)
			require.NotNil(t, resp.ShiftName)
			assert.Equal(t, tt.wantShift, *resp.ShiftName)
			assert.Equal(t, tt.wantLate, resp.LateBySeconds)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.clock, *resp.CheckInClock)
		})
	}
}

func TestCheckInOutsideAnyWindowIsInvalidButStored(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		EmployeeID: "emp-1",
		Date:       "2026-08-20",
		Clock:      "20:00",
		AreaName:   "Klinik Kota",
	})
	require.NoError(t, err)

	assert.Equal(t, "TIDAK_VALID", resp.Status)
	assert.Nil(t, resp.ShiftName)
	assert.Nil(t, resp.LateBySeconds)
	// The raw text is kept even when nothing can be derived from it.
	assert.Equal(t, "20:00", *resp.CheckInClock)
}

func TestCheckInGuards(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		EmployeeID: "emp-x",
		Date:       "2026-08-20",
		Clock:      "07:00",
		AreaName:   "Klinik Kota",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{
		EmployeeID: "ghost",
		Date:       "2026-08-20",
		Clock:      "07:00",
		AreaName:   "Klinik Kota",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{
		EmployeeID: "emp-1",
		Date:       "2026-08-20",
		Clock:      "07:00",
		AreaName:   "Klinik Kota",
	})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{
		EmployeeID: "emp-1",
		Date:       "2026-08-20",
		Clock:      "07:05",
		AreaName:   "Klinik Kota",
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOutDerivesWorkingHoursAndEarlyLeave(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		EmployeeID: "emp-1",
		Date:       "2026-08-21",
		Clock:      "07:00",
		AreaName:   "Klinik Kota",
	})
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{
		EmployeeID: "emp-1",
		Date:       "2026-08-21",
		Clock:      "15:00",
	})
	require.NoError(t, err)

	// 07:00 to 15:00 is 8 hours of work; shift base 07:00 plus the 9 hour
	// working day means leaving at 15:00 is one hour early.
	require.NotNil(t, resp.WorkingHoursSeconds)
	assert.Equal(t, 8*3600, *resp.WorkingHoursSeconds)
	require.NotNil(t, resp.EarlyLeaveBySeconds)
	assert.Equal(t, 3600, *resp.EarlyLeaveBySeconds)

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{
		EmployeeID: "emp-1",
		Date:       "2026-08-21",
		Clock:      "16:00",
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: "emp-1",
		Date:       "2026-08-22",
		Clock:      "16:00",
	})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckInFillsAbsentPlaceholder(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	date := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       date,
		Status:     attendance.StatusTidakHadir,
	})
	require.NoError(t, err)

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		EmployeeID: "emp-1",
		Date:       "2026-08-23",
		Clock:      "07:00",
		AreaName:   "Klinik Kota",
	})
	require.NoError(t, err)
	assert.Equal(t, "HADIR", resp.Status)

	stored, err := repo.GetByEmployeeAndDate(ctx, "emp-1", date)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHadir, stored.Status)
}

func TestApplyTimesCreatesWhenNoRecordExists(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	date := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	resp, err := svc.ApplyTimes(ctx, attendance.ApplyTimesRequest{
		EmployeeID: "emp-1",
		Date:       date,
		TimeIn:     strPtr("07:00"),
		TimeOut:    strPtr("16:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "HADIR", resp.Status)
	require.NotNil(t, resp.WorkingHoursSeconds)
	assert.Equal(t, 9*3600, *resp.WorkingHoursSeconds)

	stored, err := repo.GetByEmployeeAndDate(ctx, "emp-1", date)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "07:00", *stored.CheckInClock)
	assert.Equal(t, "16:00", *stored.CheckOutClock)
}

func TestApplyTimesPatchesOnlyProvidedFields(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID:    "emp-1",
		Date:          date,
		CheckInClock:  strPtr("08:30"),
		CheckOutClock: strPtr("16:00"),
		AreaName:      strPtr("Klinik Kota"),
		Status:        attendance.StatusTerlambat,
	})
	require.NoError(t, err)

	resp, err := svc.ApplyTimes(ctx, attendance.ApplyTimesRequest{
		EmployeeID: "emp-1",
		Date:       date,
		TimeIn:     strPtr("07:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "HADIR", resp.Status)

	stored, err := repo.GetByEmployeeAndDate(ctx, "emp-1", date)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "07:00", *stored.CheckInClock)
	// The check-out the devices recorded survives a check-in-only patch.
	require.NotNil(t, stored.CheckOutClock)
	assert.Equal(t, "16:00", *stored.CheckOutClock)
	assert.Equal(t, "Klinik Kota", *stored.AreaName)

	resp, err = svc.ApplyTimes(ctx, attendance.ApplyTimesRequest{
		EmployeeID: "emp-1",
		Date:       date,
		TimeOut:    strPtr("17:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckInClock)
	assert.Equal(t, "07:00", *resp.CheckInClock)
	assert.Equal(t, "17:00", *resp.CheckOutClock)
}

func TestApplyTimesGuards(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	date := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	_, err := svc.ApplyTimes(ctx, attendance.ApplyTimesRequest{Date: date, TimeIn: strPtr("07:00")})
	assert.Error(t, err)

	_, err = svc.ApplyTimes(ctx, attendance.ApplyTimesRequest{EmployeeID: "emp-1", Date: date})
	assert.Error(t, err)

	_, err = svc.ApplyTimes(ctx, attendance.ApplyTimesRequest{EmployeeID: "ghost", Date: date, TimeIn: strPtr("07:00")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApplyTimesFallsBackToHomeArea(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// A created record without a requested location classifies against the
	// employee's home area, so the Olak Kemang afternoon window still applies.
	date := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	resp, err := svc.ApplyTimes(ctx, attendance.ApplyTimesRequest{
		EmployeeID: "emp-ok",
		Date:       date,
		TimeIn:     strPtr("15:30"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ShiftName)
	assert.Equal(t, "SORE_OLAK_KEMANG", *resp.ShiftName)
	assert.Equal(t, "TERLAMBAT", resp.Status)

	stored, err := repo.GetByEmployeeAndDate(ctx, "emp-ok", date)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.AreaName)
	assert.Equal(t, "Klinik Olak Kemang", *stored.AreaName)
}
