package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/attendance"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/employee"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/database"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/discipline"
	"github.com/klinikmedika/absensi-backend-go/internal/repository/postgresql"
)

// scheduledShiftHours is how long after shift base the working day is assumed
// to end when computing early-leave.
const scheduledShiftHours = 9

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository

	// runInTx wraps a function in a database transaction.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// derive recomputes every derived field from the clock texts. Unparseable or
// unclassifiable check-ins leave the record TIDAK_VALID rather than erroring;
// the raw text is always kept as submitted.
func derive(att *attendance.Attendance, role string) {
	att.ShiftName = nil
	att.LateBySeconds = nil
	att.EarlyLeaveBySeconds = nil
	att.WorkingHoursSeconds = nil

	if att.CheckInClock == nil {
		if att.Status != attendance.StatusTidakHadir {
			att.Status = attendance.StatusTidakValid
		}
		return
	}

	areaName := ""
	if att.AreaName != nil {
		areaName = *att.AreaName
	}

	checkIn, ok := discipline.ParseTimeToMinutes(*att.CheckInClock)
	if !ok {
		att.Status = attendance.StatusTidakValid
		return
	}

	base, shiftName, ok := discipline.ClassifyShift(checkIn, role, areaName)
	if !ok {
		att.Status = attendance.StatusTidakValid
		return
	}

	att.ShiftName = &shiftName

	late := 0
	if checkIn > base {
		late = (checkIn - base) * 60
	}
	att.LateBySeconds = &late

	if late > 0 {
		att.Status = attendance.StatusTerlambat
	} else {
		att.Status = attendance.StatusHadir
	}

	if att.CheckOutClock == nil {
		return
	}
	checkOut, ok := discipline.ParseTimeToMinutes(*att.CheckOutClock)
	if !ok {
		return
	}

	working := 0
	if checkOut > checkIn {
		working = (checkOut - checkIn) * 60
	}
	att.WorkingHoursSeconds = &working

	scheduledEnd := base + scheduledShiftHours*60
	earlyLeave := 0
	if checkOut < scheduledEnd {
		earlyLeave = (scheduledEnd - checkOut) * 60
	}
	att.EarlyLeaveBySeconds = &earlyLeave
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up attendance: %w", err)
	}

	if existing != nil && existing.CheckInClock != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	clock := req.Clock
	areaName := req.AreaName

	if existing != nil {
		// A TIDAK_HADIR placeholder from the absent sweep; fill it in.
		existing.CheckInClock = &clock
		existing.AreaName = &areaName
		existing.CheckInVerified = req.Verified
		existing.Status = attendance.StatusHadir
		derive(existing, emp.Role)
		if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.ToAttendanceResponse(*existing), nil
	}

	att := attendance.Attendance{
		EmployeeID:      req.EmployeeID,
		Date:            date,
		CheckInClock:    &clock,
		AreaName:        &areaName,
		CheckInVerified: req.Verified,
	}
	derive(&att, emp.Role)

	created, err := a.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up attendance: %w", err)
	}
	if existing == nil || existing.CheckInClock == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOutClock != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	clock := req.Clock
	existing.CheckOutClock = &clock
	existing.CheckOutVerified = req.Verified
	derive(existing, emp.Role)

	if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToAttendanceResponse(*existing), nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToAttendanceResponse(att), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.ToAttendanceResponse(att))
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	return attendance.ListAttendanceResponse{
		Attendances: responses,
		Total:       total,
		Page:        page,
		Limit:       limit,
	}, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	return a.AttendanceRepository.Delete(ctx, id)
}

// ApplyTimes implements attendance.AttendanceService. Both clock fields land
// in one write; there is no intermediate state where only half the patch is
// visible.
func (a *AttendanceServiceImpl) ApplyTimes(ctx context.Context, req attendance.ApplyTimesRequest) (attendance.AttendanceResponse, error) {
	if req.EmployeeID == "" {
		return attendance.AttendanceResponse{}, fmt.Errorf("employee id is required")
	}
	if req.TimeIn == nil && req.TimeOut == nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("at least one clock time is required")
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Corrections rarely carry a location, so classification falls back to
	// the employee's home area when the request leaves it out.
	areaName := req.AreaName
	if areaName == nil {
		areaName = emp.AreaName
	}

	var result attendance.Attendance
	err = a.runInTx(ctx, func(txCtx context.Context) error {
		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(txCtx, req.EmployeeID, req.Date)
		if err != nil {
			return fmt.Errorf("failed to look up attendance: %w", err)
		}

		if existing == nil {
			att := attendance.Attendance{
				EmployeeID:    req.EmployeeID,
				Date:          req.Date,
				CheckInClock:  req.TimeIn,
				CheckOutClock: req.TimeOut,
				AreaName:      areaName,
			}
			derive(&att, emp.Role)
			created, err := a.AttendanceRepository.Create(txCtx, att)
			if err != nil {
				return err
			}
			result = created
			return nil
		}

		if req.TimeIn != nil {
			existing.CheckInClock = req.TimeIn
		}
		if req.TimeOut != nil {
			existing.CheckOutClock = req.TimeOut
		}
		if req.AreaName != nil {
			existing.AreaName = req.AreaName
		} else if existing.AreaName == nil {
			existing.AreaName = areaName
		}
		derive(existing, emp.Role)
		if err := a.AttendanceRepository.Update(txCtx, *existing); err != nil {
			return err
		}
		result = *existing
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToAttendanceResponse(result), nil
}
