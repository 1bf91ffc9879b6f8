package attendance

import (
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Clock      string `json:"clock"`
	AreaName   string `json:"area_name"`
	Verified   bool   `json:"verified"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Clock) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock",
			Message: "clock is required",
		})
	} else if !validator.IsValidClock(r.Clock) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock",
			Message: "clock must look like HH:MM or HH.MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Clock      string `json:"clock"`
	Verified   bool   `json:"verified"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Clock) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock",
			Message: "clock is required",
		})
	} else if !validator.IsValidClock(r.Clock) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock",
			Message: "clock must look like HH:MM or HH.MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplyTimesRequest sets one or both clock fields for an employee-day in a
// single write, creating the record when none exists.
type ApplyTimesRequest struct {
	EmployeeID string
	Date       time.Time
	TimeIn     *string
	TimeOut    *string
	AreaName   *string
}

type AttendanceFilter struct {
	EmployeeID *string
	Date       *time.Time
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *Status
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

type AttendanceResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        *string `json:"employee_name,omitempty"`
	EmployeeRole        *string `json:"employee_role,omitempty"`
	Date                string  `json:"date"`
	CheckInClock        *string `json:"check_in_clock,omitempty"`
	CheckOutClock       *string `json:"check_out_clock,omitempty"`
	AreaName            *string `json:"area_name,omitempty"`
	CheckInVerified     bool    `json:"check_in_verified"`
	CheckOutVerified    bool    `json:"check_out_verified"`
	ShiftName           *string `json:"shift_name,omitempty"`
	LateBySeconds       *int    `json:"late_by_seconds,omitempty"`
	EarlyLeaveBySeconds *int    `json:"early_leave_by_seconds,omitempty"`
	WorkingHoursSeconds *int    `json:"working_hours_seconds,omitempty"`
	Status              string  `json:"status"`
}

func ToAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                  a.ID,
		EmployeeID:          a.EmployeeID,
		EmployeeName:        a.EmployeeName,
		EmployeeRole:        a.EmployeeRole,
		Date:                a.Date.Format("2006-01-02"),
		CheckInClock:        a.CheckInClock,
		CheckOutClock:       a.CheckOutClock,
		AreaName:            a.AreaName,
		CheckInVerified:     a.CheckInVerified,
		CheckOutVerified:    a.CheckOutVerified,
		ShiftName:           a.ShiftName,
		LateBySeconds:       a.LateBySeconds,
		EarlyLeaveBySeconds: a.EarlyLeaveBySeconds,
		WorkingHoursSeconds: a.WorkingHoursSeconds,
		Status:              string(a.Status),
	}
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}
