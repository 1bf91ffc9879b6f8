package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("employee has already checked in today")
	ErrNotCheckedIn       = errors.New("employee has not checked in yet")
	ErrAlreadyCheckedOut  = errors.New("employee has already checked out")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
