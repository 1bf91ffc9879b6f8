package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn records the day's check-in and derives shift, lateness and
	// status from the submitted clock text.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the day's record and derives working hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// DeleteAttendance removes an attendance record (admin)
	DeleteAttendance(ctx context.Context, id string) error

	// ApplyTimes writes one or both clock fields atomically, creating the
	// employee-day record when none exists. This is the entry point the
	// correction applier uses.
	ApplyTimes(ctx context.Context, req ApplyTimesRequest) (AttendanceResponse, error)
}
