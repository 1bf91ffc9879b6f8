package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee-day.
	// Returns nil without error when no record exists; used both to prevent
	// double check-in and to drive the correction applier's create-vs-patch
	// decision.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, att Attendance) error

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListAbsentEmployeeIDs returns active employees with no record on the
	// given date. Used by the end-of-day absent marking job.
	ListAbsentEmployeeIDs(ctx context.Context, date time.Time) ([]string, error)
}
