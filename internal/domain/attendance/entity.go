package attendance

import (
	"time"
)

type Status string

const (
	StatusHadir      Status = "HADIR"
	StatusTerlambat  Status = "TERLAMBAT"
	StatusTidakHadir Status = "TIDAK_HADIR"
	StatusTidakValid Status = "TIDAK_VALID"
)

// Attendance is one employee-day. Clock fields hold the raw text the devices
// submit ("07:15", "16.05.30", "-"); everything below ShiftName is derived
// from them and recomputed on every clock change.
type Attendance struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	CheckInClock     *string
	CheckOutClock    *string
	AreaName         *string
	CheckInVerified  bool
	CheckOutVerified bool

	ShiftName           *string
	LateBySeconds       *int
	EarlyLeaveBySeconds *int
	WorkingHoursSeconds *int
	Status              Status

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeRole *string
}
