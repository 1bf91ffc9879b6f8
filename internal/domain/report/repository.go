package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// ListAttendanceRows returns the raw employee-day rows in [start, end],
	// joined with employee name/role/area. The fold over these rows happens
	// in the service; nothing is precomputed in SQL.
	ListAttendanceRows(ctx context.Context, start, end time.Time) ([]AttendanceRow, error)
}
