package dashboard

import (
	"context"
	"time"
)

// AttendanceCounts is today's headcount split by attendance status.
type AttendanceCounts struct {
	Present int64
	Late    int64
	Absent  int64
}

type DashboardRepository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountAttendanceByStatus(ctx context.Context, date time.Time) (AttendanceCounts, error)
}
