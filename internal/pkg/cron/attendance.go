package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("mark_absent_employees", interval, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees creates TIDAK_HADIR records for active employees with
// no attendance row for yesterday. Runs on every tick but only acts in the
// first hour of the day so each date is swept once.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := time.Now()
	if now.Hour() != 0 {
		return nil
	}

	date := now.AddDate(0, 0, -1).Truncate(24 * time.Hour)

	employeeIDs, err := j.attendanceRepo.ListAbsentEmployeeIDs(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to list absent employees: %w", err)
	}

	if len(employeeIDs) == 0 {
		return nil
	}

	slog.Info("Cron: marking absent employees", "date", date.Format("2006-01-02"), "count", len(employeeIDs))

	marked := 0
	for _, employeeID := range employeeIDs {
		_, err := j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       date,
			Status:     attendance.StatusTidakHadir,
		})
		if err != nil {
			slog.Error("Cron: failed to mark employee absent",
				"employee_id", employeeID,
				"date", date.Format("2006-01-02"),
				"error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: absent marking finished", "marked", marked, "total", len(employeeIDs))
	return nil
}
