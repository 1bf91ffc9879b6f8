package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/attendance"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/dashboard"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = TRUE`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return total, nil
}

// CountAttendanceByStatus implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountAttendanceByStatus(ctx context.Context, date time.Time) (dashboard.AttendanceCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4)
		FROM attendances
		WHERE date = $1
	`

	var counts dashboard.AttendanceCounts
	err := q.QueryRow(ctx, query, date,
		attendance.StatusHadir,
		attendance.StatusTerlambat,
		attendance.StatusTidakHadir,
	).Scan(&counts.Present, &counts.Late, &counts.Absent)
	if err != nil {
		return dashboard.AttendanceCounts{}, fmt.Errorf("failed to count attendances by status: %w", err)
	}

	return counts, nil
}
