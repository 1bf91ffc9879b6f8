package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/report"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// ListAttendanceRows implements report.ReportRepository.
func (r *reportRepository) ListAttendanceRows(ctx context.Context, start, end time.Time) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	// Scoring classifies by where the employee actually clocked in, so the
	// row's recorded area wins over the home area.
	query := `
		SELECT e.id, e.name, e.role, COALESCE(a.area_name, ar.name) AS area_name, e.daily_rate,
			   a.date, a.check_in_clock, a.status
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		LEFT JOIN areas ar ON ar.id = e.area_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY e.name ASC, a.date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query report rows: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceRow
	for rows.Next() {
		var row report.AttendanceRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.EmployeeRole, &row.AreaName, &row.DailyRate,
			&row.Date, &row.CheckInClock, &row.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
