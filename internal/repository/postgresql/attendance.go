package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/attendance"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.check_in_clock, a.check_out_clock, a.area_name,
	a.check_in_verified, a.check_out_verified,
	a.shift_name, a.late_by_seconds, a.early_leave_by_seconds, a.working_hours_seconds,
	a.status, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, att *attendance.Attendance) error {
	return row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckInClock, &att.CheckOutClock, &att.AreaName,
		&att.CheckInVerified, &att.CheckOutVerified,
		&att.ShiftName, &att.LateBySeconds, &att.EarlyLeaveBySeconds, &att.WorkingHoursSeconds,
		&att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (
			id, employee_id, date,
			check_in_clock, check_out_clock, area_name,
			check_in_verified, check_out_verified,
			shift_name, late_by_seconds, early_leave_by_seconds, working_hours_seconds,
			status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Date,
		att.CheckInClock,
		att.CheckOutClock,
		att.AreaName,
		att.CheckInVerified,
		att.CheckOutVerified,
		att.ShiftName,
		att.LateBySeconds,
		att.EarlyLeaveBySeconds,
		att.WorkingHoursSeconds,
		att.Status,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		SELECT %s, e.name AS employee_name, e.role AS employee_role
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`, attendanceColumns)

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckInClock, &att.CheckOutClock, &att.AreaName,
		&att.CheckInVerified, &att.CheckOutVerified,
		&att.ShiftName, &att.LateBySeconds, &att.EarlyLeaveBySeconds, &att.WorkingHoursSeconds,
		&att.Status, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeeRole,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`, attendanceColumns)

	var att attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), &att)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			check_in_clock = $1,
			check_out_clock = $2,
			area_name = $3,
			check_in_verified = $4,
			check_out_verified = $5,
			shift_name = $6,
			late_by_seconds = $7,
			early_leave_by_seconds = $8,
			working_hours_seconds = $9,
			status = $10,
			updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		att.CheckInClock,
		att.CheckOutClock,
		att.AreaName,
		att.CheckInVerified,
		att.CheckOutVerified,
		att.ShiftName,
		att.LateBySeconds,
		att.EarlyLeaveBySeconds,
		att.WorkingHoursSeconds,
		att.Status,
		att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Date != nil {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	orderByField := "a.date"
	switch filter.SortBy {
	case "check_in_clock":
		orderByField = "a.check_in_clock"
	case "status":
		orderByField = "a.status"
	case "created_at":
		orderByField = "a.created_at"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, e.name AS employee_name, e.role AS employee_role
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date,
			&att.CheckInClock, &att.CheckOutClock, &att.AreaName,
			&att.CheckInVerified, &att.CheckOutVerified,
			&att.ShiftName, &att.LateBySeconds, &att.EarlyLeaveBySeconds, &att.WorkingHoursSeconds,
			&att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeeRole,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, rows.Err()
}

// ListAbsentEmployeeIDs implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListAbsentEmployeeIDs(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT e.id
		FROM employees e
		WHERE e.is_active = TRUE
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = e.id AND a.date = $1
		  )
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list absent employees: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
