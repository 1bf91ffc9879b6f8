package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/overtime"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	o.id, o.employee_id, o.date, o.start_time, o.end_time, o.reason,
	o.status, o.reviewer_id, o.reviewer_note, o.reviewed_at,
	o.created_at, o.updated_at`

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, req overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query := `
		INSERT INTO overtime_requests (
			id, employee_id, date, start_time, end_time, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Date,
		req.StartTime,
		req.EndTime,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return req, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.name AS employee_name
		FROM overtime_requests o
		LEFT JOIN employees e ON e.id = o.employee_id
		WHERE o.id = $1
	`, overtimeColumns)

	var req overtime.OvertimeRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime, &req.Reason,
		&req.Status, &req.ReviewerID, &req.ReviewerNote, &req.ReviewedAt,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return req, nil
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepository) List(ctx context.Context, filter overtime.OvertimeFilter) ([]overtime.OvertimeRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND o.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND o.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil {
		baseWhere += fmt.Sprintf(" AND o.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		baseWhere += fmt.Sprintf(" AND o.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM overtime_requests o WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime requests: %w", err)
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
		SELECT %s, e.name AS employee_name
		FROM overtime_requests o
		LEFT JOIN employees e ON e.id = o.employee_id
		WHERE %s
		ORDER BY o.created_at DESC
		LIMIT $%d OFFSET $%d
	`, overtimeColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		var req overtime.OvertimeRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime, &req.Reason,
			&req.Status, &req.ReviewerID, &req.ReviewerNote, &req.ReviewedAt,
			&req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, total, rows.Err()
}

// Update implements overtime.OvertimeRepository.
func (r *overtimeRepository) Update(ctx context.Context, req overtime.OvertimeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests SET
			status = $1,
			reviewer_id = $2,
			reviewer_note = $3,
			reviewed_at = $4,
			updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		req.Status,
		req.ReviewerID,
		req.ReviewerNote,
		req.ReviewedAt,
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}

// CountByStatus implements overtime.OvertimeRepository.
func (r *overtimeRepository) CountByStatus(ctx context.Context, status overtime.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM overtime_requests WHERE status = $1`, status).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count overtime requests: %w", err)
	}

	return total, nil
}
