package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/correction"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/database"
)

type correctionRepository struct {
	db *database.DB
}

func NewCorrectionRepository(db *database.DB) correction.CorrectionRepository {
	return &correctionRepository{db: db}
}

const correctionColumns = `
	c.id, c.employee_id, c.date, c.type, c.subtype,
	c.requested_time_in, c.requested_time_out, c.reason,
	c.status, c.reviewer_id, c.reviewer_note, c.reviewed_at,
	c.created_at, c.updated_at`

// Create implements correction.CorrectionRepository.
func (r *correctionRepository) Create(ctx context.Context, req correction.CorrectionRequest) (correction.CorrectionRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query := `
		INSERT INTO correction_requests (
			id, employee_id, date, type, subtype,
			requested_time_in, requested_time_out, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Date,
		req.Type,
		req.Subtype,
		req.RequestedTimeIn,
		req.RequestedTimeOut,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return correction.CorrectionRequest{}, fmt.Errorf("failed to create correction request: %w", err)
	}

	return req, nil
}

// GetByID implements correction.CorrectionRepository.
func (r *correctionRepository) GetByID(ctx context.Context, id string) (correction.CorrectionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.name AS employee_name
		FROM correction_requests c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1
	`, correctionColumns)

	var req correction.CorrectionRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.Type, &req.Subtype,
		&req.RequestedTimeIn, &req.RequestedTimeOut, &req.Reason,
		&req.Status, &req.ReviewerID, &req.ReviewerNote, &req.ReviewedAt,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return correction.CorrectionRequest{}, correction.ErrCorrectionNotFound
		}
		return correction.CorrectionRequest{}, fmt.Errorf("failed to get correction request: %w", err)
	}

	return req, nil
}

// List implements correction.CorrectionRepository.
func (r *correctionRepository) List(ctx context.Context, filter correction.CorrectionFilter) ([]correction.CorrectionRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND c.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND c.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND c.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.StartDate != nil {
		baseWhere += fmt.Sprintf(" AND c.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		baseWhere += fmt.Sprintf(" AND c.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM correction_requests c WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count correction requests: %w", err)
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
		FROM correction_requests c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE %s
		ORDER BY c.created_at DESC
		LIMIT $%d OFFSET $%d
	`, correctionColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list correction requests: %w", err)
	}
	defer rows.Close()

	var requests []correction.CorrectionRequest
	for rows.Next() {
		var req correction.CorrectionRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.Type, &req.Subtype,
			&req.RequestedTimeIn, &req.RequestedTimeOut, &req.Reason,
			&req.Status, &req.ReviewerID, &req.ReviewerNote, &req.ReviewedAt,
			&req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan correction request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, total, rows.Err()
}

// Update implements correction.CorrectionRepository.
func (r *correctionRepository) Update(ctx context.Context, req correction.CorrectionRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE correction_requests SET
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
		return fmt.Errorf("failed to update correction request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return correction.ErrCorrectionNotFound
	}

	return nil
}

// CountByStatus implements correction.CorrectionRepository.
func (r *correctionRepository) CountByStatus(ctx context.Context, status correction.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM correction_requests WHERE status = $1`, status).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count correction requests: %w", err)
	}

	return total, nil
}
