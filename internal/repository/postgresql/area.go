package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/area"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/database"
)

type areaRepository struct {
	db *database.DB
}

func NewAreaRepository(db *database.DB) area.AreaRepository {
	return &areaRepository{db: db}
}

// Create implements area.AreaRepository.
func (r *areaRepository) Create(ctx context.Context, a area.Area) (area.Area, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO areas (id, name, address, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.Name, a.Address, a.IsActive).
		Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return area.Area{}, fmt.Errorf("failed to create area: %w", err)
	}

	return a, nil
}

// GetByID implements area.AreaRepository.
func (r *areaRepository) GetByID(ctx context.Context, id string) (area.Area, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, is_active, created_at, updated_at
		FROM areas
		WHERE id = $1
	`

	var a area.Area
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Address, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return area.Area{}, area.ErrAreaNotFound
		}
		return area.Area{}, fmt.Errorf("failed to get area: %w", err)
	}

	return a, nil
}

// GetByName implements area.AreaRepository.
func (r *areaRepository) GetByName(ctx context.Context, name string) (area.Area, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, is_active, created_at, updated_at
		FROM areas
		WHERE LOWER(name) = LOWER($1)
	`

	var a area.Area
	err := q.QueryRow(ctx, query, name).Scan(
		&a.ID, &a.Name, &a.Address, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return area.Area{}, area.ErrAreaNotFound
		}
		return area.Area{}, fmt.Errorf("failed to get area by name: %w", err)
	}

	return a, nil
}

// List implements area.AreaRepository.
func (r *areaRepository) List(ctx context.Context) ([]area.Area, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, is_active, created_at, updated_at
		FROM areas
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	defer rows.Close()

	var areas []area.Area
	for rows.Next() {
		var a area.Area
		if err := rows.Scan(&a.ID, &a.Name, &a.Address, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan area: %w", err)
		}
		areas = append(areas, a)
	}

	return areas, rows.Err()
}

// Update implements area.AreaRepository.
func (r *areaRepository) Update(ctx context.Context, a area.Area) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE areas SET
			name = $1,
			address = $2,
			is_active = $3,
			updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, a.Name, a.Address, a.IsActive, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update area: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return area.ErrAreaNotFound
	}

	return nil
}

// Delete implements area.AreaRepository.
func (r *areaRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return area.ErrAreaNotFound
	}

	return nil
}
