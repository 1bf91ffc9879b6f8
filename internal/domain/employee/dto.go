package employee

import (
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	AreaID    *string `json:"area_id,omitempty"`
	DailyRate int64   `json:"daily_rate"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if r.DailyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "daily_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	Role      *string `json:"role,omitempty"`
	AreaID    *string `json:"area_id,omitempty"`
	DailyRate *int64  `json:"daily_rate,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Role != nil && validator.IsEmpty(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must not be empty",
		})
	}

	if r.DailyRate != nil && *r.DailyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "daily_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Name     *string
	Role     *string
	AreaID   *string
	IsActive *bool
	Page     int
	Limit    int
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	AreaID    *string `json:"area_id,omitempty"`
	AreaName  *string `json:"area_name,omitempty"`
	DailyRate int64   `json:"daily_rate"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		AreaID:    e.AreaID,
		AreaName:  e.AreaName,
		DailyRate: e.DailyRate,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}
