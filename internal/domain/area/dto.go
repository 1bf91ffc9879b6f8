package area

import (
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/validator"
)

type CreateAreaRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

func (r *CreateAreaRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAreaRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateAreaRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AreaResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	IsActive bool    `json:"is_active"`
}

func ToAreaResponse(a Area) AreaResponse {
	return AreaResponse{
		ID:       a.ID,
		Name:     a.Name,
		Address:  a.Address,
		IsActive: a.IsActive,
	}
}
