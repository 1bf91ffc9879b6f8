package correction

import (
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/pkg/validator"
)

type CreateCorrectionRequest struct {
	EmployeeID       string  `json:"employee_id"`
	Date             string  `json:"date"`
	Type             string  `json:"type"`
	Subtype          *string `json:"subtype,omitempty"`
	RequestedTimeIn  *string `json:"requested_time_in,omitempty"`
	RequestedTimeOut *string `json:"requested_time_out,omitempty"`
	Reason           string  `json:"reason"`
}

func (r *CreateCorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	switch Type(r.Type) {
	case TypeLupaAbsen:
		if r.RequestedTimeIn == nil || validator.IsEmpty(*r.RequestedTimeIn) {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_time_in",
				Message: "requested_time_in is required for LUPA_ABSEN",
			})
		}
		if r.Subtype != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "subtype",
				Message: "subtype only applies to KOREKSI_JAM",
			})
		}
	case TypeKoreksiJam:
		if r.RequestedTimeIn == nil && r.RequestedTimeOut == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_time_in",
				Message: "KOREKSI_JAM needs at least one requested time",
			})
		}
		if r.Subtype != nil {
			valid := []string{string(SubtypeCheckIn), string(SubtypeCheckOut), string(SubtypeBoth)}
			if !validator.IsInSlice(*r.Subtype, valid) {
				errs = append(errs, validator.ValidationError{
					Field:   "subtype",
					Message: "subtype must be CHECKIN, CHECKOUT or BOTH",
				})
			}
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be LUPA_ABSEN or KOREKSI_JAM",
		})
	}

	if r.RequestedTimeIn != nil && !validator.IsEmpty(*r.RequestedTimeIn) && !validator.IsValidClock(*r.RequestedTimeIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_time_in",
			Message: "requested_time_in must look like HH:MM or HH.MM",
		})
	}

	if r.RequestedTimeOut != nil && !validator.IsEmpty(*r.RequestedTimeOut) && !validator.IsValidClock(*r.RequestedTimeOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_time_out",
			Message: "requested_time_out must look like HH:MM or HH.MM",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReviewAction is the reviewer's decision on a submitted request.
type ReviewAction string

const (
	ActionApprove       ReviewAction = "APPROVE"
	ActionReject        ReviewAction = "REJECT"
	ActionNeedsRevision ReviewAction = "NEEDS_REVISION"
)

type ReviewCorrectionRequest struct {
	ID         string  `json:"-"`
	ReviewerID string  `json:"-"`
	Action     string  `json:"action"`
	Note       *string `json:"note,omitempty"`
}

func (r *ReviewCorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	valid := []string{string(ActionApprove), string(ActionReject), string(ActionNeedsRevision)}
	if !validator.IsInSlice(r.Action, valid) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be APPROVE, REJECT or NEEDS_REVISION",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CorrectionFilter struct {
	EmployeeID *string
	Status     *Status
	Type       *Type
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

// PatchResult reports whether approving a request actually landed on the
// attendance record. It is advisory: the request status stands either way.
type PatchResult struct {
	Applied bool   `json:"applied"`
	Message string `json:"message,omitempty"`
}

type CorrectionResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Date             string  `json:"date"`
	Type             string  `json:"type"`
	Subtype          *string `json:"subtype,omitempty"`
	RequestedTimeIn  *string `json:"requested_time_in,omitempty"`
	RequestedTimeOut *string `json:"requested_time_out,omitempty"`
	Reason           string  `json:"reason"`
	Status           string  `json:"status"`
	ReviewerID       *string `json:"reviewer_id,omitempty"`
	ReviewerNote     *string `json:"reviewer_note,omitempty"`
	ReviewedAt       *string `json:"reviewed_at,omitempty"`
	CreatedAt        string  `json:"created_at"`

	// Only set on approval responses.
	PatchResult *PatchResult `json:"patch_result,omitempty"`
}

func ToCorrectionResponse(c CorrectionRequest) CorrectionResponse {
	resp := CorrectionResponse{
		ID:               c.ID,
		EmployeeID:       c.EmployeeID,
		EmployeeName:     c.EmployeeName,
		Date:             c.Date.Format("2006-01-02"),
		Type:             string(c.Type),
		RequestedTimeIn:  c.RequestedTimeIn,
		RequestedTimeOut: c.RequestedTimeOut,
		Reason:           c.Reason,
		Status:           string(c.Status),
		ReviewerID:       c.ReviewerID,
		ReviewerNote:     c.ReviewerNote,
		CreatedAt:        c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if c.Subtype != nil {
		s := string(*c.Subtype)
		resp.Subtype = &s
	}
	if c.ReviewedAt != nil {
		t := c.ReviewedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ReviewedAt = &t
	}
	return resp
}

type ListCorrectionResponse struct {
	Corrections []CorrectionResponse `json:"corrections"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}
