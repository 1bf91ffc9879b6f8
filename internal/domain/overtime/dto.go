package overtime

import (
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/pkg/validator"
)

type CreateOvertimeRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Reason     string `json:"reason"`
}

func (r *CreateOvertimeRequest) Validate() error {
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

	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must look like HH:MM or HH.MM",
		})
	}

	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must look like HH:MM or HH.MM",
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

type ReviewAction string

const (
	ActionApprove ReviewAction = "APPROVE"
	ActionReject  ReviewAction = "REJECT"
)

type ReviewOvertimeRequest struct {
	ID         string  `json:"-"`
	ReviewerID string  `json:"-"`
	Action     string  `json:"action"`
	Note       *string `json:"note,omitempty"`
}

func (r *ReviewOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	valid := []string{string(ActionApprove), string(ActionReject)}
	if !validator.IsInSlice(r.Action, valid) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be APPROVE or REJECT",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OvertimeFilter struct {
	EmployeeID *string
	Status     *Status
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

type OvertimeResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ReviewerID   *string `json:"reviewer_id,omitempty"`
	ReviewerNote *string `json:"reviewer_note,omitempty"`
	ReviewedAt   *string `json:"reviewed_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func ToOvertimeResponse(o OvertimeRequest) OvertimeResponse {
	resp := OvertimeResponse{
		ID:           o.ID,
		EmployeeID:   o.EmployeeID,
		EmployeeName: o.EmployeeName,
		Date:         o.Date.Format("2006-01-02"),
		StartTime:    o.StartTime,
		EndTime:      o.EndTime,
		Reason:       o.Reason,
		Status:       string(o.Status),
		ReviewerID:   o.ReviewerID,
		ReviewerNote: o.ReviewerNote,
		CreatedAt:    o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if o.ReviewedAt != nil {
		t := o.ReviewedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ReviewedAt = &t
	}
	return resp
}

type ListOvertimeResponse struct {
	Overtimes []OvertimeResponse `json:"overtimes"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}
