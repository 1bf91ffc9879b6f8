package overtime

import "time"

type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCanceled  Status = "CANCELED"
)

type OvertimeRequest struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	StartTime    string
	EndTime      string
	Reason       string
	Status       Status
	ReviewerID   *string
	ReviewerNote *string
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeName *string
}

func (o *OvertimeRequest) IsPending() bool {
	return o.Status == StatusSubmitted
}
