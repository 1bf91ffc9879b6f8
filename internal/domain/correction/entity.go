package correction

import "time"

type Type string

const (
	// TypeLupaAbsen is "forgot to clock" - no record exists for the day.
	TypeLupaAbsen Type = "LUPA_ABSEN"
	// TypeKoreksiJam fixes the times on an existing record.
	TypeKoreksiJam Type = "KOREKSI_JAM"
)

type Subtype string

const (
	SubtypeCheckIn  Subtype = "CHECKIN"
	SubtypeCheckOut Subtype = "CHECKOUT"
	SubtypeBoth     Subtype = "BOTH"
)

type Status string

const (
	StatusSubmitted     Status = "SUBMITTED"
	StatusApproved      Status = "APPROVED"
	StatusRejected      Status = "REJECTED"
	StatusNeedsRevision Status = "NEEDS_REVISION"
	StatusCanceled      Status = "CANCELED"
)

type CorrectionRequest struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Type       Type
	// Subtype is only meaningful for KOREKSI_JAM; nil means BOTH.
	Subtype          *Subtype
	RequestedTimeIn  *string
	RequestedTimeOut *string
	Reason           string
	Status           Status
	ReviewerID       *string
	ReviewerNote     *string
	ReviewedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO / Join
	EmployeeName *string
}

// EffectiveSubtype resolves the nil-means-BOTH rule.
func (c *CorrectionRequest) EffectiveSubtype() Subtype {
	if c.Subtype == nil {
		return SubtypeBoth
	}
	return *c.Subtype
}

// IsPending reports whether the request can still be reviewed or canceled.
func (c *CorrectionRequest) IsPending() bool {
	return c.Status == StatusSubmitted
}
