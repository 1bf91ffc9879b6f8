package correction

import (
	"context"
)

type CorrectionService interface {
	// CreateCorrection files a new request in SUBMITTED state.
	CreateCorrection(ctx context.Context, req CreateCorrectionRequest) (CorrectionResponse, error)

	GetCorrection(ctx context.Context, id string) (CorrectionResponse, error)
	ListCorrections(ctx context.Context, filter CorrectionFilter) (ListCorrectionResponse, error)

	// ReviewCorrection moves a SUBMITTED request to its terminal state. On
	// APPROVE the attendance patch is attempted best-effort; its outcome
	// rides along in the response's PatchResult and never changes the
	// request status.
	ReviewCorrection(ctx context.Context, req ReviewCorrectionRequest) (CorrectionResponse, error)

	// CancelCorrection lets the requesting employee withdraw a SUBMITTED
	// request.
	CancelCorrection(ctx context.Context, id string, employeeID string) (CorrectionResponse, error)
}
