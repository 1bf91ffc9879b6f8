package report

import (
	"context"
)

type ReportService interface {
	// DisciplineReport recomputes the per-employee discipline fold for the
	// range. Results may be served from a short-lived cache but are never
	// incrementally updated.
	DisciplineReport(ctx context.Context, req DisciplineReportRequest) (DisciplineReportResponse, error)
}
