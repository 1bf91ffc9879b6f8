package dashboard

import (
	"context"
	"time"
)

type DashboardService interface {
	Summary(ctx context.Context, date time.Time) (SummaryResponse, error)
}
