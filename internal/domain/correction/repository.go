package correction

import (
	"context"
)

type CorrectionRepository interface {
	Create(ctx context.Context, req CorrectionRequest) (CorrectionRequest, error)
	GetByID(ctx context.Context, id string) (CorrectionRequest, error)
	List(ctx context.Context, filter CorrectionFilter) ([]CorrectionRequest, int64, error)
	Update(ctx context.Context, req CorrectionRequest) error
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
