package overtime

import (
	"context"
)

type OvertimeRepository interface {
	Create(ctx context.Context, req OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	List(ctx context.Context, filter OvertimeFilter) ([]OvertimeRequest, int64, error)
	Update(ctx context.Context, req OvertimeRequest) error
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
