package overtime

import (
	"context"
)

type OvertimeService interface {
	CreateOvertime(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	GetOvertime(ctx context.Context, id string) (OvertimeResponse, error)
	ListOvertimes(ctx context.Context, filter OvertimeFilter) (ListOvertimeResponse, error)
	ReviewOvertime(ctx context.Context, req ReviewOvertimeRequest) (OvertimeResponse, error)
	CancelOvertime(ctx context.Context, id string, employeeID string) (OvertimeResponse, error)
}
