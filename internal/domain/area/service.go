package area

import (
	"context"
)

type AreaService interface {
	CreateArea(ctx context.Context, req CreateAreaRequest) (AreaResponse, error)
	GetArea(ctx context.Context, id string) (AreaResponse, error)
	ListAreas(ctx context.Context) ([]AreaResponse, error)
	UpdateArea(ctx context.Context, req UpdateAreaRequest) (AreaResponse, error)
	DeleteArea(ctx context.Context, id string) error
}
