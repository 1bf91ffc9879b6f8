package area

import (
	"context"
	"errors"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/area"
)

type AreaServiceImpl struct {
	area.AreaRepository
}

func NewAreaService(areaRepo area.AreaRepository) area.AreaService {
	return &AreaServiceImpl{AreaRepository: areaRepo}
}

// CreateArea implements area.AreaService.
func (s *AreaServiceImpl) CreateArea(ctx context.Context, req area.CreateAreaRequest) (area.AreaResponse, error) {
	if err := req.Validate(); err != nil {
		return area.AreaResponse{}, err
	}

	if _, err := s.AreaRepository.GetByName(ctx, req.Name); err == nil {
		return area.AreaResponse{}, area.ErrAreaNameExists
	} else if !errors.Is(err, area.ErrAreaNotFound) {
		return area.AreaResponse{}, err
	}

	created, err := s.AreaRepository.Create(ctx, area.Area{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: true,
	})
	if err != nil {
		return area.AreaResponse{}, err
	}

	return area.ToAreaResponse(created), nil
}

// GetArea implements area.AreaService.
func (s *AreaServiceImpl) GetArea(ctx context.Context, id string) (area.AreaResponse, error) {
	a, err := s.AreaRepository.GetByID(ctx, id)
	if err != nil {
		return area.AreaResponse{}, err
	}

	return area.ToAreaResponse(a), nil
}

// ListAreas implements area.AreaService.
func (s *AreaServiceImpl) ListAreas(ctx context.Context) ([]area.AreaResponse, error) {
	areas, err := s.AreaRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]area.AreaResponse, 0, len(areas))
	for _, a := range areas {
		responses = append(responses, area.ToAreaResponse(a))
	}

	return responses, nil
}

// UpdateArea implements area.AreaService.
func (s *AreaServiceImpl) UpdateArea(ctx context.Context, req area.UpdateAreaRequest) (area.AreaResponse, error) {
	if err := req.Validate(); err != nil {
		return area.AreaResponse{}, err
	}

	a, err := s.AreaRepository.GetByID(ctx, req.ID)
	if err != nil {
		return area.AreaResponse{}, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Address != nil {
		a.Address = req.Address
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := s.AreaRepository.Update(ctx, a); err != nil {
		return area.AreaResponse{}, err
	}

	return area.ToAreaResponse(a), nil
}

// DeleteArea implements area.AreaService.
func (s *AreaServiceImpl) DeleteArea(ctx context.Context, id string) error {
	return s.AreaRepository.Delete(ctx, id)
}
