package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/overtime"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/discipline"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRepository
}

func NewOvertimeService(overtimeRepo overtime.OvertimeRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{OvertimeRepository: overtimeRepo}
}

// CreateOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CreateOvertime(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	start, okStart := discipline.ParseTimeToMinutes(req.StartTime)
	end, okEnd := discipline.ParseTimeToMinutes(req.EndTime)
	if okStart && okEnd && end <= start {
		return overtime.OvertimeResponse{}, overtime.ErrInvalidTimeRange
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	entity := overtime.OvertimeRequest{
		EmployeeID: req.EmployeeID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
		Status:     overtime.StatusSubmitted,
	}

	created, err := s.OvertimeRepository.Create(ctx, entity)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return overtime.ToOvertimeResponse(created), nil
}

// GetOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) GetOvertime(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	req, err := s.OvertimeRepository.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return overtime.ToOvertimeResponse(req), nil
}

// ListOvertimes implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListOvertimes(ctx context.Context, filter overtime.OvertimeFilter) (overtime.ListOvertimeResponse, error) {
	requests, total, err := s.OvertimeRepository.List(ctx, filter)
	if err != nil {
		return overtime.ListOvertimeResponse{}, err
	}

	responses := make([]overtime.OvertimeResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, overtime.ToOvertimeResponse(req))
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	return overtime.ListOvertimeResponse{
		Overtimes: responses,
		Total:     total,
		Page:      page,
		Limit:     limit,
	}, nil
}

// ReviewOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ReviewOvertime(ctx context.Context, req overtime.ReviewOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	entity, err := s.OvertimeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if !entity.IsPending() {
		return overtime.OvertimeResponse{}, overtime.ErrAlreadyProcessed
	}

	switch overtime.ReviewAction(req.Action) {
	case overtime.ActionApprove:
		entity.Status = overtime.StatusApproved
	case overtime.ActionReject:
		entity.Status = overtime.StatusRejected
	}

	now := time.Now()
	entity.ReviewerID = &req.ReviewerID
	entity.ReviewerNote = req.Note
	entity.ReviewedAt = &now

	if err := s.OvertimeRepository.Update(ctx, entity); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return overtime.ToOvertimeResponse(entity), nil
}

// CancelOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CancelOvertime(ctx context.Context, id string, employeeID string) (overtime.OvertimeResponse, error) {
	entity, err := s.OvertimeRepository.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if entity.EmployeeID != employeeID {
		return overtime.OvertimeResponse{}, overtime.ErrNotRequestOwner
	}
	if !entity.IsPending() {
		return overtime.OvertimeResponse{}, overtime.ErrAlreadyProcessed
	}

	entity.Status = overtime.StatusCanceled
	if err := s.OvertimeRepository.Update(ctx, entity); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return overtime.ToOvertimeResponse(entity), nil
}
