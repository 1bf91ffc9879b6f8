package correction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/attendance"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/correction"
)

type CorrectionServiceImpl struct {
	correction.CorrectionRepository
	attendanceRepo attendance.AttendanceRepository
	attendanceSvc  attendance.AttendanceService
}

func NewCorrectionService(
	correctionRepo correction.CorrectionRepository,
	attendanceRepo attendance.AttendanceRepository,
	attendanceSvc attendance.AttendanceService,
) correction.CorrectionService {
	return &CorrectionServiceImpl{
		CorrectionRepository: correctionRepo,
		attendanceRepo:       attendanceRepo,
		attendanceSvc:        attendanceSvc,
	}
}

// CreateCorrection implements correction.CorrectionService.
func (s *CorrectionServiceImpl) CreateCorrection(ctx context.Context, req correction.CreateCorrectionRequest) (correction.CorrectionResponse, error) {
	if err := req.Validate(); err != nil {
		return correction.CorrectionResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return correction.CorrectionResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	entity := correction.CorrectionRequest{
		EmployeeID:       req.EmployeeID,
		Date:             date,
		Type:             correction.Type(req.Type),
		RequestedTimeIn:  req.RequestedTimeIn,
		RequestedTimeOut: req.RequestedTimeOut,
		Reason:           req.Reason,
		Status:           correction.StatusSubmitted,
	}
	if req.Subtype != nil {
		sub := correction.Subtype(*req.Subtype)
		entity.Subtype = &sub
	}

	created, err := s.CorrectionRepository.Create(ctx, entity)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}

	return correction.ToCorrectionResponse(created), nil
}

// GetCorrection implements correction.CorrectionService.
func (s *CorrectionServiceImpl) GetCorrection(ctx context.Context, id string) (correction.CorrectionResponse, error) {
	req, err := s.CorrectionRepository.GetByID(ctx, id)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}

	return correction.ToCorrectionResponse(req), nil
}

// ListCorrections implements correction.CorrectionService.
func (s *CorrectionServiceImpl) ListCorrections(ctx context.Context, filter correction.CorrectionFilter) (correction.ListCorrectionResponse, error) {
	requests, total, err := s.CorrectionRepository.List(ctx, filter)
	if err != nil {
		return correction.ListCorrectionResponse{}, err
	}

	responses := make([]correction.CorrectionResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, correction.ToCorrectionResponse(req))
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	return correction.ListCorrectionResponse{
		Corrections: responses,
		Total:       total,
		Page:        page,
		Limit:       limit,
	}, nil
}

// ReviewCorrection implements correction.CorrectionService. The request
// status is the authoritative outcome; on approval the attendance patch is
// attempted afterwards and its result reported alongside, never instead.
func (s *CorrectionServiceImpl) ReviewCorrection(ctx context.Context, req correction.ReviewCorrectionRequest) (correction.CorrectionResponse, error) {
	if err := req.Validate(); err != nil {
		return correction.CorrectionResponse{}, err
	}

	entity, err := s.CorrectionRepository.GetByID(ctx, req.ID)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}
	if !entity.IsPending() {
		return correction.CorrectionResponse{}, correction.ErrAlreadyProcessed
	}

	switch correction.ReviewAction(req.Action) {
	case correction.ActionApprove:
		entity.Status = correction.StatusApproved
	case correction.ActionReject:
		entity.Status = correction.StatusRejected
	case correction.ActionNeedsRevision:
		entity.Status = correction.StatusNeedsRevision
	default:
		return correction.CorrectionResponse{}, correction.ErrInvalidAction
	}

	now := time.Now()
	entity.ReviewerID = &req.ReviewerID
	entity.ReviewerNote = req.Note
	entity.ReviewedAt = &now

	if err := s.CorrectionRepository.Update(ctx, entity); err != nil {
		return correction.CorrectionResponse{}, err
	}

	resp := correction.ToCorrectionResponse(entity)

	if entity.Status == correction.StatusApproved {
		patch := s.applyApproved(ctx, entity)
		resp.PatchResult = &patch
	}

	return resp, nil
}

// applyApproved patches the attendance record for an approved request. It
// never returns an error: any failure becomes an Applied=false result so the
// approval itself stands.
func (s *CorrectionServiceImpl) applyApproved(ctx context.Context, req correction.CorrectionRequest) correction.PatchResult {
	apply := attendance.ApplyTimesRequest{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
	}

	switch req.Type {
	case correction.TypeLupaAbsen:
		if req.RequestedTimeIn == nil {
			return correction.PatchResult{Applied: false, Message: "request has no check-in time"}
		}
		apply.TimeIn = req.RequestedTimeIn
		apply.TimeOut = req.RequestedTimeOut

	case correction.TypeKoreksiJam:
		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
		if err != nil {
			slog.Error("correction patch: attendance lookup failed",
				"correction_id", req.ID, "error", err)
			return correction.PatchResult{Applied: false, Message: "attendance lookup failed"}
		}

		subtype := req.EffectiveSubtype()

		if existing == nil {
			// Only a full correction can stand in for the missing record.
			if subtype != correction.SubtypeBoth {
				return correction.PatchResult{Applied: false, Message: "no attendance record to patch"}
			}
			apply.TimeIn = req.RequestedTimeIn
			apply.TimeOut = req.RequestedTimeOut
		} else {
			switch subtype {
			case correction.SubtypeCheckIn:
				apply.TimeIn = req.RequestedTimeIn
			case correction.SubtypeCheckOut:
				apply.TimeOut = req.RequestedTimeOut
			default:
				apply.TimeIn = req.RequestedTimeIn
				apply.TimeOut = req.RequestedTimeOut
			}
		}

	default:
		return correction.PatchResult{Applied: false, Message: "unknown correction type"}
	}

	if apply.TimeIn == nil && apply.TimeOut == nil {
		return correction.PatchResult{Applied: false, Message: "nothing to apply for subtype"}
	}

	if _, err := s.attendanceSvc.ApplyTimes(ctx, apply); err != nil {
		slog.Error("correction patch: apply failed",
			"correction_id", req.ID,
			"employee_id", req.EmployeeID,
			"date", req.Date.Format("2006-01-02"),
			"error", err)
		return correction.PatchResult{Applied: false, Message: fmt.Sprintf("apply failed: %v", err)}
	}

	return correction.PatchResult{Applied: true}
}

// CancelCorrection implements correction.CorrectionService.
func (s *CorrectionServiceImpl) CancelCorrection(ctx context.Context, id string, employeeID string) (correction.CorrectionResponse, error) {
	entity, err := s.CorrectionRepository.GetByID(ctx, id)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}
	if entity.EmployeeID != employeeID {
		return correction.CorrectionResponse{}, correction.ErrNotRequestOwner
	}
	if !entity.IsPending() {
		return correction.CorrectionResponse{}, correction.ErrAlreadyProcessed
	}

	entity.Status = correction.StatusCanceled
	if err := s.CorrectionRepository.Update(ctx, entity); err != nil {
		return correction.CorrectionResponse{}, err
	}

	return correction.ToCorrectionResponse(entity), nil
}
