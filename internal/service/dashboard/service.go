package dashboard

import (
	"context"
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/correction"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/dashboard"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/overtime"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	correctionRepo correction.CorrectionRepository
	overtimeRepo   overtime.OvertimeRepository
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	correctionRepo correction.CorrectionRepository,
	overtimeRepo overtime.OvertimeRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
		correctionRepo:      correctionRepo,
		overtimeRepo:        overtimeRepo,
	}
}

// Summary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Summary(ctx context.Context, date time.Time) (dashboard.SummaryResponse, error) {
	active, err := s.DashboardRepository.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	counts, err := s.DashboardRepository.CountAttendanceByStatus(ctx, date)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	pendingCorrections, err := s.correctionRepo.CountByStatus(ctx, correction.StatusSubmitted)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	pendingOvertimes, err := s.overtimeRepo.CountByStatus(ctx, overtime.StatusSubmitted)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	notYetIn := active - counts.Present - counts.Late - counts.Absent
	if notYetIn < 0 {
		notYetIn = 0
	}

	return dashboard.SummaryResponse{
		Date:               date.Format("2006-01-02"),
		ActiveEmployees:    active,
		Present:            counts.Present,
		Late:               counts.Late,
		NotYetIn:           notYetIn,
		Absent:             counts.Absent,
		PendingCorrections: pendingCorrections,
		PendingOvertimes:   pendingOvertimes,
	}, nil
}
