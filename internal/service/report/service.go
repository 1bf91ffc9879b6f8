package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/report"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/cache"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/discipline"
)

type ReportServiceImpl struct {
	report.ReportRepository
	cache    *cache.Cache
	cacheTTL time.Duration
}

// NewReportService builds the report service. cache may be nil, in which case
// every request recomputes the fold.
func NewReportService(reportRepo report.ReportRepository, c *cache.Cache, ttl time.Duration) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		cache:            c,
		cacheTTL:         ttl,
	}
}

// DisciplineReport implements report.ReportService.
func (s *ReportServiceImpl) DisciplineReport(ctx context.Context, req report.DisciplineReportRequest) (report.DisciplineReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DisciplineReportResponse{}, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return report.DisciplineReportResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return report.DisciplineReportResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	cacheKey := ""
	if s.cache != nil {
		cacheKey = s.cache.Key("report", "discipline", req.StartDate, req.EndDate)
		if raw, ok := s.cache.Get(ctx, cacheKey); ok {
			var cached report.DisciplineReportResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	rows, err := s.ReportRepository.ListAttendanceRows(ctx, start, end)
	if err != nil {
		return report.DisciplineReportResponse{}, err
	}

	resp := report.DisciplineReportResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Employees: fold(rows),
	}

	if s.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, s.cacheTTL); err != nil {
				slog.Warn("report cache write failed", "error", err)
			}
		}
	}

	return resp, nil
}

// fold collapses raw employee-day rows into per-employee discipline
// aggregates. Order of rows (by employee, then date) is preserved.
func fold(rows []report.AttendanceRow) []report.EmployeeDiscipline {
	var employees []report.EmployeeDiscipline
	index := map[string]int{}

	for _, row := range rows {
		i, ok := index[row.EmployeeID]
		if !ok {
			i = len(employees)
			index[row.EmployeeID] = i
			employees = append(employees, report.EmployeeDiscipline{
				EmployeeID: row.EmployeeID,
				Name:       row.EmployeeName,
				Role:       row.EmployeeRole,
				AreaName:   row.AreaName,
				DailyRate:  row.DailyRate,
			})
		}

		daily := scoreRow(row)
		emp := &employees[i]
		emp.Days++
		emp.TotalScore += daily.Score
		if daily.Score == 0 {
			emp.ZeroDays++
		} else if daily.Score < 100 {
			emp.LateDays++
		}
		emp.Rows = append(emp.Rows, daily)
	}

	for i := range employees {
		tally := discipline.Tally{
			TotalScore: employees[i].TotalScore,
			Days:       employees[i].Days,
		}
		employees[i].AverageScore = tally.Average()
	}

	return employees
}

// scoreRow re-derives one day's score from the raw clock text. Days that
// cannot be parsed or classified score 0 without comment.
func scoreRow(row report.AttendanceRow) report.DailyScore {
	daily := report.DailyScore{
		Date:         row.Date.Format("2006-01-02"),
		CheckInClock: row.CheckInClock,
		Status:       row.Status,
	}

	if row.CheckInClock == nil {
		return daily
	}

	checkIn, ok := discipline.ParseTimeToMinutes(*row.CheckInClock)
	if !ok {
		return daily
	}

	areaName := ""
	if row.AreaName != nil {
		areaName = *row.AreaName
	}

	base, shiftName, ok := discipline.ClassifyShift(checkIn, row.EmployeeRole, areaName)
	if !ok {
		return daily
	}

	daily.ShiftName = &shiftName
	daily.Score = discipline.ScoreAttendance(checkIn, base)
	return daily
}
