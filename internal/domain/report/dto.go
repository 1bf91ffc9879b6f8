package report

import (
	"time"

	"github.com/klinikmedika/absensi-backend-go/internal/pkg/validator"
)

type DisciplineReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *DisciplineReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) == 0 {
		start, _ := time.Parse("2006-01-02", r.StartDate)
		end, _ := time.Parse("2006-01-02", r.EndDate)
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceRow is the raw per-day material the report is folded from. The
// clock texts are stored as submitted; scoring re-derives everything.
type AttendanceRow struct {
	EmployeeID   string
	EmployeeName string
	EmployeeRole string
	AreaName     *string
	DailyRate    int64
	Date         time.Time
	CheckInClock *string
	Status       string
}

type DailyScore struct {
	Date         string  `json:"date"`
	CheckInClock *string `json:"check_in_clock,omitempty"`
	ShiftName    *string `json:"shift_name,omitempty"`
	Score        int     `json:"score"`
	Status       string  `json:"status"`
}

type EmployeeDiscipline struct {
	EmployeeID   string       `json:"employee_id"`
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	AreaName     *string      `json:"area_name,omitempty"`
	DailyRate    int64        `json:"daily_rate"`
	Days         int          `json:"days"`
	TotalScore   int          `json:"total_score"`
	AverageScore float64      `json:"average_score"`
	LateDays     int          `json:"late_days"`
	ZeroDays     int          `json:"zero_days"`
	Rows         []DailyScore `json:"rows"`
}

type DisciplineReportResponse struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Employees []EmployeeDiscipline `json:"employees"`
}
