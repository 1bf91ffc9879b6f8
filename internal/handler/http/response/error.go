package response

import (
	"errors"
	"net/http"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/area"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/attendance"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/auth"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/correction"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/employee"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/overtime"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/user"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrPasswordLoginOnly):
		BadRequest(w, "Account has no password login", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee has already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Employee has already checked out")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Employee has not checked in yet", nil)

	// Correction domain errors
	case errors.Is(err, correction.ErrCorrectionNotFound):
		NotFound(w, "Correction request not found")
	case errors.Is(err, correction.ErrAlreadyProcessed):
		Conflict(w, "Correction request already processed")
	case errors.Is(err, correction.ErrNotRequestOwner):
		Forbidden(w, "Only the requesting employee can cancel")
	case errors.Is(err, correction.ErrInvalidAction):
		BadRequest(w, "Invalid review action", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrNotRequestOwner):
		Forbidden(w, "Only the requesting employee can cancel")
	case errors.Is(err, overtime.ErrInvalidTimeRange):
		BadRequest(w, "End time must be after start time", nil)

	// Employee / area domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)
	case errors.Is(err, area.ErrAreaNotFound):
		NotFound(w, "Area not found")
	case errors.Is(err, area.ErrAreaNameExists):
		Conflict(w, "Area name already exists")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
