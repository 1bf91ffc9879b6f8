package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/overtime"
	"github.com/klinikmedika/absensi-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

// Create implements OvertimeHandler.
func (h *overtimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if employeeID, err := claimString(r.Context(), "employee_id"); err == nil && req.EmployeeID == "" {
		req.EmployeeID = employeeID
	}

	result, err := h.overtimeService.CreateOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", result)
}

// Get implements OvertimeHandler.
func (h *overtimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.overtimeService.GetOvertime(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements OvertimeHandler.
func (h *overtimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := overtime.OvertimeFilter{}

	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("status"); v != "" {
		status := overtime.Status(v)
		filter.Status = &status
	}
	if v := q.Get("start_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid start_date", nil)
			return
		}
		filter.StartDate = &d
	}
	if v := q.Get("end_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid end_date", nil)
			return
		}
		filter.EndDate = &d
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.overtimeService.ListOvertimes(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int(result.Total) / result.Limit
	if int(result.Total)%result.Limit > 0 {
		totalPages++
	}

	response.SuccessWithMeta(w, result.Overtimes, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
		TotalPages: totalPages,
	})
}

// Review implements OvertimeHandler.
func (h *overtimeHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req overtime.ReviewOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")

	reviewerID, err := claimString(r.Context(), "user_id")
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	req.ReviewerID = reviewerID

	result, err := h.overtimeService.ReviewOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Cancel implements OvertimeHandler.
func (h *overtimeHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	employeeID, err := claimString(r.Context(), "employee_id")
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.overtimeService.CancelOvertime(r.Context(), id, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
