package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/correction"
	"github.com/klinikmedika/absensi-backend-go/internal/handler/http/response"
)

type CorrectionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type correctionHandlerImpl struct {
	correctionService correction.CorrectionService
}

func NewCorrectionHandler(correctionService correction.CorrectionService) CorrectionHandler {
	return &correctionHandlerImpl{correctionService: correctionService}
}

// Create implements CorrectionHandler.
func (h *correctionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req correction.CreateCorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Non-admins can only file for themselves.
	if employeeID, err := claimString(r.Context(), "employee_id"); err == nil && req.EmployeeID == "" {
		req.EmployeeID = employeeID
	}

	result, err := h.correctionService.CreateCorrection(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Correction request submitted", result)
}

// Get implements CorrectionHandler.
func (h *correctionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.correctionService.GetCorrection(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CorrectionHandler.
func (h *correctionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := correction.CorrectionFilter{}

	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("status"); v != "" {
		status := correction.Status(v)
		filter.Status = &status
	}
	if v := q.Get("type"); v != "" {
		reqType := correction.Type(v)
		filter.Type = &reqType
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

	result, err := h.correctionService.ListCorrections(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int(result.Total) / result.Limit
	if int(result.Total)%result.Limit > 0 {
		totalPages++
	}

	response.SuccessWithMeta(w, result.Corrections, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
		TotalPages: totalPages,
	})
}

// Review implements CorrectionHandler.
func (h *correctionHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req correction.ReviewCorrectionRequest
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

	result, err := h.correctionService.ReviewCorrection(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Cancel implements CorrectionHandler.
func (h *correctionHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	employeeID, err := claimString(r.Context(), "employee_id")
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.correctionService.CancelCorrection(r.Context(), id, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
