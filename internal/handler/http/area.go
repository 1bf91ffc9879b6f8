package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/area"
	"github.com/klinikmedika/absensi-backend-go/internal/handler/http/response"
)

type AreaHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type areaHandlerImpl struct {
	areaService area.AreaService
}

func NewAreaHandler(areaService area.AreaService) AreaHandler {
	return &areaHandlerImpl{areaService: areaService}
}

// Create implements AreaHandler.
func (h *areaHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req area.CreateAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.areaService.CreateArea(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Area created", result)
}

// Get implements AreaHandler.
func (h *areaHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.areaService.GetArea(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AreaHandler.
func (h *areaHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.areaService.ListAreas(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AreaHandler.
func (h *areaHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req area.UpdateAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.areaService.UpdateArea(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements AreaHandler.
func (h *areaHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.areaService.DeleteArea(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Area deleted", nil)
}
