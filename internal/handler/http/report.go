package http

import (
	"net/http"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/report"
	"github.com/klinikmedika/absensi-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Discipline(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Discipline implements ReportHandler.
func (h *reportHandlerImpl) Discipline(w http.ResponseWriter, r *http.Request) {
	req := report.DisciplineReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.DisciplineReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
