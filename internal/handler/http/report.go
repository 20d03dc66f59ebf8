package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/report"
	"github.com/RobertoAguirre/amn-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	AttendanceExport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func reportFilter(r *http.Request) report.Filter {
	return report.Filter{
		DateFrom:     r.URL.Query().Get("date_from"),
		DateTo:       r.URL.Query().Get("date_to"),
		EmployeeID:   queryParam(r, "employee_id"),
		EmployeeName: queryParam(r, "employee_name"),
	}
}

// Attendance implements ReportHandler.
func (h *ReportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	filter := reportFilter(r)

	result, err := h.reportService.Generate(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to generate attendance report", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceExport implements ReportHandler.
func (h *ReportHandlerImpl) AttendanceExport(w http.ResponseWriter, r *http.Request) {
	filter := reportFilter(r)

	data, err := h.reportService.ExportExcel(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to export attendance report", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("asistencia_%s_%s.xlsx", filter.DateFrom, filter.DateTo)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write xlsx response", "error", err)
	}
}
