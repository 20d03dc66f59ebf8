package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/workreport"
	"github.com/RobertoAguirre/amn-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type WorkReportHandler interface {
	CreateShiftReport(w http.ResponseWriter, r *http.Request)
	ListShiftReports(w http.ResponseWriter, r *http.Request)
	CreateMaterialReport(w http.ResponseWriter, r *http.Request)
	ListMaterialReports(w http.ResponseWriter, r *http.Request)
	CreateActivityLog(w http.ResponseWriter, r *http.Request)
	ListActivityLogs(w http.ResponseWriter, r *http.Request)
	BulkSync(w http.ResponseWriter, r *http.Request)
}

type WorkReportHandlerImpl struct {
	reportService workreport.Service
}

func NewWorkReportHandler(reportService workreport.Service) WorkReportHandler {
	return &WorkReportHandlerImpl{reportService: reportService}
}

// operatorFromContext pulls the authenticated operator ID out of the verified
// token. Tokens carry it as the subject, older ones as a user_id claim.
func operatorFromContext(r *http.Request) (string, bool) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return "", false
	}
	if sub := token.Subject(); sub != "" {
		return sub, true
	}
	if userID, ok := claims["user_id"].(string); ok && userID != "" {
		return userID, true
	}
	return "", false
}

// CreateShiftReport implements WorkReportHandler.
func (h *WorkReportHandlerImpl) CreateShiftReport(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req workreport.CreateShiftReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create shift report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.CreateShiftReport(r.Context(), operatorID, req)
	if err != nil {
		slog.Error("Failed to create shift report", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift report saved", result)
}

// ListShiftReports implements WorkReportHandler.
func (h *WorkReportHandlerImpl) ListShiftReports(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	filter := workreport.ListFilter{
		OperatorID: operatorID,
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	result, err := h.reportService.ListShiftReports(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list shift reports", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateMaterialReport implements WorkReportHandler.
func (h *WorkReportHandlerImpl) CreateMaterialReport(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req workreport.CreateMaterialReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create material report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.CreateMaterialReport(r.Context(), operatorID, req)
	if err != nil {
		slog.Error("Failed to create material report", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Material report saved", result)
}

// ListMaterialReports implements WorkReportHandler.
func (h *WorkReportHandlerImpl) ListMaterialReports(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	filter := workreport.ListFilter{
		OperatorID: operatorID,
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	result, err := h.reportService.ListMaterialReports(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list material reports", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateActivityLog implements WorkReportHandler.
func (h *WorkReportHandlerImpl) CreateActivityLog(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req workreport.CreateActivityLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create activity log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.CreateActivityLog(r.Context(), operatorID, req)
	if err != nil {
		slog.Error("Failed to create activity log", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Activity log saved", result)
}

// ListActivityLogs implements WorkReportHandler.
func (h *WorkReportHandlerImpl) ListActivityLogs(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	filter := workreport.ListFilter{
		OperatorID: operatorID,
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	result, err := h.reportService.ListActivityLogs(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list activity logs", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BulkSync implements WorkReportHandler.
func (h *WorkReportHandlerImpl) BulkSync(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req workreport.BulkSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bulk sync decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.BulkSync(r.Context(), operatorID, req)
	if err != nil {
		slog.Error("Failed to bulk sync reports", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
