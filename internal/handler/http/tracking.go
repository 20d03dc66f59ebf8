package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
	"github.com/RobertoAguirre/amn-backend-go/internal/handler/http/response"
)

type TrackingHandler interface {
	Ingest(w http.ResponseWriter, r *http.Request)
	BulkIngest(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type TrackingHandlerImpl struct {
	eventService tracking.EventService
}

func NewTrackingHandler(eventService tracking.EventService) TrackingHandler {
	return &TrackingHandlerImpl{eventService: eventService}
}

// Ingest implements TrackingHandler.
func (h *TrackingHandlerImpl) Ingest(w http.ResponseWriter, r *http.Request) {
	var req tracking.IngestEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Ingest event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.eventService.Ingest(r.Context(), req)
	if err != nil {
		// A repeated local_id returns the stored event so the device can
		// settle its outbox.
		if errors.Is(err, tracking.ErrDuplicateLocalID) {
			response.SuccessWithMessage(w, "Event already synced", result)
			return
		}
		slog.Error("Failed to ingest event", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event recorded", result)
}

// BulkIngest implements TrackingHandler.
func (h *TrackingHandlerImpl) BulkIngest(w http.ResponseWriter, r *http.Request) {
	var req tracking.BulkIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bulk ingest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(req.Events) == 0 {
		response.BadRequest(w, "Field 'events' must not be empty", nil)
		return
	}

	result, err := h.eventService.BulkIngest(r.Context(), req)
	if err != nil {
		slog.Error("Failed to bulk ingest events", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TrackingHandler.
func (h *TrackingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := tracking.EventFilter{
		EmployeeID: queryParam(r, "employee_id"),
		DateFrom:   queryParam(r, "date_from"),
		DateTo:     queryParam(r, "date_to"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 50),
	}
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.eventService.ListEvents(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list events", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func queryParam(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
