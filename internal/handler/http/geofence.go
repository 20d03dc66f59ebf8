package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/geofence"
	"github.com/RobertoAguirre/amn-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type GeofenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type GeofenceHandlerImpl struct {
	zoneService geofence.ZoneService
}

func NewGeofenceHandler(zoneService geofence.ZoneService) GeofenceHandler {
	return &GeofenceHandlerImpl{zoneService: zoneService}
}

// Create implements GeofenceHandler.
func (h *GeofenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req geofence.CreateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create zone decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	zone, err := h.zoneService.CreateZone(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create zone", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Zone created successfully", zone)
}

// List implements GeofenceHandler.
func (h *GeofenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	zones, err := h.zoneService.ListZones(r.Context())
	if err != nil {
		slog.Error("Failed to list zones", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, zones)
}

// Delete implements GeofenceHandler.
func (h *GeofenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.zoneService.DeleteZone(r.Context(), id); err != nil {
		slog.Error("Failed to delete zone", "error", err, "zone_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Zone deleted successfully", nil)
}
