package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/geofence"
	"github.com/RobertoAguirre/amn-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubZoneService struct {
	created geofence.CreateZoneRequest
	zones   []geofence.ZoneResponse
	deleted string
	err     error
}

func (s *stubZoneService) CreateZone(_ context.Context, req geofence.CreateZoneRequest) (geofence.ZoneResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.ZoneResponse{}, err
	}
	s.created = req
	return geofence.ZoneResponse{ID: "zone-1", SiteID: req.SiteID, SiteName: req.SiteName, Kind: req.Kind}, s.err
}

func (s *stubZoneService) ListZones(_ context.Context) ([]geofence.ZoneResponse, error) {
	return s.zones, s.err
}

func (s *stubZoneService) DeleteZone(_ context.Context, id string) error {
	s.deleted = id
	return s.err
}

func (s *stubZoneService) ResolveZone(_ context.Context, _, _ float64) (*geofence.Zone, error) {
	return nil, s.err
}

func TestGeofenceHandler_Create(t *testing.T) {
	stub := &stubZoneService{}
	handler := NewGeofenceHandler(stub)

	radius := 75.0
	body, err := json.Marshal(map[string]interface{}{
		"site_id":       "site-a",
		"site_name":     "Planta Norte",
		"kind":          "circle",
		"center":        map[string]float64{"lat": 19.4326, "lng": -99.1332},
		"radius_meters": radius,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/geofences", bytes.NewReader(body))
	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "site-a", stub.created.SiteID)

	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
}

func TestGeofenceHandler_Create_InvalidShape(t *testing.T) {
	handler := NewGeofenceHandler(&stubZoneService{})

	// Circle without a radius must fail validation
	body := []byte(`{"site_id":"site-a","site_name":"Planta Norte","kind":"circle","center":{"lat":19.4,"lng":-99.1}}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/geofences", bytes.NewReader(body))
	handler.Create(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGeofenceHandler_Create_MalformedJSON(t *testing.T) {
	handler := NewGeofenceHandler(&stubZoneService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/geofences", bytes.NewReader([]byte("{not json")))
	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeofenceHandler_Delete(t *testing.T) {
	stub := &stubZoneService{}
	handler := NewGeofenceHandler(stub)

	r := chi.NewRouter()
	r.Delete("/geofences/{id}", handler.Delete)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/geofences/zone-9", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "zone-9", stub.deleted)
}

func TestGeofenceHandler_Delete_NotFound(t *testing.T) {
	stub := &stubZoneService{err: geofence.ErrZoneNotFound}
	handler := NewGeofenceHandler(stub)

	r := chi.NewRouter()
	r.Delete("/geofences/{id}", handler.Delete)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/geofences/missing", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
