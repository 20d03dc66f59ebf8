package geofence

import (
	"context"
	"fmt"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/geofence"
	"github.com/google/uuid"
)

type service struct {
	repo geofence.ZoneRepository
}

// NewZoneService creates a new geofence zone service
func NewZoneService(repo geofence.ZoneRepository) geofence.ZoneService {
	return &service{repo: repo}
}

func (s *service) CreateZone(ctx context.Context, req geofence.CreateZoneRequest) (geofence.ZoneResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.ZoneResponse{}, err
	}

	zone := geofence.Zone{
		ID:        uuid.New().String(),
		SiteID:    req.SiteID,
		SiteName:  req.SiteName,
		Kind:      geofence.ZoneKind(req.Kind),
		CreatedAt: time.Now(),
	}
	switch zone.Kind {
	case geofence.ZoneKindCircle:
		zone.Center = req.Center
		zone.RadiusMeters = req.RadiusMeters
	case geofence.ZoneKindPolygon:
		zone.Ring = req.Ring
	}

	created, err := s.repo.Create(ctx, zone)
	if err != nil {
		return geofence.ZoneResponse{}, fmt.Errorf("failed to create zone: %w", err)
	}

	return toResponse(created), nil
}

func (s *service) ListZones(ctx context.Context) ([]geofence.ZoneResponse, error) {
	zones, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	responses := make([]geofence.ZoneResponse, len(zones))
	for i, z := range zones {
		responses[i] = toResponse(z)
	}
	return responses, nil
}

func (s *service) DeleteZone(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ResolveZone loads all zones and returns the first one containing the
// coordinate. Zones come back in creation order, which doubles as the
// overlap tie-break.
func (s *service) ResolveZone(ctx context.Context, lat, lng float64) (*geofence.Zone, error) {
	zones, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load zones: %w", err)
	}
	return geofence.Resolve(lat, lng, zones), nil
}

func toResponse(z geofence.Zone) geofence.ZoneResponse {
	return geofence.ZoneResponse{
		ID:           z.ID,
		SiteID:       z.SiteID,
		SiteName:     z.SiteName,
		Kind:         string(z.Kind),
		Center:       z.Center,
		RadiusMeters: z.RadiusMeters,
		Ring:         z.Ring,
		CreatedAt:    z.CreatedAt.Format(time.RFC3339),
	}
}
