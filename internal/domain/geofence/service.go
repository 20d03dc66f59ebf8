package geofence

import "context"

// ZoneService defines business logic for geofence zones.
type ZoneService interface {
	// CreateZone creates a zone after shape validation
	CreateZone(ctx context.Context, req CreateZoneRequest) (ZoneResponse, error)

	// ListZones returns all configured zones
	ListZones(ctx context.Context) ([]ZoneResponse, error)

	// DeleteZone removes a zone by ID
	DeleteZone(ctx context.Context, id string) error

	// ResolveZone finds the first zone containing the coordinate, or nil
	ResolveZone(ctx context.Context, lat, lng float64) (*Zone, error)
}
