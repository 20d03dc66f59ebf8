package geofence

import "context"

// ZoneRepository defines data access methods for geofence zones.
type ZoneRepository interface {
	// Create persists a new zone
	Create(ctx context.Context, zone Zone) (Zone, error)

	// GetByID retrieves a zone by ID
	GetByID(ctx context.Context, id string) (Zone, error)

	// List retrieves all zones ordered by creation time. The resolver treats
	// the returned order as the overlap tie-break, so it must be stable.
	List(ctx context.Context) ([]Zone, error)

	// Delete removes a zone
	Delete(ctx context.Context, id string) error
}
