package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/geofence"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/database"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/geo"
	"github.com/jackc/pgx/v5"
)

type zoneRepository struct {
	db *database.DB
}

// NewZoneRepository creates a new geofence zone repository
func NewZoneRepository(db *database.DB) geofence.ZoneRepository {
	return &zoneRepository{db: db}
}

func (r *zoneRepository) Create(ctx context.Context, zone geofence.Zone) (geofence.Zone, error) {
	q := GetQuerier(ctx, r.db)

	var centerLat, centerLng *float64
	if zone.Center != nil {
		centerLat = &zone.Center.Lat
		centerLng = &zone.Center.Lng
	}

	var ringJSON []byte
	if zone.Ring != nil {
		var err error
		ringJSON, err = json.Marshal(zone.Ring)
		if err != nil {
			return geofence.Zone{}, fmt.Errorf("failed to marshal ring: %w", err)
		}
	}

	query := `
		INSERT INTO geofence_zones (id, site_id, site_name, kind, center_lat, center_lng, radius_meters, ring, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		zone.ID,
		zone.SiteID,
		zone.SiteName,
		string(zone.Kind),
		centerLat,
		centerLng,
		zone.RadiusMeters,
		ringJSON,
		zone.CreatedAt,
	)
	if err != nil {
		return geofence.Zone{}, fmt.Errorf("failed to create zone: %w", err)
	}

	return zone, nil
}

func (r *zoneRepository) GetByID(ctx context.Context, id string) (geofence.Zone, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, site_name, kind, center_lat, center_lng, radius_meters, ring, created_at
		FROM geofence_zones
		WHERE id = $1
	`

	zone, err := scanZone(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return geofence.Zone{}, geofence.ErrZoneNotFound
	}
	if err != nil {
		return geofence.Zone{}, fmt.Errorf("failed to get zone: %w", err)
	}

	return zone, nil
}

// List returns zones in creation order. The resolver relies on this order as
// the overlap tie-break.
func (r *zoneRepository) List(ctx context.Context) ([]geofence.Zone, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, site_name, kind, center_lat, center_lng, radius_meters, ring, created_at
		FROM geofence_zones
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	var zones []geofence.Zone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, zone)
	}

	return zones, rows.Err()
}

func (r *zoneRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM geofence_zones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return geofence.ErrZoneNotFound
	}

	return nil
}

func scanZone(row pgx.Row) (geofence.Zone, error) {
	var zone geofence.Zone
	var kind string
	var centerLat, centerLng *float64
	var ringJSON []byte

	err := row.Scan(
		&zone.ID,
		&zone.SiteID,
		&zone.SiteName,
		&kind,
		&centerLat,
		&centerLng,
		&zone.RadiusMeters,
		&ringJSON,
		&zone.CreatedAt,
	)
	if err != nil {
		return geofence.Zone{}, err
	}

	zone.Kind = geofence.ZoneKind(kind)
	if centerLat != nil && centerLng != nil {
		zone.Center = &geo.Point{Lat: *centerLat, Lng: *centerLng}
	}
	if len(ringJSON) > 0 {
		if err := json.Unmarshal(ringJSON, &zone.Ring); err != nil {
			return geofence.Zone{}, fmt.Errorf("failed to unmarshal ring: %w", err)
		}
	}

	return zone, nil
}
