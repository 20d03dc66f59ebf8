package geofence

import (
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/geo"
)

type ZoneKind string

const (
	ZoneKindCircle  ZoneKind = "circle"
	ZoneKindPolygon ZoneKind = "polygon"
)

var ZoneKindValues = []string{
	string(ZoneKindCircle),
	string(ZoneKindPolygon),
}

// Zone is a geofenced area bound to one site. Circle zones carry a center and
// radius; polygon zones carry an ordered vertex ring.
type Zone struct {
	ID           string
	SiteID       string
	SiteName     string
	Kind         ZoneKind
	Center       *geo.Point
	RadiusMeters *float64
	Ring         []geo.Point
	CreatedAt    time.Time
}

// Contains reports whether the coordinate falls inside the zone.
func (z *Zone) Contains(lat, lng float64) bool {
	switch z.Kind {
	case ZoneKindCircle:
		if z.Center == nil || z.RadiusMeters == nil {
			return false
		}
		return geo.HaversineDistance(lat, lng, z.Center.Lat, z.Center.Lng) <= *z.RadiusMeters
	case ZoneKindPolygon:
		return geo.PointInPolygon(geo.Point{Lat: lat, Lng: lng}, z.Ring)
	default:
		return false
	}
}

// Resolve returns the first zone in list order containing the coordinate, or
// nil when the point is outside every zone. List order is the tie-break for
// overlapping zones; the resolver does not prefer the nearest center.
func Resolve(lat, lng float64, zones []Zone) *Zone {
	for i := range zones {
		if zones[i].Contains(lat, lng) {
			return &zones[i]
		}
	}
	return nil
}
