package geofence

import (
	"testing"

	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circleZone(id, siteID string, lat, lng, radius float64) Zone {
	return Zone{
		ID:           id,
		SiteID:       siteID,
		SiteName:     "Site " + siteID,
		Kind:         ZoneKindCircle,
		Center:       &geo.Point{Lat: lat, Lng: lng},
		RadiusMeters: &radius,
	}
}

func TestZoneContains_Circle(t *testing.T) {
	zone := circleZone("z1", "site-1", 19.4326, -99.1332, 50)

	assert.True(t, zone.Contains(19.4326, -99.1332), "center must be inside")
	// ~100m east of center
	assert.False(t, zone.Contains(19.4326, -99.13225))
	// ~30m north of center
	assert.True(t, zone.Contains(19.43287, -99.1332))
}

func TestZoneContains_CircleMissingShape(t *testing.T) {
	zone := Zone{ID: "z1", Kind: ZoneKindCircle}
	assert.False(t, zone.Contains(19.4326, -99.1332))
}

func TestZoneContains_Polygon(t *testing.T) {
	zone := Zone{
		ID:   "z1",
		Kind: ZoneKindPolygon,
		Ring: []geo.Point{
			{Lat: 19.43, Lng: -99.14},
			{Lat: 19.43, Lng: -99.12},
			{Lat: 19.44, Lng: -99.12},
			{Lat: 19.44, Lng: -99.14},
		},
	}

	assert.True(t, zone.Contains(19.435, -99.13))
	assert.False(t, zone.Contains(19.45, -99.13))
	assert.False(t, zone.Contains(19.435, -99.15))
}

func TestResolve_FirstMatchWins(t *testing.T) {
	// Two overlapping circles on the same point; list order breaks the tie.
	zones := []Zone{
		circleZone("z1", "site-1", 19.4326, -99.1332, 100),
		circleZone("z2", "site-2", 19.4326, -99.1332, 500),
	}

	got := Resolve(19.4326, -99.1332, zones)
	require.NotNil(t, got)
	assert.Equal(t, "z1", got.ID)

	// Outside the small circle but inside the big one
	got = Resolve(19.4326, -99.1310, zones)
	require.NotNil(t, got)
	assert.Equal(t, "z2", got.ID)
}

func TestResolve_NoMatch(t *testing.T) {
	zones := []Zone{
		circleZone("z1", "site-1", 19.4326, -99.1332, 50),
	}

	assert.Nil(t, Resolve(20.0, -99.1332, zones))
	assert.Nil(t, Resolve(19.4326, -99.1332, nil))
}

func TestResolve_Deterministic(t *testing.T) {
	zones := []Zone{
		circleZone("z1", "site-1", 19.4326, -99.1332, 100),
		circleZone("z2", "site-2", 19.4326, -99.1332, 100),
	}

	for i := 0; i < 10; i++ {
		got := Resolve(19.4326, -99.1332, zones)
		require.NotNil(t, got)
		assert.Equal(t, "z1", got.ID)
	}
}
