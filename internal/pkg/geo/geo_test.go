package geo

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 19.4326, -99.1332, 19.4326, -99.1332, 0, 0.001},
		{"one degree latitude", 0, 0, 1, 0, 111195, 50},
		{"mexico city to guadalajara", 19.4326, -99.1332, 20.6597, -103.3496, 460000, 5000},
		{"short hop ~111m", 19.4326, -99.1332, 19.4336, -99.1332, 111.19, 0.5},
	}
	for _, c := range cases {
		got := HaversineDistance(c.lat1, c.lon1, c.lat2, c.lon2)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: HaversineDistance = %f, want %f ± %f", c.name, got, c.want, c.tolerance)
		}
	}
}

func TestHaversineDistanceSymmetry(t *testing.T) {
	d1 := HaversineDistance(19.4326, -99.1332, 20.6597, -103.3496)
	d2 := HaversineDistance(20.6597, -103.3496, 19.4326, -99.1332)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 10},
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 0},
	}

	cases := []struct {
		name string
		p    Point
		ring []Point
		want bool
	}{
		{"center of square", Point{Lat: 5, Lng: 5}, square, true},
		{"outside square", Point{Lat: 15, Lng: 5}, square, false},
		{"outside negative", Point{Lat: -1, Lng: -1}, square, false},
		{"near corner inside", Point{Lat: 9.99, Lng: 9.99}, square, true},
		{"degenerate two vertices", Point{Lat: 5, Lng: 5}, square[:2], false},
		{"empty ring", Point{Lat: 5, Lng: 5}, nil, false},
	}
	for _, c := range cases {
		got := PointInPolygon(c.p, c.ring)
		if got != c.want {
			t.Errorf("%s: PointInPolygon(%v) = %v, want %v", c.name, c.p, got, c.want)
		}
	}
}

func TestPointInPolygonConcave(t *testing.T) {
	// L-shaped ring: the notch at the top-right is outside.
	ring := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 10},
		{Lat: 5, Lng: 10},
		{Lat: 5, Lng: 5},
		{Lat: 10, Lng: 5},
		{Lat: 10, Lng: 0},
	}

	if !PointInPolygon(Point{Lat: 2, Lng: 2}, ring) {
		t.Error("point in lower arm should be inside")
	}
	if !PointInPolygon(Point{Lat: 8, Lng: 2}, ring) {
		t.Error("point in upper arm should be inside")
	}
	if PointInPolygon(Point{Lat: 8, Lng: 8}, ring) {
		t.Error("point in the notch should be outside")
	}
}
