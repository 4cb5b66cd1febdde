package geo_test

import (
	"math"
	"testing"

	"yardsale/internal/core/geo"

	"github.com/mmcloughlin/geohash"
)

func decode(cell string) (lat, lng float64) {
	return geohash.DecodeCenter(cell)
}

var (
	louisville = geo.Point{Lat: 38.2527, Lng: -85.7585}
	lexington  = geo.Point{Lat: 38.0406, Lng: -84.5037}
)

func TestHaversineIdenticalPointsIsZero(t *testing.T) {
	if d := geo.HaversineKm(louisville, louisville); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	ab := geo.HaversineKm(louisville, lexington)
	ba := geo.HaversineKm(lexington, louisville)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("asymmetric: %v vs %v", ab, ba)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Louisville to Lexington is roughly 112 km as the crow flies
	d := geo.HaversineKm(louisville, lexington)
	if d < 105 || d > 120 {
		t.Fatalf("louisville-lexington = %v km, want ~112", d)
	}
}

func TestHaversineTriangleInequality(t *testing.T) {
	c := geo.Point{Lat: 39.1031, Lng: -84.512} // cincinnati
	ab := geo.HaversineKm(louisville, lexington)
	bc := geo.HaversineKm(lexington, c)
	ac := geo.HaversineKm(louisville, c)
	if ac > ab+bc+1e-9 {
		t.Fatalf("triangle inequality violated: %v > %v + %v", ac, ab, bc)
	}
}

func TestBoundingBoxContainsCircle(t *testing.T) {
	const radiusKm = 25
	box := geo.BoundingBox(louisville, radiusKm)

	// walk the circle's rim; every rim point must fall inside the box
	for deg := 0; deg < 360; deg += 15 {
		rad := float64(deg) * math.Pi / 180
		p := geo.Point{
			Lat: louisville.Lat + (radiusKm/111.0)*math.Sin(rad),
			Lng: louisville.Lng + (radiusKm/(111.0*math.Cos(louisville.Lat*math.Pi/180)))*math.Cos(rad),
		}
		if p.Lat < box.MinLat || p.Lat > box.MaxLat || p.Lng < box.MinLng || p.Lng > box.MaxLng {
			t.Fatalf("rim point %+v outside box %+v", p, box)
		}
	}
}

func TestBoundingBoxLatDelta(t *testing.T) {
	box := geo.BoundingBox(geo.Point{Lat: 0, Lng: 0}, 111)
	if math.Abs(box.MaxLat-1.0) > 1e-9 || math.Abs(box.MinLat+1.0) > 1e-9 {
		t.Fatalf("111km at equator should be 1 degree of latitude, got %+v", box)
	}
	// at the equator lng delta matches lat delta
	if math.Abs(box.MaxLng-1.0) > 1e-9 {
		t.Fatalf("lng delta at equator = %v, want 1", box.MaxLng)
	}
}

func TestBoundingBoxNearPoleClampsLngDelta(t *testing.T) {
	box := geo.BoundingBox(geo.Point{Lat: 89.9999, Lng: 0}, 50)
	if math.IsInf(box.MaxLng, 0) || math.IsNaN(box.MaxLng) {
		t.Fatalf("lng bound blew up near pole: %+v", box)
	}
	if box.MaxLng > 180 || box.MinLng < -180 {
		t.Fatalf("lng delta not clamped: %+v", box)
	}
}

func TestCellRoundTripsToNearbyPoint(t *testing.T) {
	cell := geo.Cell(louisville)
	if len(cell) != 7 {
		t.Fatalf("cell length = %d, want 7", len(cell))
	}
	back := geo.Point{}
	back.Lat, back.Lng = decode(cell)
	if geo.HaversineKm(louisville, back) > 0.2 {
		t.Fatalf("cell %s decodes %v km away", cell, geo.HaversineKm(louisville, back))
	}
}
