// Package geo provides great-circle distance and bounding box math for
// radius search. Pure functions, no I/O; coordinate validation is the
// caller's job.
package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// earthRadiusKm is the mean earth radius used by the haversine formula
const earthRadiusKm = 6371.0

// kmPerDegreeLat approximates one degree of latitude anywhere on earth
const kmPerDegreeLat = 111.0

// cellPrecision is the geohash length attached to search rows for
// client-side map clustering (~150m cells)
const cellPrecision = 7

// Point is a lat/lng pair in degrees
type Point struct {
	Lat float64
	Lng float64
}

// Box is a rectangular lat/lng region. It always contains the search
// circle it was derived from, so rows inside the box still need a
// distance check before they can be returned.
type Box struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// HaversineKm returns the great-circle distance between a and b in km.
// Symmetric, zero for identical points.
func HaversineKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// BoundingBox returns the box around center that contains the circle of
// radiusKm. Longitude degrees compress toward the poles, so the lng
// delta grows with |lat|; it is clamped to 180 so a center near a pole
// degrades to "all longitudes" instead of producing Inf bounds.
func BoundingBox(center Point, radiusKm float64) Box {
	latDelta := radiusKm / kmPerDegreeLat

	lngDelta := 180.0
	if cos := math.Cos(center.Lat * math.Pi / 180); cos > 0 {
		lngDelta = radiusKm / (kmPerDegreeLat * cos)
		if lngDelta > 180 {
			lngDelta = 180
		}
	}

	return Box{
		MinLat: center.Lat - latDelta,
		MaxLat: center.Lat + latDelta,
		MinLng: center.Lng - lngDelta,
		MaxLng: center.Lng + lngDelta,
	}
}

// Cell returns the geohash cell id for p at clustering precision
func Cell(p Point) string {
	return geohash.EncodeWithPrecision(p.Lat, p.Lng, cellPrecision)
}
