// Package geo contains the geographic value objects stored in the location
// document of a shipment: the pickup and delivery points and the computed
// route between them.
package geo

import (
	"orgtrack/internal/pkg/errs"
)

// Point is a WGS84 coordinate pair. Longitude comes first in the GeoJSON
// payloads exchanged with the route provider, so the accessors keep that
// order too.
type Point struct {
	longitude float64
	latitude  float64
}

// NewPoint creates a validated coordinate pair.
func NewPoint(longitude, latitude float64) (Point, error) {
	if longitude < -180 || longitude > 180 {
		return Point{}, errs.NewValueIsOutOfRangeError("longitude", longitude, -180, 180)
	}
	if latitude < -90 || latitude > 90 {
		return Point{}, errs.NewValueIsOutOfRangeError("latitude", latitude, -90, 90)
	}
	return Point{longitude: longitude, latitude: latitude}, nil
}

// Longitude returns the longitude in degrees.
func (p Point) Longitude() float64 {
	return p.longitude
}

// Latitude returns the latitude in degrees.
func (p Point) Latitude() float64 {
	return p.latitude
}

// IsEqual compares two points exactly.
func (p Point) IsEqual(other Point) bool {
	return p.longitude == other.longitude && p.latitude == other.latitude
}

// Route is the driving route between two points as returned by the route
// provider: a GeoJSON LineString geometry plus summary figures. The geometry
// is stored as-is and served back to clients for map rendering.
type Route struct {
	// Geometry holds the LineString coordinates, longitude first.
	Geometry [][]float64
	// DistanceMeters is the total route length.
	DistanceMeters float64
	// DurationSeconds is the estimated driving time.
	DurationSeconds float64
}

// Location is the geographic document of one shipment: where to pick up,
// where to deliver, and the computed route. It lives in the document store
// and is referenced from the shipment by an opaque id.
type Location struct {
	OriginName      string
	Origin          Point
	DestinationName string
	Destination     Point
	Route           Route
}

// NewLocation creates a location document. The route may be zero when the
// route provider was unavailable at creation time.
func NewLocation(originName string, origin Point, destinationName string, destination Point, route Route) Location {
	return Location{
		OriginName:      originName,
		Origin:          origin,
		DestinationName: destinationName,
		Destination:     destination,
		Route:           route,
	}
}
