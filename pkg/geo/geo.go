package geo

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

var (
	ErrLatitudeOutOfRange  = errors.New("latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180")
	ErrInvalidPointFormat  = errors.New("invalid point format")
)

// Point is a geographic coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// Validate checks the coordinate bounds.
func (p Point) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return ErrLatitudeOutOfRange
	}
	if p.Lon < -180 || p.Lon > 180 {
		return ErrLongitudeOutOfRange
	}
	return nil
}

// WKT renders the point in the EWKT form the listing rows persist,
// longitude first: "SRID=4326;POINT (lon lat)".
func (p Point) WKT() string {
	return fmt.Sprintf("SRID=4326;POINT (%v %v)", p.Lon, p.Lat)
}

var pointRe = regexp.MustCompile(`POINT \((-?[0-9.]+) (-?[0-9.]+)\)`)

// ParsePoint parses an EWKT point string ("SRID=4326;POINT (lon lat)").
func ParsePoint(s string) (Point, error) {
	m := pointRe.FindStringSubmatch(s)
	if m == nil {
		return Point{}, ErrInvalidPointFormat
	}
	lon, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Point{}, ErrInvalidPointFormat
	}
	lat, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Point{}, ErrInvalidPointFormat
	}
	p := Point{Lat: lat, Lon: lon}
	return p, p.Validate()
}

// DistanceKm computes the great-circle distance between two points in
// kilometers using the haversine formula.
func DistanceKm(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*
			math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLon/2)*
			math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}
