package osm2lcc

import (
	"fmt"

	"github.com/paulmach/orb"
)

// coordinatesScale Fixed-point scale of stored latitude/longitude
const coordinatesScale = 1e7

// Point Road network vertex. Coordinates are fixed-point degrees scaled by 10^7.
//
// Point is comparable: two points are the same only when ID, Lat and Lon all match.
type Point struct {
	ID  int64
	Lat int64
	Lon int64
}

// NewPointFromDegrees Creates point from floating degrees. Fractions beyond 10^-7 are truncated toward zero.
func NewPointFromDegrees(id int64, lat, lon float64) Point {
	return Point{
		ID:  id,
		Lat: int64(lat * coordinatesScale),
		Lon: int64(lon * coordinatesScale),
	}
}

// Less Orders points by (ID, Lat, Lon)
func (pt Point) Less(other Point) bool {
	if pt.ID != other.ID {
		return pt.ID < other.ID
	}
	if pt.Lat != other.Lat {
		return pt.Lat < other.Lat
	}
	return pt.Lon < other.Lon
}

// LatDegrees returns latitude in degrees
func (pt Point) LatDegrees() float64 {
	return float64(pt.Lat) / coordinatesScale
}

// LonDegrees returns longitude in degrees
func (pt Point) LonDegrees() float64 {
	return float64(pt.Lon) / coordinatesScale
}

// Orb returns point as orb.Point (X is longitude, Y is latitude)
func (pt Point) Orb() orb.Point {
	return orb.Point{pt.LonDegrees(), pt.LatDegrees()}
}

func (pt Point) String() string {
	return fmt.Sprintf("ID: %d | Lon: %f | Lat: %f", pt.ID, pt.LonDegrees(), pt.LatDegrees())
}
