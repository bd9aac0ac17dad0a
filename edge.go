package osm2lcc

import "math"

const (
	// metersPerDegreeLat Planar approximation of meters per one degree of latitude
	metersPerDegreeLat = 111229
	// metersPerDegreeLon Planar approximation of meters per one degree of longitude
	metersPerDegreeLon = 71695
)

// Edge Cost of traversing segment tail -> head
type Edge struct {
	Cost uint64 // seconds
	// Flag is reserved for preprocessing stages. Always false after construction.
	Flag bool
}

// segmentDistance returns planar approximation of distance between two points (meters).
//
// Note: it is not a great-circle distance, error grows with latitude
func segmentDistance(tail, head Point) float64 {
	dLat := float64((head.Lat-tail.Lat)*metersPerDegreeLat) / coordinatesScale
	dLon := float64((head.Lon-tail.Lon)*metersPerDegreeLon) / coordinatesScale
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// segmentCost returns seconds needed to traverse segment with given speed (km/h). Result is floored.
//
// Very short segments on fast roads floor to zero cost. Speed must be positive.
func segmentCost(tail, head Point, speed uint64) uint64 {
	metersPerSecond := float64(speed) * 5.0 / 18.0
	return uint64(segmentDistance(tail, head) / metersPerSecond)
}
