package osm2lcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPointFromDegrees(t *testing.T) {
	pt := NewPointFromDegrees(7, 55.75, -37.5)
	assert.Equal(t, Point{ID: 7, Lat: 557500000, Lon: -375000000}, pt)
	assert.Equal(t, 55.75, pt.LatDegrees())
	assert.Equal(t, -37.5, pt.LonDegrees())
	assert.Equal(t, -37.5, pt.Orb().Lon())
	assert.Equal(t, 55.75, pt.Orb().Lat())
}

func TestPointIdentity(t *testing.T) {
	a := Point{ID: 1, Lat: 10, Lon: 20}
	b := Point{ID: 1, Lat: 10, Lon: 21}
	set := map[Point]struct{}{a: {}, b: {}, {ID: 1, Lat: 10, Lon: 20}: {}}
	assert.Len(t, set, 2)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, Point{ID: 0, Lat: 99}.Less(a))
	assert.True(t, Point{ID: 1, Lat: 9, Lon: 99}.Less(a))
	assert.False(t, a.Less(a))
}
