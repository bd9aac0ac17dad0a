package osm2lcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeedByHighway(t *testing.T) {
	correct := map[string]uint64{
		"motorway":       110,
		"trunk":          110,
		"primary":        70,
		"secondary":      60,
		"tertiary":       50,
		"motorway_link":  50,
		"trunk_link":     50,
		"primary_link":   50,
		"secondary_link": 50,
		"road":           40,
		"unclassified":   40,
		"residential":    30,
		"unsurfaced":     30,
		"living_street":  10,
		"service":        5,
	}
	for label, speed := range correct {
		got, ok := SpeedByHighway(label)
		assert.True(t, ok, label)
		assert.Equal(t, speed, got, label)
		assert.Equal(t, label, getHighwayType(label).String())
	}
	for _, label := range []string{"", "footway", "tertiary_link", "cycleway", "Motorway"} {
		_, ok := SpeedByHighway(label)
		assert.False(t, ok, label)
	}
}

func TestNewWay(t *testing.T) {
	refs := []int64{1, 2, 3}
	way, ok := NewWay(10, "living_street", refs)
	assert.True(t, ok)
	assert.Equal(t, Way{ID: 10, Speed: 10, Refs: []int64{1, 2, 3}}, way)
	refs[0] = 42
	assert.Equal(t, int64(1), way.Refs[0], "way must own its references")

	_, ok = NewWay(11, "steps", refs)
	assert.False(t, ok)
}
