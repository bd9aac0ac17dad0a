package osm2lcc

// Way Chain of point references with free-flow speed derived from its 'highway' tag
type Way struct {
	ID    int64
	Speed uint64 // km/h
	Refs  []int64
}

// NewWay Creates way for the given 'highway' label. Second value is false when label is not recognized.
func NewWay(id int64, highway string, refs []int64) (Way, bool) {
	speed, ok := SpeedByHighway(highway)
	if !ok {
		return Way{}, false
	}
	way := Way{
		ID:    id,
		Speed: speed,
		Refs:  make([]int64, len(refs)),
	}
	copy(way.Refs, refs)
	return way, true
}
