package osm2lcc

// HighwayType is a recognized value of OSM 'highway' tag
type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_TRUNK
	HIGHWAY_PRIMARY
	HIGHWAY_SECONDARY
	HIGHWAY_TERTIARY
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_ROAD
	HIGHWAY_UNCLASSIFIED
	HIGHWAY_RESIDENTIAL
	HIGHWAY_UNSURFACED
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"motorway", "trunk", "primary", "secondary", "tertiary", "motorway_link", "trunk_link", "primary_link", "secondary_link", "road", "unclassified", "residential", "unsurfaced", "living_street", "service"}[iotaIdx-1]
}

// Speed returns free-flow speed (km/h) for the highway type
func (iotaIdx HighwayType) Speed() uint64 {
	return speedByHighway[iotaIdx]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return 0
}

// SpeedByHighway returns free-flow speed (km/h) for the given 'highway' label.
// Second value is false when label is not recognized: way with such label must be dropped.
func SpeedByHighway(label string) (uint64, bool) {
	highway := getHighwayType(label)
	if highway == 0 {
		return 0, false
	}
	return highway.Speed(), true
}

var (
	speedByHighway = map[HighwayType]uint64{
		HIGHWAY_MOTORWAY:       110,
		HIGHWAY_TRUNK:          110,
		HIGHWAY_PRIMARY:        70,
		HIGHWAY_SECONDARY:      60,
		HIGHWAY_TERTIARY:       50,
		HIGHWAY_MOTORWAY_LINK:  50,
		HIGHWAY_TRUNK_LINK:     50,
		HIGHWAY_PRIMARY_LINK:   50,
		HIGHWAY_SECONDARY_LINK: 50,
		HIGHWAY_ROAD:           40,
		HIGHWAY_UNCLASSIFIED:   40,
		HIGHWAY_RESIDENTIAL:    30,
		HIGHWAY_UNSURFACED:     30,
		HIGHWAY_LIVING_STREET:  10,
		HIGHWAY_SERVICE:        5,
	}

	highwaysTypes = map[string]HighwayType{
		"motorway":       HIGHWAY_MOTORWAY,
		"trunk":          HIGHWAY_TRUNK,
		"primary":        HIGHWAY_PRIMARY,
		"secondary":      HIGHWAY_SECONDARY,
		"tertiary":       HIGHWAY_TERTIARY,
		"motorway_link":  HIGHWAY_MOTORWAY_LINK,
		"trunk_link":     HIGHWAY_TRUNK_LINK,
		"primary_link":   HIGHWAY_PRIMARY_LINK,
		"secondary_link": HIGHWAY_SECONDARY_LINK,
		"road":           HIGHWAY_ROAD,
		"unclassified":   HIGHWAY_UNCLASSIFIED,
		"residential":    HIGHWAY_RESIDENTIAL,
		"unsurfaced":     HIGHWAY_UNSURFACED,
		"living_street":  HIGHWAY_LIVING_STREET,
		"service":        HIGHWAY_SERVICE,
	}
)
