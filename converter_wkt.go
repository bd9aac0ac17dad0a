package osm2lcc

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// PrepareWKTLinestring returns WKT representation of segment tail -> head
func PrepareWKTLinestring(tail, head Point) string {
	return wkt.MarshalString(orb.LineString{tail.Orb(), head.Orb()})
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt Point) string {
	return wkt.MarshalString(pt.Orb())
}
