package osm2lcc

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// PrepareGeoJSONLinestring returns GeoJSON representation of segment tail -> head
func PrepareGeoJSONLinestring(tail, head Point) (string, error) {
	b, err := geojson.NewLineStringGeometry(lineCoordinates(tail, head)).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can't convert linestring to GeoJSON")
	}
	return string(b), nil
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt Point) (string, error) {
	b, err := geojson.NewPointGeometry([]float64{pt.LonDegrees(), pt.LatDegrees()}).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can't convert point to GeoJSON")
	}
	return string(b), nil
}

// GeoJSON returns feature collection with one LineString per road segment.
//
// Both directions share the same cost so only tail <= head half is exported.
func (network *RoadNetwork) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	network.ForEachEdge(func(tailID, headID int64, edge Edge) {
		if tailID > headID {
			return
		}
		feature := geojson.NewLineStringFeature(lineCoordinates(network.nodes[tailID], network.nodes[headID]))
		feature.SetProperty("from", tailID)
		feature.SetProperty("to", headID)
		feature.SetProperty("cost", edge.Cost)
		fc.AddFeature(feature)
	})
	return fc
}

func lineCoordinates(tail, head Point) [][]float64 {
	return [][]float64{
		{tail.LonDegrees(), tail.LatDegrees()},
		{head.LonDegrees(), head.LatDegrees()},
	}
}
