package osm2lcc

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// GeomFormat Output geometry representation
type GeomFormat uint16

const (
	GEOM_WKT = GeomFormat(iota + 1)
	GEOM_GEOJSON
)

func (iotaIdx GeomFormat) String() string {
	return [...]string{"wkt", "geojson"}[iotaIdx-1]
}

// ParseGeomFormat returns geometry format by its name. Anything but 'geojson' is WKT.
func ParseGeomFormat(str string) GeomFormat {
	if strings.ToLower(str) == "geojson" {
		return GEOM_GEOJSON
	}
	return GEOM_WKT
}

// ExportToCSV Writes edges to 'fname' and vertices to 'fname' with '_vertices' suffix.
// E.g.: 'map.csv' produces 'map.csv' and 'map_vertices.csv'
func (network *RoadNetwork) ExportToCSV(fname string, geomFormat GeomFormat) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameEdges := fnameParts[0] + ".csv"
	fnameVertices := fnameParts[0] + "_vertices.csv"

	err := network.exportEdgesToCSV(fnameEdges, geomFormat)
	if err != nil {
		return errors.Wrap(err, "Can't export edges")
	}

	err = network.exportVerticesToCSV(fnameVertices, geomFormat)
	if err != nil {
		return errors.Wrap(err, "Can't export vertices")
	}
	return nil
}

func (network *RoadNetwork) exportEdgesToCSV(fname string, geomFormat GeomFormat) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"from_vertex_id", "to_vertex_id", "cost_seconds", "flag", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	network.ForEachEdge(func(tailID, headID int64, edge Edge) {
		if err != nil {
			return
		}
		tail, head := network.nodes[tailID], network.nodes[headID]
		geomStr := PrepareWKTLinestring(tail, head)
		if geomFormat == GEOM_GEOJSON {
			geomStr, err = PrepareGeoJSONLinestring(tail, head)
			if err != nil {
				return
			}
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", tailID),
			fmt.Sprintf("%d", headID),
			fmt.Sprintf("%d", edge.Cost),
			fmt.Sprintf("%t", edge.Flag),
			geomStr,
		})
	})
	if err != nil {
		return errors.Wrap(err, "Can't write edge")
	}
	return nil
}

func (network *RoadNetwork) exportVerticesToCSV(fname string, geomFormat GeomFormat) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"vertex_id", "lat", "lon", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, id := range network.rawNodeIDs {
		node := network.nodes[id]
		geomStr := PrepareWKTPoint(node)
		if geomFormat == GEOM_GEOJSON {
			geomStr, err = PrepareGeoJSONPoint(node)
			if err != nil {
				return err
			}
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", node.Lat),
			fmt.Sprintf("%d", node.Lon),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write vertex")
		}
	}
	return nil
}
