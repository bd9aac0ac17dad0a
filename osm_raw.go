package osm2lcc

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// newScanner Guesses file extension and prepares correct scanner
func newScanner(filename string, file io.Reader) (OSMScanner, error) {
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		return osmxml.New(context.Background(), file), nil
	case ".pbf":
		return osmpbf.New(context.Background(), file, 4), nil
	default:
		return nil, errors.Wrapf(ErrUnknownExtension, "extension '%s' of file '%s'", ext, filename)
	}
}

// ReadOSM Reads ways with recognized 'highway' tag and the points they reference.
//
// Ways are scanned first, then only referenced nodes are kept. Points outside of
// bounding box (if any) are dropped while ways keep all their references.
func (parser *Parser) ReadOSM() (map[int64]Point, []Way, error) {
	logger := parser.logger
	logger.Info("Opening file", zap.String("filename", parser.filename))
	file, err := os.Open(parser.filename)
	if err != nil {
		return nil, nil, errors.Wrap(err, "File open")
	}
	defer file.Close()

	/* Process ways */
	st := time.Now()
	ways := []Way{}
	nodesSeen := make(map[osm.NodeID]struct{})
	skippedWays := 0
	{
		scannerWays, err := newScanner(parser.filename, file)
		if err != nil {
			return nil, nil, err
		}
		for scannerWays.Scan() {
			obj := scannerWays.Object()
			if obj.ObjectID().Type() != osm.TypeWay {
				continue
			}
			way := obj.(*osm.Way)
			highway := way.Tags.Find("highway")
			if !parser.acceptTag(highway) {
				skippedWays++
				continue
			}
			refs := make([]int64, 0, len(way.Nodes))
			for _, node := range way.Nodes {
				refs = append(refs, int64(node.ID))
			}
			preparedWay, ok := NewWay(int64(way.ID), highway, refs)
			if !ok {
				skippedWays++
				continue
			}
			// Mark way's nodes as seen to skip unrelated nodes in further
			for _, node := range way.Nodes {
				nodesSeen[node.ID] = struct{}{}
			}
			ways = append(ways, preparedWay)
		}
		err = scannerWays.Err()
		scannerWays.Close()
		if err != nil {
			return nil, nil, errors.Wrap(err, "Scanner error on Ways")
		}
	}
	logger.Info("Ways have been processed",
		zap.Int("ways", len(ways)),
		zap.Int("skipped", skippedWays),
		zap.Duration("elapsed", time.Since(st)),
	)

	// Seek file to start
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}

	/* Process nodes */
	st = time.Now()
	nodes := make(map[int64]Point, len(nodesSeen))
	outside := 0
	{
		scannerNodes, err := newScanner(parser.filename, file)
		if err != nil {
			return nil, nil, err
		}
		for scannerNodes.Scan() {
			obj := scannerNodes.Object()
			if obj.ObjectID().Type() != osm.TypeNode {
				continue
			}
			node := obj.(*osm.Node)
			if _, ok := nodesSeen[node.ID]; !ok {
				continue
			}
			delete(nodesSeen, node.ID)
			pt := NewPointFromDegrees(int64(node.ID), node.Lat, node.Lon)
			if parser.bbox != nil && !parser.bbox.Contains(pt.Orb()) {
				outside++
				continue
			}
			nodes[pt.ID] = pt
		}
		err = scannerNodes.Err()
		scannerNodes.Close()
		if err != nil {
			return nil, nil, errors.Wrap(err, "Scanner error on Nodes")
		}
	}
	logger.Info("Nodes have been processed",
		zap.Int("nodes", len(nodes)),
		zap.Int("outside_bbox", outside),
		zap.Int("missing", len(nodesSeen)),
		zap.Duration("elapsed", time.Since(st)),
	)
	return nodes, ways, nil
}
