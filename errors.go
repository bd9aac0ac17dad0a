package osm2lcc

import "github.com/pkg/errors"

var (
	// ErrUnknownExtension File extension is not handled by any OSM scanner
	ErrUnknownExtension = errors.New("file extension is not handled")
	// ErrEmptyNetwork Operation needs at least one node
	ErrEmptyNetwork = errors.New("road network has no nodes")
)
