package osm2lcc

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// Parser Reads OSM file into points and ways
type Parser struct {
	filename string
	tags     []string
	bbox     *orb.Bound
	logger   *zap.Logger
}

func (parser *Parser) String() string {
	bbox := "none"
	if parser.bbox != nil {
		bbox = fmt.Sprintf("%v", *parser.bbox)
	}
	return fmt.Sprintf(`
Network parser parameters:
	filename: '%s'
	tags: '%s'
	bbox: %s
	`,
		parser.filename,
		strings.Join(parser.tags, ","),
		bbox,
	)
}

func NewParser(fileName string, options ...func(*Parser)) *Parser {
	parser := &Parser{
		filename: fileName,
		logger:   zap.NewNop(),
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// WithTags Keeps only ways whose 'highway' tag is in the given list. Labels unknown to
// speed table are dropped anyway.
func WithTags(tags []string) func(*Parser) {
	return func(parser *Parser) {
		parser.tags = tags
	}
}

// WithBoundingBox Keeps only points inside the given bound
func WithBoundingBox(bbox orb.Bound) func(*Parser) {
	return func(parser *Parser) {
		parser.bbox = &bbox
	}
}

func WithLogger(logger *zap.Logger) func(*Parser) {
	return func(parser *Parser) {
		if logger != nil {
			parser.logger = logger
		}
	}
}

func (parser *Parser) acceptTag(tag string) bool {
	if len(parser.tags) == 0 {
		return true
	}
	for i := range parser.tags {
		if parser.tags[i] == tag {
			return true
		}
	}
	return false
}
