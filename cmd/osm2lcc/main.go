package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/LdDl/osm2lcc"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	configFile = pflag.String("config", "", "Path to configuration file (YAML/JSON/TOML). Flags override it")
)

func main() {
	pflag.String("file", "my_graph.osm.pbf", "Filename of *.osm.pbf or *.osm file")
	pflag.String("out", "my_graph.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file. E.g.: if file name is 'map.csv' then 3 files will be produced: 'map.csv' (edges), 'map_vertices.csv', 'map_shortcuts.csv'")
	pflag.String("geom_format", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	pflag.Bool("contract", true, "Prepare contraction hierarchies?")
	pflag.Bool("reduce", true, "Reduce network to its largest connected component?")
	pflag.Bool("verbose", false, "Debug logging")
	pflag.String("bbox", "", "Bounding box 'minLon,minLat,maxLon,maxLat'. Points outside are dropped")
	pflag.StringSlice("tags", nil, "Subset of 'highway' values to keep (separated by commas). Empty means every supported value")
	pflag.Parse()

	v := osm2lcc.NewConfigViper()
	err := v.BindPFlags(pflag.CommandLine)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	cfg, err := osm2lcc.LoadConfig(v, *configFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger, err := osm2lcc.NewLogger(cfg.Verbose)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("Conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *osm2lcc.Config, logger *zap.Logger) error {
	options, err := cfg.ParserOptions()
	if err != nil {
		return err
	}
	options = append(options, osm2lcc.WithLogger(logger))
	parser := osm2lcc.NewParser(cfg.File, options...)
	logger.Debug(parser.String())

	network, err := parser.CreateNetwork(cfg.Reduce)
	if err != nil {
		return err
	}

	err = network.ExportToCSV(cfg.Out, osm2lcc.ParseGeomFormat(cfg.GeomFormat))
	if err != nil {
		return err
	}

	if !cfg.Contract {
		return nil
	}
	graph, err := network.ToContractionHierarchies(true, logger)
	if err != nil {
		return err
	}
	fnamePart := strings.Split(cfg.Out, ".csv")
	fnameShortcuts := fnamePart[0] + "_shortcuts.csv"
	// 	from_vertex_id - int64, ID of source vertex
	// 	to_vertex_id - int64, ID of target vertex
	// 	weight - float64, Weight of an edge (seconds)
	// 	via_vertex_id - int64, ID of vertex through which the shortcut exists
	err = graph.ExportShortcutsToFile(fnameShortcuts)
	if err != nil {
		return err
	}
	logger.Info("Shortcuts have been written", zap.String("filename", fnameShortcuts))
	return nil
}
