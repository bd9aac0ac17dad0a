package osm2lcc

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config Settings of conversion pipeline
type Config struct {
	File       string   `mapstructure:"file"`
	Out        string   `mapstructure:"out"`
	GeomFormat string   `mapstructure:"geom_format"`
	Contract   bool     `mapstructure:"contract"`
	Reduce     bool     `mapstructure:"reduce"`
	Verbose    bool     `mapstructure:"verbose"`
	BBox       string   `mapstructure:"bbox"`
	Tags       []string `mapstructure:"tags"`
}

// SetConfigDefaults Registers default values of every Config key
func SetConfigDefaults(v *viper.Viper) {
	v.SetDefault("file", "my_graph.osm.pbf")
	v.SetDefault("out", "my_graph.csv")
	v.SetDefault("geom_format", "wkt")
	v.SetDefault("contract", true)
	v.SetDefault("reduce", true)
	v.SetDefault("verbose", false)
	v.SetDefault("bbox", "")
	v.SetDefault("tags", []string{})
}

// NewConfigViper returns viper instance with defaults and OSM2LCC_ environment prefix
func NewConfigViper() *viper.Viper {
	v := viper.New()
	SetConfigDefaults(v)
	v.SetEnvPrefix("osm2lcc")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig Reads configuration from file (optional, empty path means defaults and environment only)
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return nil, errors.Wrap(err, "Can't read config file")
		}
	}
	cfg := Config{}
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "Can't decode config")
	}
	return &cfg, nil
}

// ParsedBBox returns bounding box from 'minLon,minLat,maxLon,maxLat'. Nil when not set.
func (cfg *Config) ParsedBBox() (*orb.Bound, error) {
	if strings.TrimSpace(cfg.BBox) == "" {
		return nil, nil
	}
	parts := strings.Split(cfg.BBox, ",")
	if len(parts) != 4 {
		return nil, errors.Errorf("bbox must have 4 values, got %d", len(parts))
	}
	values := make([]float64, 4)
	for i := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Bad bbox value '%s'", parts[i])
		}
		values[i] = value
	}
	bound := orb.Bound{
		Min: orb.Point{values[0], values[1]},
		Max: orb.Point{values[2], values[3]},
	}
	return &bound, nil
}

// ParserOptions returns Parser options described by configuration
func (cfg *Config) ParserOptions() ([]func(*Parser), error) {
	options := []func(*Parser){}
	if len(cfg.Tags) > 0 {
		options = append(options, WithTags(cfg.Tags))
	}
	bbox, err := cfg.ParsedBBox()
	if err != nil {
		return nil, err
	}
	if bbox != nil {
		options = append(options, WithBoundingBox(*bbox))
	}
	return options, nil
}
