package osm2lcc

import (
	"go.uber.org/zap"
)

// NewLogger returns development logger (debug level, console encoding) when verbose
// and production logger otherwise
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
