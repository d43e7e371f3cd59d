package graph

import (
	"log/slog"
)

// GraphOption configures graph construction behavior.
type GraphOption func(*graphConfig)

// graphConfig holds internal configuration for a Graph.
type graphConfig struct {
	logger *slog.Logger
}

// WithLogger enables debug logging for graph operations: edge creation,
// node removal, and duplicate-identifier detection. AddNode does not log.
//
// Pass nil to disable logging (the default).
func WithLogger(logger *slog.Logger) GraphOption {
	return func(cfg *graphConfig) {
		cfg.logger = logger
	}
}
