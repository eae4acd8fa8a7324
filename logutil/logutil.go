// Package logutil builds the zap logger used for diagnostics.
package logutil

import "go.uber.org/zap"

// New returns a development logger writing to stderr when verbose is set.
// Otherwise it returns a no-op logger, leaving stderr to the error report.
func New(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
