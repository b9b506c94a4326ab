// Package buildlog builds the structured logger used across a build
// run (spec §2's ambient logging layer), tagging every entry with a
// per-run ID so concurrent or repeated builds' log lines can be told
// apart.
package buildlog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New constructs a zap logger for one build run. verbose selects
// development-mode (human-readable, debug-level) output; otherwise a
// production (JSON, info-level) encoder is used. Every entry carries
// a run_id field unique to this invocation.
func New(verbose bool) (*zap.Logger, error) {
	var base *zap.Logger
	var err error
	if verbose {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return base.With(zap.String("run_id", uuid.New().String())), nil
}
