// Package repair contains the validation and repair passes applied to a
// parsed DXF drawing before it is handed to a waterjet. Every pass walks the
// flat entity list once and returns a defect or repair count.
package repair

import "go.uber.org/zap"

// DefaultTolerance is used for Z comparisons when none is configured.
const DefaultTolerance = 1e-6

// Options control the repair passes.
type Options struct {
	// Tolerance for Z-plane and coordinate comparisons.
	Tolerance float64

	// DryRun counts defects without modifying any entity.
	DryRun bool

	// Logger receives per-entity debug output. Nil disables it.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) tolerance() float64 {
	if o.Tolerance <= 0 {
		return DefaultTolerance
	}
	return o.Tolerance
}
