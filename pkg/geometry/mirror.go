package geometry

import (
	"math"

	"github.com/rpaloschi/dxf-go/core"
)

// MirrorPoint converts a point defined in a mirrored entity coordinate
// system (extrusion direction 0,0,-1) back to world coordinates: mirrored
// about the Y axis with Z negated.
func MirrorPoint(p core.Point) core.Point {
	return core.Point{X: -p.X, Y: p.Y, Z: -p.Z}
}

// MirrorAngle reflects an angle in degrees about the Y axis.
// The result is normalized to [0, 360).
func MirrorAngle(deg float64) float64 {
	return NormalizeAngle(180 - deg)
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
