package geometry

import (
	"math"

	"github.com/rpaloschi/dxf-go/core"
)

// ArcEndpoints returns the start and end points of a circular arc given its
// center, radius and start/end angles in degrees. DXF arcs always run
// counter-clockwise from the start angle to the end angle.
func ArcEndpoints(center core.Point, radius, startAngle, endAngle float64) (core.Point, core.Point) {
	return pointOnCircle(center, radius, startAngle), pointOnCircle(center, radius, endAngle)
}

func pointOnCircle(center core.Point, radius, deg float64) core.Point {
	rad := deg * math.Pi / 180
	return core.Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
		Z: center.Z,
	}
}
