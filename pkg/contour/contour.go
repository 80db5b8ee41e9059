// Package contour checks that a drawing forms closed toolpaths. A waterjet
// follows closed loops; an endpoint that is not met by another entity end
// means the exported geometry has a gap the CAM software will choke on.
package contour

import (
	"math"

	"github.com/asim/quadtree"
	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/entities"

	"github.com/philipparndt/dxffix/pkg/geometry"
)

const defaultTolerance = 1e-6

// endpoint accumulates how many entity ends meet at one location.
type endpoint struct {
	x, y, z float64
	count   int
}

// OpenEndpoints returns the locations where an odd number of entity ends
// meet, i.e. the loose ends of open contours. Endpoints closer together
// than the tolerance are considered connected. Circles are closed by
// definition and are not considered.
func OpenEndpoints(ents []entities.Entity, tolerance float64) []core.Point {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	pts := gatherEndpoints(ents, tolerance)
	if len(pts) == 0 {
		return nil
	}

	tree := newEndpointTree(pts)
	var records []*endpoint
	for _, p := range pts {
		probe := quadtree.NewPoint(p.X, p.Y, nil)
		near := tree.KNearest(
			quadtree.NewAABB(probe, quadtree.NewPoint(tolerance, tolerance, nil)), 1, nil)

		if len(near) > 0 {
			nx, ny := near[0].Coordinates()
			if math.Hypot(nx-p.X, ny-p.Y) <= tolerance {
				near[0].Data().(*endpoint).count++
				continue
			}
		}

		rec := &endpoint{x: p.X, y: p.Y, z: p.Z, count: 1}
		records = append(records, rec)
		tree.Insert(quadtree.NewPoint(p.X, p.Y, rec))
	}

	var open []core.Point
	for _, rec := range records {
		if rec.count%2 == 1 {
			open = append(open, core.Point{X: rec.x, Y: rec.y, Z: rec.z})
		}
	}
	return open
}

func gatherEndpoints(ents []entities.Entity, tolerance float64) []core.Point {
	var pts []core.Point
	for _, e := range ents {
		switch t := e.(type) {
		case *entities.Line:
			pts = append(pts, t.Start, t.End)
		case *entities.Arc:
			start, end := geometry.ArcEndpoints(t.Center, t.Radius, t.StartAngle, t.EndAngle)
			pts = append(pts, start, end)
		case *entities.Polyline:
			if len(t.Vertices) < 2 {
				continue
			}
			first := t.Vertices[0].Location
			last := t.Vertices[len(t.Vertices)-1].Location
			if math.Hypot(first.X-last.X, first.Y-last.Y) <= tolerance {
				continue // closed polyline
			}
			pts = append(pts, first, last)
		}
	}
	return pts
}

func newEndpointTree(pts []core.Point) *quadtree.QuadTree {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	midX := (maxX + minX) / 2
	midY := (maxY + minY) / 2
	// Margin keeps endpoints on the hull inside the tree bounds.
	halfWidth := maxX - midX + 10
	halfHeight := maxY - midY + 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	return quadtree.New(aabb, 0, nil)
}
