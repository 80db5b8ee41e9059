package repair

import (
	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/entities"
	"go.uber.org/zap"

	"github.com/philipparndt/dxffix/pkg/dxf"
	"github.com/philipparndt/dxffix/pkg/geometry"
)

var worldZ = core.Point{X: 0, Y: 0, Z: 1}

// Unmirror repairs entities whose extrusion direction has a negative Z
// component. Onshape emits such entities with coordinates in a mirrored
// coordinate system; mirroring them back makes downstream CAM tools
// interpret the geometry correctly. Returns the number of entities repaired
// (or, in dry-run mode, found mirrored) and the kinds of entities that could
// not be checked.
func Unmirror(ents []entities.Entity, opts Options) (int, []string) {
	log := opts.logger()
	fixed := 0
	var skipped []string

	for i, e := range ents {
		switch t := e.(type) {
		case *entities.Circle:
			if t.ExtrusionDirection.Z >= 0 {
				continue
			}
			fixed++
			if opts.DryRun {
				continue
			}
			t.Center = geometry.MirrorPoint(t.Center)
			t.ExtrusionDirection = worldZ
			log.Debug("unmirrored entity",
				zap.Int("index", i), zap.String("kind", "CIRCLE"))

		case *entities.Arc:
			if t.ExtrusionDirection.Z >= 0 {
				continue
			}
			fixed++
			if opts.DryRun {
				continue
			}
			t.Center = geometry.MirrorPoint(t.Center)
			// The mirrored arc runs the opposite way, so the angles swap
			// roles as well as being reflected.
			t.StartAngle, t.EndAngle =
				geometry.MirrorAngle(t.EndAngle), geometry.MirrorAngle(t.StartAngle)
			t.ExtrusionDirection = worldZ
			log.Debug("unmirrored entity",
				zap.Int("index", i), zap.String("kind", "ARC"))

		case *entities.Line:
			if t.ExtrusionDirection.Z >= 0 {
				continue
			}
			fixed++
			if opts.DryRun {
				continue
			}
			t.Start, t.End = geometry.MirrorPoint(t.End), geometry.MirrorPoint(t.Start)
			t.ExtrusionDirection = worldZ
			log.Debug("unmirrored entity",
				zap.Int("index", i), zap.String("kind", "LINE"))

		case *entities.Polyline:
			// No orientation information is available here; polylines are
			// scanned by the planar passes but not checked for mirroring.

		default:
			skipped = append(skipped, dxf.EntityKind(e))
		}
	}

	return fixed, skipped
}
