package repair

import (
	"math"
	"sort"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/entities"
	"go.uber.org/zap"

	"github.com/philipparndt/dxffix/pkg/dxf"
)

// ZPlanes returns the distinct Z planes the geometry lies in, sorted
// ascending. Values closer together than the tolerance are treated as the
// same plane. A healthy export returns exactly one plane: 0.
func ZPlanes(ents []entities.Entity, tolerance float64) []float64 {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var zs []float64
	for _, e := range ents {
		dxf.EachPoint(e, func(p *core.Point) {
			zs = append(zs, p.Z)
		})
	}
	if len(zs) == 0 {
		return nil
	}

	sort.Float64s(zs)
	planes := []float64{zs[0]}
	for _, z := range zs[1:] {
		if z-planes[len(planes)-1] > tolerance {
			planes = append(planes, z)
		}
	}
	return planes
}

// Flatten moves all geometry to the Z=0 plane and returns the number of
// entities that had to be moved. In dry-run mode entities are only counted.
func Flatten(ents []entities.Entity, opts Options) int {
	log := opts.logger()
	tol := opts.tolerance()
	moved := 0

	for i, e := range ents {
		offPlane := false
		dxf.EachPoint(e, func(p *core.Point) {
			if math.Abs(p.Z) > tol {
				offPlane = true
			}
			if !opts.DryRun {
				p.Z = 0
			}
		})
		if offPlane {
			moved++
			log.Debug("flattened entity",
				zap.Int("index", i), zap.String("kind", dxf.EntityKind(e)))
		}
	}
	return moved
}
