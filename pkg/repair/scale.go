package repair

import (
	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/entities"
	"go.uber.org/zap"

	"github.com/philipparndt/dxffix/pkg/dxf"
)

// Scale multiplies every coordinate and radius by the given factor and
// returns the number of entities scaled. Used for unit conversion, so a
// factor of 1 is a no-op.
func Scale(ents []entities.Entity, factor float64, opts Options) int {
	if factor == 1 {
		return 0
	}

	log := opts.logger()
	scaled := 0
	for i, e := range ents {
		touched := false
		dxf.EachPoint(e, func(p *core.Point) {
			touched = true
			if opts.DryRun {
				return
			}
			p.X *= factor
			p.Y *= factor
			p.Z *= factor
		})

		if !opts.DryRun {
			switch t := e.(type) {
			case *entities.Circle:
				t.Radius *= factor
			case *entities.Arc:
				t.Radius *= factor
			}
		}

		if touched {
			scaled++
			log.Debug("scaled entity",
				zap.Int("index", i), zap.String("kind", dxf.EntityKind(e)),
				zap.Float64("factor", factor))
		}
	}
	return scaled
}
