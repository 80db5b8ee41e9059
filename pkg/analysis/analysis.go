// Package analysis computes read-only statistics about a parsed DXF drawing.
package analysis

import (
	"fmt"

	"github.com/rpaloschi/dxf-go/entities"

	"github.com/philipparndt/dxffix/pkg/dxf"
	"github.com/philipparndt/dxffix/pkg/geometry"
	"github.com/philipparndt/dxffix/pkg/repair"
)

// Report contains the results of analyzing a drawing
type Report struct {
	EntityCount int
	Counts      map[string]int
	Mirrored    int
	Planes      []float64
	OffPlane    int
	Bounds      geometry.BoundingBox
}

// Analyze inspects the entity list without modifying it
func Analyze(ents []entities.Entity, tolerance float64) *Report {
	opts := repair.Options{Tolerance: tolerance, DryRun: true}

	mirrored, _ := repair.Unmirror(ents, opts)

	report := &Report{
		EntityCount: len(ents),
		Counts:      make(map[string]int),
		Mirrored:    mirrored,
		Planes:      repair.ZPlanes(ents, tolerance),
		OffPlane:    repair.Flatten(ents, opts),
		Bounds:      dxf.Extents(ents),
	}
	for _, e := range ents {
		report.Counts[dxf.EntityKind(e)]++
	}
	return report
}

// Coplanar reports whether all geometry lies in a single Z plane
func (r *Report) Coplanar() bool {
	return len(r.Planes) <= 1
}

// AtZero reports whether all geometry lies at Z=0
func (r *Report) AtZero() bool {
	return r.OffPlane == 0
}

// Defects returns the total number of defects found
func (r *Report) Defects() int {
	defects := r.Mirrored + r.OffPlane
	if !r.Coplanar() {
		defects += len(r.Planes) - 1
	}
	return defects
}

// FormatPlanes renders the Z planes for diagnostics
func (r *Report) FormatPlanes() string {
	return fmt.Sprintf("%v", r.Planes)
}
