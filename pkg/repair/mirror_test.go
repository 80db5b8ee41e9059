package repair

import (
	"math"
	"testing"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/entities"
)

var mirrored = core.Point{X: 0, Y: 0, Z: -1}

func TestUnmirrorCircle(t *testing.T) {
	circle := &entities.Circle{
		Center:             core.Point{X: 10, Y: 5, Z: -1},
		Radius:             2,
		ExtrusionDirection: mirrored,
	}

	fixed, skipped := Unmirror([]entities.Entity{circle}, Options{})
	if fixed != 1 {
		t.Fatalf("expected 1 repair, got %d", fixed)
	}
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped kinds: %v", skipped)
	}

	expected := core.Point{X: -10, Y: 5, Z: 1}
	if circle.Center != expected {
		t.Errorf("center not mirrored: expected %v, got %v", expected, circle.Center)
	}
	if circle.ExtrusionDirection != (core.Point{X: 0, Y: 0, Z: 1}) {
		t.Errorf("extrusion direction not reset: %v", circle.ExtrusionDirection)
	}
	if circle.Radius != 2 {
		t.Errorf("radius must not change, got %v", circle.Radius)
	}
}

func TestUnmirrorArcSwapsAngles(t *testing.T) {
	arc := &entities.Arc{
		Center:             core.Point{X: 1, Y: 2, Z: 0},
		Radius:             5,
		StartAngle:         30,
		EndAngle:           120,
		ExtrusionDirection: mirrored,
	}

	fixed, _ := Unmirror([]entities.Entity{arc}, Options{})
	if fixed != 1 {
		t.Fatalf("expected 1 repair, got %d", fixed)
	}

	// new start = mirror(old end), new end = mirror(old start)
	if math.Abs(arc.StartAngle-60) > 1e-10 {
		t.Errorf("expected start angle 60, got %v", arc.StartAngle)
	}
	if math.Abs(arc.EndAngle-150) > 1e-10 {
		t.Errorf("expected end angle 150, got %v", arc.EndAngle)
	}
	if arc.Center != (core.Point{X: -1, Y: 2, Z: 0}) {
		t.Errorf("center not mirrored: %v", arc.Center)
	}
}

func TestUnmirrorLineSwapsEndpoints(t *testing.T) {
	line := &entities.Line{
		Start:              core.Point{X: 1, Y: 1, Z: 0},
		End:                core.Point{X: 4, Y: 2, Z: 0},
		ExtrusionDirection: mirrored,
	}

	fixed, _ := Unmirror([]entities.Entity{line}, Options{})
	if fixed != 1 {
		t.Fatalf("expected 1 repair, got %d", fixed)
	}

	// Both endpoints mirror; the swap keeps the drawing direction intact.
	if line.Start != (core.Point{X: -4, Y: 2, Z: 0}) {
		t.Errorf("unexpected start: %v", line.Start)
	}
	if line.End != (core.Point{X: -1, Y: 1, Z: 0}) {
		t.Errorf("unexpected end: %v", line.End)
	}
}

func TestUnmirrorLeavesHealthyEntitiesAlone(t *testing.T) {
	circle := &entities.Circle{
		Center:             core.Point{X: 3, Y: 4, Z: 0},
		ExtrusionDirection: core.Point{X: 0, Y: 0, Z: 1},
	}
	line := &entities.Line{
		Start: core.Point{X: 0, Y: 0, Z: 0},
		End:   core.Point{X: 1, Y: 0, Z: 0},
	}

	fixed, _ := Unmirror([]entities.Entity{circle, line}, Options{})
	if fixed != 0 {
		t.Fatalf("expected no repairs, got %d", fixed)
	}
	if circle.Center != (core.Point{X: 3, Y: 4, Z: 0}) {
		t.Errorf("healthy circle was modified: %v", circle.Center)
	}
}

func TestUnmirrorDryRunDoesNotModify(t *testing.T) {
	circle := &entities.Circle{
		Center:             core.Point{X: 10, Y: 5, Z: -1},
		ExtrusionDirection: mirrored,
	}

	fixed, _ := Unmirror([]entities.Entity{circle}, Options{DryRun: true})
	if fixed != 1 {
		t.Fatalf("expected 1 defect counted, got %d", fixed)
	}
	if circle.Center != (core.Point{X: 10, Y: 5, Z: -1}) {
		t.Errorf("dry run modified the entity: %v", circle.Center)
	}
	if circle.ExtrusionDirection != mirrored {
		t.Errorf("dry run reset the extrusion direction: %v", circle.ExtrusionDirection)
	}
}

func TestUnmirrorReportsUncheckedKinds(t *testing.T) {
	_, skipped := Unmirror([]entities.Entity{&entities.Spline{}}, Options{})
	if len(skipped) != 1 || skipped[0] != "SPLINE" {
		t.Errorf("expected SPLINE to be reported, got %v", skipped)
	}
}
