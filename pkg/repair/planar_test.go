package repair

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/entities"
)

func TestZPlanes(t *testing.T) {
	ents := []entities.Entity{
		&entities.Circle{Center: core.Point{X: 0, Y: 0, Z: 0}},
		&entities.Arc{Center: core.Point{X: 1, Y: 1, Z: 2.5}},
		&entities.Line{
			Start: core.Point{X: 0, Y: 0, Z: 0},
			End:   core.Point{X: 1, Y: 0, Z: 2.5},
		},
	}

	planes := ZPlanes(ents, 1e-6)
	if diff := cmp.Diff([]float64{0, 2.5}, planes); diff != "" {
		t.Errorf("unexpected planes (-want +got):\n%s", diff)
	}
}

func TestZPlanesToleranceGroups(t *testing.T) {
	ents := []entities.Entity{
		&entities.Circle{Center: core.Point{Z: 0}},
		&entities.Circle{Center: core.Point{Z: 1e-9}},
	}

	planes := ZPlanes(ents, 1e-6)
	if len(planes) != 1 {
		t.Errorf("values within tolerance should collapse into one plane, got %v", planes)
	}
}

func TestZPlanesEmpty(t *testing.T) {
	if planes := ZPlanes(nil, 1e-6); planes != nil {
		t.Errorf("expected nil planes for empty drawing, got %v", planes)
	}
}

func TestFlatten(t *testing.T) {
	circle := &entities.Circle{Center: core.Point{X: 1, Y: 2, Z: 3}}
	line := &entities.Line{
		Start: core.Point{X: 0, Y: 0, Z: 0},
		End:   core.Point{X: 5, Y: 0, Z: 0},
	}

	moved := Flatten([]entities.Entity{circle, line}, Options{})
	if moved != 1 {
		t.Fatalf("expected 1 entity moved, got %d", moved)
	}
	if circle.Center.Z != 0 {
		t.Errorf("circle not flattened: %v", circle.Center)
	}
	if circle.Center.X != 1 || circle.Center.Y != 2 {
		t.Errorf("flatten must not touch X/Y: %v", circle.Center)
	}
}

func TestFlattenDryRun(t *testing.T) {
	circle := &entities.Circle{Center: core.Point{X: 1, Y: 2, Z: 3}}

	moved := Flatten([]entities.Entity{circle}, Options{DryRun: true})
	if moved != 1 {
		t.Fatalf("expected 1 defect counted, got %d", moved)
	}
	if circle.Center.Z != 3 {
		t.Errorf("dry run modified the entity: %v", circle.Center)
	}
}

func TestFlattenPolylineVertices(t *testing.T) {
	pl := &entities.Polyline{}
	pl.Vertices = append(pl.Vertices,
		&entities.Vertex{Location: core.Point{X: 0, Y: 0, Z: 1}},
		&entities.Vertex{Location: core.Point{X: 1, Y: 0, Z: 1}},
	)

	moved := Flatten([]entities.Entity{pl}, Options{})
	if moved != 1 {
		t.Fatalf("expected 1 entity moved, got %d", moved)
	}
	for i, v := range pl.Vertices {
		if v.Location.Z != 0 {
			t.Errorf("vertex %d not flattened: %v", i, v.Location)
		}
	}
}
