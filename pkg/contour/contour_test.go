package contour

import (
	"testing"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/entities"
)

func line(x1, y1, x2, y2 float64) *entities.Line {
	return &entities.Line{
		Start: core.Point{X: x1, Y: y1, Z: 0},
		End:   core.Point{X: x2, Y: y2, Z: 0},
	}
}

func TestClosedSquareHasNoOpenEndpoints(t *testing.T) {
	ents := []entities.Entity{
		line(0, 0, 10, 0),
		line(10, 0, 10, 10),
		line(10, 10, 0, 10),
		line(0, 10, 0, 0),
	}

	open := OpenEndpoints(ents, 1e-6)
	if len(open) != 0 {
		t.Errorf("closed square should have no open endpoints, got %v", open)
	}
}

func TestMissingEdgeIsDetected(t *testing.T) {
	ents := []entities.Entity{
		line(0, 0, 10, 0),
		line(10, 0, 10, 10),
		line(10, 10, 0, 10),
	}

	open := OpenEndpoints(ents, 1e-6)
	if len(open) != 2 {
		t.Fatalf("expected 2 open endpoints, got %d: %v", len(open), open)
	}
}

func TestArcClosesContour(t *testing.T) {
	// A half circle from (1,0) to (-1,0) closed by a line across the diameter.
	ents := []entities.Entity{
		&entities.Arc{
			Center:     core.Point{X: 0, Y: 0, Z: 0},
			Radius:     1,
			StartAngle: 0,
			EndAngle:   180,
		},
		line(-1, 0, 1, 0),
	}

	open := OpenEndpoints(ents, 1e-6)
	if len(open) != 0 {
		t.Errorf("half circle plus diameter should be closed, got %v", open)
	}
}

func TestCirclesAreIgnored(t *testing.T) {
	ents := []entities.Entity{
		&entities.Circle{Center: core.Point{X: 0, Y: 0, Z: 0}, Radius: 5},
	}

	open := OpenEndpoints(ents, 1e-6)
	if len(open) != 0 {
		t.Errorf("circles are closed, got %v", open)
	}
}

func TestOpenPolyline(t *testing.T) {
	pl := &entities.Polyline{}
	pl.Vertices = append(pl.Vertices,
		&entities.Vertex{Location: core.Point{X: 0, Y: 0, Z: 0}},
		&entities.Vertex{Location: core.Point{X: 5, Y: 0, Z: 0}},
		&entities.Vertex{Location: core.Point{X: 5, Y: 5, Z: 0}},
	)

	open := OpenEndpoints([]entities.Entity{pl}, 1e-6)
	if len(open) != 2 {
		t.Errorf("expected 2 open endpoints for an open polyline, got %v", open)
	}
}

func TestEndpointsWithinToleranceConnect(t *testing.T) {
	ents := []entities.Entity{
		line(0, 0, 10, 0),
		line(10.00005, 0, 10, 10),
		line(10, 10, 0, 10),
		line(0, 10, 0, 0),
	}

	open := OpenEndpoints(ents, 1e-3)
	if len(open) != 0 {
		t.Errorf("endpoints within tolerance should connect, got %v", open)
	}
}
