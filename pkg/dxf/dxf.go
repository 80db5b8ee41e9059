// Package dxf wraps the dxf-go parser and provides the small amount of
// entity plumbing shared by the repair passes: opening documents, naming
// entity kinds and visiting the coordinates an entity carries.
package dxf

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"

	"github.com/philipparndt/dxffix/pkg/geometry"
)

// Open reads and parses a DXF file
func Open(path string) (*document.DxfDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	doc, err := document.DxfDocumentFromStream(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// EntityKind returns the DXF type name of an entity
func EntityKind(e entities.Entity) string {
	switch e.(type) {
	case *entities.Circle:
		return "CIRCLE"
	case *entities.Arc:
		return "ARC"
	case *entities.Line:
		return "LINE"
	case *entities.Polyline:
		return "POLYLINE"
	default:
		name := fmt.Sprintf("%T", e)
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		return strings.ToUpper(name)
	}
}

// EachPoint calls fn with a pointer to every coordinate carried by the
// entity, so callers can inspect or modify them in place. Entities of
// unsupported kinds carry no visitable points.
func EachPoint(e entities.Entity, fn func(p *core.Point)) {
	switch t := e.(type) {
	case *entities.Circle:
		fn(&t.Center)
	case *entities.Arc:
		fn(&t.Center)
	case *entities.Line:
		fn(&t.Start)
		fn(&t.End)
	case *entities.Polyline:
		for i := range t.Vertices {
			fn(&t.Vertices[i].Location)
		}
	}
}

// Extents returns the bounding box over all visitable entity coordinates.
// Arc and circle extents use the full circle radius, which is what the
// header extents are for: a conservative envelope, not a tight fit.
func Extents(ents []entities.Entity) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, e := range ents {
		switch t := e.(type) {
		case *entities.Circle:
			bbox.Extend(core.Point{X: t.Center.X - t.Radius, Y: t.Center.Y - t.Radius, Z: t.Center.Z})
			bbox.Extend(core.Point{X: t.Center.X + t.Radius, Y: t.Center.Y + t.Radius, Z: t.Center.Z})
		case *entities.Arc:
			bbox.Extend(core.Point{X: t.Center.X - t.Radius, Y: t.Center.Y - t.Radius, Z: t.Center.Z})
			bbox.Extend(core.Point{X: t.Center.X + t.Radius, Y: t.Center.Y + t.Radius, Z: t.Center.Z})
		default:
			EachPoint(e, func(p *core.Point) {
				bbox.Extend(*p)
			})
		}
	}
	return bbox
}
