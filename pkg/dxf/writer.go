package dxf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/entities"

	"github.com/philipparndt/dxffix/pkg/units"
)

// The dxf-go library only parses DXF, so writing is done here: a minimal
// R12-style emitter for the entity kinds the repair passes know about.
// Entities are written on layer 0; waterjet consumers ignore layers.

// Write serializes the entity list as DXF to w and returns the number of
// entities written. Unsupported kinds are skipped.
func Write(w io.Writer, ents []entities.Entity, unit string) (int, error) {
	bw := bufio.NewWriter(w)
	ew := &entityWriter{w: bw}

	ew.tag(0, "SECTION")
	ew.tag(2, "HEADER")
	ew.tag(9, "$ACADVER")
	ew.tag(1, "AC1009")
	ew.tag(9, "$INSUNITS")
	ew.tag(70, strconv.Itoa(units.InsunitsCode(unit)))
	if bbox := Extents(ents); !bbox.Empty() {
		ew.tag(9, "$EXTMIN")
		ew.point(10, bbox.Min)
		ew.tag(9, "$EXTMAX")
		ew.point(10, bbox.Max)
	}
	ew.tag(0, "ENDSEC")

	ew.tag(0, "SECTION")
	ew.tag(2, "ENTITIES")
	written := 0
	for _, e := range ents {
		if ew.entity(e) {
			written++
		}
	}
	ew.tag(0, "ENDSEC")
	ew.tag(0, "EOF")

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("failed to write DXF: %w", err)
	}
	return written, nil
}

// SaveFile writes the entity list to a DXF file
func SaveFile(path string, ents []entities.Entity, unit string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	written, err := Write(file, ents, unit)
	if err != nil {
		return written, err
	}
	if err := file.Close(); err != nil {
		return written, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return written, nil
}

type entityWriter struct {
	w *bufio.Writer
}

func (ew *entityWriter) tag(code int, value string) {
	fmt.Fprintf(ew.w, "%d\n%s\n", code, value)
}

func (ew *entityWriter) num(code int, value float64) {
	ew.tag(code, strconv.FormatFloat(value, 'f', -1, 64))
}

// point writes a coordinate triple; Y and Z use the X group code offset by
// 10 and 20 as the DXF format prescribes.
func (ew *entityWriter) point(xCode int, p core.Point) {
	ew.num(xCode, p.X)
	ew.num(xCode+10, p.Y)
	ew.num(xCode+20, p.Z)
}

// extrusion writes the 210/220/230 triple when the direction differs from
// the world default. A zero direction means the tag was absent on parse.
func (ew *entityWriter) extrusion(d core.Point) {
	zero := core.Point{}
	world := core.Point{X: 0, Y: 0, Z: 1}
	if d == zero || d == world {
		return
	}
	ew.num(210, d.X)
	ew.num(220, d.Y)
	ew.num(230, d.Z)
}

func (ew *entityWriter) entity(e entities.Entity) bool {
	switch t := e.(type) {
	case *entities.Circle:
		ew.tag(0, "CIRCLE")
		ew.tag(8, "0")
		ew.point(10, t.Center)
		ew.num(40, t.Radius)
		ew.extrusion(t.ExtrusionDirection)
	case *entities.Arc:
		ew.tag(0, "ARC")
		ew.tag(8, "0")
		ew.point(10, t.Center)
		ew.num(40, t.Radius)
		ew.num(50, t.StartAngle)
		ew.num(51, t.EndAngle)
		ew.extrusion(t.ExtrusionDirection)
	case *entities.Line:
		ew.tag(0, "LINE")
		ew.tag(8, "0")
		ew.point(10, t.Start)
		ew.point(11, t.End)
		ew.extrusion(t.ExtrusionDirection)
	case *entities.Polyline:
		ew.tag(0, "POLYLINE")
		ew.tag(8, "0")
		ew.tag(66, "1")
		ew.point(10, core.Point{})
		for i := range t.Vertices {
			ew.tag(0, "VERTEX")
			ew.tag(8, "0")
			ew.point(10, t.Vertices[i].Location)
		}
		ew.tag(0, "SEQEND")
	default:
		return false
	}
	return true
}
