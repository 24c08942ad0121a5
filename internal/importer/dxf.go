package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// Footprint is the interior outline of a planter read from a drawing.
// Length is always the longer side.
type Footprint struct {
	Length   float64
	Width    float64
	Warnings []string
}

// Apply writes the footprint into cfg's box, creating the box from
// defaults when the config has none.
func (f Footprint) Apply(cfg *model.PlanterConfig) {
	box := ensureBox(cfg)
	box.InteriorLength = f.Length
	box.InteriorWidth = f.Width
}

// bounds accumulates the extent of a set of points.
type bounds struct {
	minX, minY, maxX, maxY float64
	empty                  bool
}

func newBounds() bounds {
	return bounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
		empty: true,
	}
}

func (b *bounds) add(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
	b.empty = false
}

// ImportFootprintDXF reads a DXF drawing of the planter's interior, drawn
// in inches, and returns the size of its bounding box. LINE, LWPOLYLINE,
// CIRCLE and ARC entities contribute; other entities are skipped.
func ImportFootprintDXF(path string) (Footprint, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return Footprint{}, fmt.Errorf("cannot open DXF file: %w", err)
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		return Footprint{}, fmt.Errorf("DXF file contains no entities")
	}

	var fp Footprint
	b := newBounds()
	skipped := 0
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Line:
			b.add(e.Start[0], e.Start[1])
			b.add(e.End[0], e.End[1])
		case *entity.LwPolyline:
			for _, v := range e.Vertices {
				b.add(v[0], v[1])
			}
		case *entity.Circle:
			cx, cy, r := e.Center[0], e.Center[1], e.Radius
			b.add(cx-r, cy-r)
			b.add(cx+r, cy+r)
		case *entity.Arc:
			for _, p := range arcPoints(e, 32) {
				b.add(p[0], p[1])
			}
		default:
			skipped++
		}
	}
	if skipped > 0 {
		fp.Warnings = append(fp.Warnings, fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}
	if b.empty {
		return Footprint{}, fmt.Errorf("no usable geometry found in DXF file")
	}

	w, h := b.maxX-b.minX, b.maxY-b.minY
	if w < 0.01 || h < 0.01 {
		return Footprint{}, fmt.Errorf("degenerate footprint (%.2f x %.2f in)", w, h)
	}
	fp.Length, fp.Width = max(w, h), min(w, h)
	return fp, nil
}

// arcPoints samples a DXF ARC entity, counter-clockwise from its start angle.
func arcPoints(a *entity.Arc, numSegments int) [][2]float64 {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([][2]float64, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	return pts
}
