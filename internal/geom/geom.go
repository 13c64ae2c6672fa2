// Package geom holds the planar polygon primitives the packer is built on:
// a Polygon type with holes, grid snapping, and the boolean/buffer
// operations backed by github.com/go-clipper/clipper2. Nothing here knows
// about courses, blocks, or labels — it is the computational-geometry
// facility the rest of the module treats as a primitive.
package geom

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Scale converts between the module's millimeter-scale float64 coordinates
// and the int64 lattice clipper2 operates on. 1000 preserves micron
// precision, which is well under any plausible SNAP configuration.
const Scale = 1000.0

// Polygon is a closed planar region: one outer ring plus zero or more inner
// rings (holes). Rings are not explicitly closed (the first point is not
// repeated at the end) and are not guaranteed to be in any particular
// winding order until Sanitize has run.
type Polygon struct {
	Outer []vec.Vec2
	Holes [][]vec.Vec2
}

// IsEmpty reports whether p has no outer ring or a degenerate one.
func (p Polygon) IsEmpty() bool {
	return len(p.Outer) < 3
}

// Bounds returns the axis-aligned bounding box of the outer ring. Callers
// that need the bounds of a polygon with holes still get the outer ring's
// box, since holes are always contained in it once the polygon is valid.
func (p Polygon) Bounds() rect.Rect {
	if len(p.Outer) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: p.Outer[0].X, LLy: p.Outer[0].Y, URx: p.Outer[0].X, URy: p.Outer[0].Y}
	for _, v := range p.Outer[1:] {
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}

// Area returns the unsigned area of the polygon (outer ring minus holes).
func (p Polygon) Area() float64 {
	a := ringArea(p.Outer)
	if a < 0 {
		a = -a
	}
	for _, h := range p.Holes {
		ha := ringArea(h)
		if ha < 0 {
			ha = -ha
		}
		a -= ha
	}
	if a < 0 {
		return 0
	}
	return a
}

// ringArea returns the signed shoelace area of a ring (positive for
// counter-clockwise, negative for clockwise).
func ringArea(ring []vec.Vec2) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		j := (i + 1) % n
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum / 2
}

// Rect builds a rectangle polygon with corners (x0,y0)-(x1,y1).
func Rect(x0, y0, x1, y1 float64) Polygon {
	return Polygon{Outer: []vec.Vec2{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}}
}
