package geom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Snap rounds v to the nearest multiple of grid. grid <= 0 is treated as
// the identity (no snapping), which lets callers pass a zero Config.Snap
// during construction without special-casing it everywhere.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Round(v/grid) * grid
}

// SnapPoint snaps both coordinates of v.
func SnapPoint(v vec.Vec2, grid float64) vec.Vec2 {
	return vec.Vec2{X: Snap(v.X, grid), Y: Snap(v.Y, grid)}
}

// SnapPolygon snaps every vertex of p's outer ring and holes.
func SnapPolygon(p Polygon, grid float64) Polygon {
	out := Polygon{
		Outer: make([]vec.Vec2, len(p.Outer)),
		Holes: make([][]vec.Vec2, len(p.Holes)),
	}
	for i, v := range p.Outer {
		out.Outer[i] = SnapPoint(v, grid)
	}
	for i, h := range p.Holes {
		ring := make([]vec.Vec2, len(h))
		for j, v := range h {
			ring[j] = SnapPoint(v, grid)
		}
		out.Holes[i] = ring
	}
	return out
}
