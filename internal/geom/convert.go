package geom

import (
	"github.com/go-clipper/clipper2"
	"seehuhn.de/go/geom/vec"
)

// toPath converts a ring to clipper2's integer lattice.
func toPath(ring []vec.Vec2) clipper.Path64 {
	path := make(clipper.Path64, len(ring))
	for i, v := range ring {
		path[i] = clipper.Point64{
			X: int64(v.X * Scale),
			Y: int64(v.Y * Scale),
		}
	}
	return path
}

// toPaths converts a polygon (outer ring + holes) to a flat Paths64, the
// representation clipper2's boolean ops consume. Orientation is handled by
// clipper2's fill rule, not by caller bookkeeping.
func toPaths(p Polygon) clipper.Paths64 {
	if p.IsEmpty() {
		return nil
	}
	paths := make(clipper.Paths64, 0, 1+len(p.Holes))
	paths = append(paths, toPath(p.Outer))
	for _, h := range p.Holes {
		if len(h) >= 3 {
			paths = append(paths, toPath(h))
		}
	}
	return paths
}

// fromPath converts a clipper2 path back into a ring of float64 vertices.
func fromPath(path clipper.Path64) []vec.Vec2 {
	ring := make([]vec.Vec2, len(path))
	for i, pt := range path {
		ring[i] = vec.Vec2{X: float64(pt.X) / Scale, Y: float64(pt.Y) / Scale}
	}
	return ring
}

// fromPaths groups a flat Paths64 result into Polygons, nesting each
// clockwise (negative-area) path as a hole of the nearest enclosing
// counter-clockwise path. This mirrors how clipper2's PolyTree nests
// results, without requiring the tree API: boolean results from this
// package are always simple enough (no hole-in-hole from our inputs) that
// area-sign plus point-in-polygon containment is sufficient.
func fromPaths(paths clipper.Paths64) []Polygon {
	type ring struct {
		pts []vec.Vec2
		neg bool
	}
	rings := make([]ring, 0, len(paths))
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		pts := fromPath(path)
		rings = append(rings, ring{pts: pts, neg: ringArea(pts) < 0})
	}

	var outers []Polygon
	for _, r := range rings {
		if !r.neg {
			outers = append(outers, Polygon{Outer: r.pts})
		}
	}
	for _, r := range rings {
		if !r.neg {
			continue
		}
		best := -1
		for i, o := range outers {
			if containsRing(o.Outer, r.pts[0]) {
				if best == -1 || ringArea(o.Outer) < ringArea(outers[best].Outer) {
					best = i
				}
			}
		}
		if best >= 0 {
			outers[best].Holes = append(outers[best].Holes, r.pts)
		}
		// A hole with no enclosing outer (degenerate clip result) is
		// dropped: it cannot be expressed by the Polygon type and would
		// not satisfy any containment invariant downstream.
	}
	return outers
}

// containsRing reports whether point p lies inside the ring using the
// standard even-odd ray cast. Used only for re-nesting clipper2 output, not
// for any of the packer's area/containment decisions (those go through
// clipper2 itself for consistency).
func containsRing(ring []vec.Vec2, p vec.Vec2) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := ring[i], ring[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}
