package geom

import (
	"errors"
	"fmt"

	"github.com/go-clipper/clipper2"
)

// ErrInvalidGeometry is returned when a polygon cannot be repaired into a
// valid one by Sanitize.
var ErrInvalidGeometry = errors.New("geom: invalid geometry")

// defaultOffsetOptions are used for every InflatePaths call in this
// package; the packer never needs anything fancier than square joins on
// closed polygons.
var defaultOffsetOptions = clipper.OffsetOptions{MiterLimit: 2.0, ArcTolerance: 0.25}

// Sanitize repairs p into a valid polygon equivalent to it, using the
// standard "buffer by zero" trick: inflating a path by a delta of 0 forces
// clipper2 to re-run its union machinery over the path, which resolves
// self-intersections and normalizes ring orientation. If the repair
// collapses the polygon entirely, ErrInvalidGeometry is returned.
func Sanitize(p Polygon) (Polygon, error) {
	if p.IsEmpty() {
		return Polygon{}, fmt.Errorf("%w: fewer than 3 outer vertices", ErrInvalidGeometry)
	}
	paths := toPaths(p)
	fixed, err := clipper.InflatePaths(paths, 0, clipper.Square, clipper.ClosedPolygon, defaultOffsetOptions)
	if err != nil {
		return Polygon{}, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	polys := fromPaths(fixed)
	if len(polys) == 0 {
		return Polygon{}, fmt.Errorf("%w: repair collapsed the polygon", ErrInvalidGeometry)
	}
	if len(polys) == 1 {
		return polys[0], nil
	}
	// Multiple disjoint outer rings: keep the largest by area and fold the
	// rest in as holes of nothing, i.e. drop them. A wall is one connected
	// region by construction; a caller handing in a multi-part wall gets
	// the dominant part, which is the same tolerant behavior the area-
	// ratio fit test uses elsewhere in this module.
	best := 0
	for i, poly := range polys {
		if poly.Area() > polys[best].Area() {
			best = i
		}
	}
	return polys[best], nil
}

// Union returns the union of a and b as zero or more components.
func Union(a, b Polygon) ([]Polygon, error) {
	return boolOp(clipper.Union, a, b)
}

// Intersect returns the intersection of a and b as zero or more components.
func Intersect(a, b Polygon) ([]Polygon, error) {
	return boolOp(clipper.Intersection, a, b)
}

// Difference returns a minus b as zero or more components.
func Difference(a, b Polygon) ([]Polygon, error) {
	return boolOp(clipper.Difference, a, b)
}

// DifferenceAll subtracts every polygon in clips from subject in a single
// boolean pass, returning zero or more components. An empty clips list
// returns subject unchanged (as its own component list).
func DifferenceAll(subject Polygon, clips []Polygon) ([]Polygon, error) {
	if len(clips) == 0 {
		if subject.IsEmpty() {
			return nil, nil
		}
		return []Polygon{subject}, nil
	}
	var clipPaths clipper.Paths64
	for _, c := range clips {
		clipPaths = append(clipPaths, toPaths(c)...)
	}
	solution, _, err := clipper.BooleanOp(clipper.Difference, clipper.NonZero, toPaths(subject), nil, clipPaths)
	if err != nil {
		return nil, fmt.Errorf("geom: difference all: %w", err)
	}
	return fromPaths(solution), nil
}

func boolOp(op clipper.ClipType, a, b Polygon) ([]Polygon, error) {
	subjects := toPaths(a)
	var clips clipper.Paths64
	if !b.IsEmpty() {
		clips = toPaths(b)
	}
	solution, _, err := clipper.BooleanOp(op, clipper.NonZero, subjects, nil, clips)
	if err != nil {
		return nil, fmt.Errorf("geom: boolean op: %w", err)
	}
	return fromPaths(solution), nil
}

// UnionAll unions a list of polygons into zero or more disjoint components
// in a single boolean pass. An empty (or all-empty) input yields an empty
// result, not an error, matching the "empty intersection is not an error"
// rule used throughout the packer.
func UnionAll(polys []Polygon) ([]Polygon, error) {
	var subjects clipper.Paths64
	for _, p := range polys {
		subjects = append(subjects, toPaths(p)...)
	}
	if len(subjects) == 0 {
		return nil, nil
	}
	solution, _, err := clipper.BooleanOp(clipper.Union, clipper.NonZero, subjects, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("geom: union all: %w", err)
	}
	return fromPaths(solution), nil
}

// Buffer outwardly offsets p by margin using a square join on a closed
// polygon. margin == 0 is a cheap no-op (clipper2 would return the input
// unchanged anyway, but this avoids the round trip through the integer
// lattice when the keep-out buffer is configured off).
func Buffer(p Polygon, margin float64) (Polygon, error) {
	if margin == 0 {
		return p, nil
	}
	paths := toPaths(p)
	out, err := clipper.InflatePaths(paths, margin*Scale, clipper.Square, clipper.ClosedPolygon, defaultOffsetOptions)
	if err != nil {
		return Polygon{}, fmt.Errorf("geom: buffer: %w", err)
	}
	polys := fromPaths(out)
	if len(polys) == 0 {
		return Polygon{}, nil
	}
	return polys[0], nil
}

// Components normalizes a boolean-op result into the caller's expected
// shape: Intersect/Difference/Union already return exactly this via
// fromPaths, so Components is a thin, explicit name for that normalization
// step at call sites that operate directly on raw clipper2 output (stripe
// cell computation does this to flatten a stripe-minus-keepout result into
// independent packable pieces).
func Components(polys []Polygon) []Polygon {
	out := make([]Polygon, 0, len(polys))
	for _, p := range polys {
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}

// Holes returns the inner rings of p as standalone polygons.
func Holes(p Polygon) []Polygon {
	holes := make([]Polygon, 0, len(p.Holes))
	for _, h := range p.Holes {
		if len(h) >= 3 {
			holes = append(holes, Polygon{Outer: h})
		}
	}
	return holes
}

