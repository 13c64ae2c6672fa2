package wallpack

import (
	"math"

	"github.com/blockcourse/wallpack/internal/geom"
)

// course is one horizontal band of the wall: a fixed-height stripe (except
// possibly the last, adaptive one) decomposed into zero or more disjoint
// packable components.
type course struct {
	Index      int
	Y0, Y1     float64
	Adaptive   bool
	Components []geom.Polygon
}

// buildCourses slices the wall into courses of height cfg.CourseHeight,
// intersects each with the wall and subtracts keepOut, and collects the
// connected components of what remains. One additional adaptive course of
// reduced height is appended if the vertical residual is large enough
// (spec.md §4.3).
func buildCourses(wall geom.Polygon, keepOut []geom.Polygon, cfg Config) ([]course, error) {
	bounds := wall.Bounds()
	minX, maxX := bounds.LLx, bounds.URx
	minY, maxY := bounds.LLy, bounds.URy

	full := int(math.Floor((maxY - minY) / cfg.CourseHeight))

	courses := make([]course, 0, full+1)
	for k := range full {
		y0 := minY + float64(k)*cfg.CourseHeight
		y1 := y0 + cfg.CourseHeight
		comps, err := stripeComponents(wall, keepOut, minX, maxX, y0, y1, cfg)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course{Index: k, Y0: y0, Y1: y1, Components: comps})
	}

	residual := (maxY - minY) - float64(full)*cfg.CourseHeight
	if residual >= cfg.MinAdaptiveHeight {
		y0 := minY + float64(full)*cfg.CourseHeight
		h := math.Min(residual, cfg.CourseHeight)
		y1 := y0 + h
		comps, err := stripeComponents(wall, keepOut, minX, maxX, y0, y1, cfg)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course{Index: full, Y0: y0, Y1: y1, Adaptive: true, Components: comps})
	}

	return courses, nil
}

// stripeComponents computes (wall ∩ stripe) \ keepOut and returns its
// connected components in the order the geometry engine yields them.
func stripeComponents(wall geom.Polygon, keepOut []geom.Polygon, minX, maxX, y0, y1 float64, cfg Config) ([]geom.Polygon, error) {
	stripe := geom.Rect(minX, y0, maxX, y1)
	inter, err := geom.Intersect(wall, stripe)
	if err != nil {
		return nil, wrapGeometry("stripe intersect", err)
	}
	if len(inter) == 0 {
		return nil, nil
	}

	var cells []geom.Polygon
	for _, piece := range inter {
		cut, err := geom.DifferenceAll(piece, keepOut)
		if err != nil {
			return nil, wrapGeometry("stripe keep-out subtraction", err)
		}
		cells = append(cells, cut...)
	}

	out := geom.Components(cells)
	keep := out[:0]
	for _, c := range out {
		if c.Area() >= cfg.AreaEps {
			keep = append(keep, c)
		}
	}
	return keep, nil
}
