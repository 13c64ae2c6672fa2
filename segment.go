package wallpack

import (
	"github.com/blockcourse/wallpack/internal/geom"
)

// rawPlacement is an unlabeled standard block placement, as produced by the
// segment packer. Labels are assigned in a single global pass over every
// course's output, in plan.go, so that emission order (and therefore label
// ordinals) does not depend on how any one segment was packed internally.
type rawPlacement struct {
	Width, Height, X, Y float64
}

// rawCustom is an unlabeled custom piece, geometry included verbatim.
// CourseIndex is filled in by plan.go after packComponent returns; the
// segment packer itself has no notion of which course it was called for.
// It drives the row-aware coalescing grouping in postprocess.go and is
// equivalent to spec.md §4.7's round(y/COURSE_HEIGHT) row id for every
// course this module ever builds (including the adaptive last course),
// without depending on the wall's minY being zero.
type rawCustom struct {
	Width, Height, X, Y float64
	Geometry            geom.Polygon
	CourseIndex         int
}

// fitScore is the totally ordered (count, area) pair used to compare
// candidate packings of the same segment (spec.md §4.5, §9): fewer custom
// pieces wins; ties are broken by smaller total custom area.
type fitScore struct {
	Count int
	Area  float64
}

func scoreOf(customs []rawCustom) fitScore {
	s := fitScore{Count: len(customs)}
	for _, c := range customs {
		s.Area += c.Geometry.Area()
	}
	return s
}

// less reports whether a is a strictly better (lower) score than b.
func (a fitScore) less(b fitScore) bool {
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.Area < b.Area
}

// packComponent packs one connected component of one course, trying every
// combination of candidate width ordering (§4.5) and starting offset (§4.6)
// configured for this course index, and keeping the lowest-scoring result.
func packComponent(component geom.Polygon, y0, y1 float64, courseIndex int, cfg Config) ([]rawPlacement, []rawCustom, error) {
	orders := cfg.Orders
	if len(orders) == 0 {
		// No explicit order trials configured: fall back to the single
		// largest-first greedy order (spec.md §4.4), regardless of what
		// order Widths happens to be listed in.
		orders = [][]float64{widthsDescending(cfg.Widths)}
	}
	offsets := courseOffsets(courseIndex, cfg)

	var bestP []rawPlacement
	var bestQ []rawCustom
	var bestScore fitScore
	haveBest := false

	for _, offset := range offsets {
		for _, order := range orders {
			p, q, err := packSegment(component, y0, y1, order, offset, cfg)
			if err != nil {
				return nil, nil, err
			}
			sc := scoreOf(q)
			if !haveBest || sc.less(bestScore) {
				bestP, bestQ, bestScore, haveBest = p, q, sc, true
			}
		}
	}
	return bestP, bestQ, nil
}

// courseOffsets returns the starting offsets to try for a course at the
// given index (spec.md §4.6): 0 for even courses, and both the configured
// row offset and the smallest standard width for odd courses.
func courseOffsets(courseIndex int, cfg Config) []float64 {
	if courseIndex%2 == 0 {
		return []float64{0}
	}
	small := smallestWidth(cfg.Widths)
	if cfg.RowOffset == small {
		return []float64{small}
	}
	return []float64{cfg.RowOffset, small}
}

// packSegment implements the §4.4 segment packer for one connected
// component, one course, one width ordering, and one starting offset.
func packSegment(component geom.Polygon, y0, y1 float64, order []float64, offset float64, cfg Config) ([]rawPlacement, []rawCustom, error) {
	bounds := component.Bounds()
	cMinX, cMaxX := bounds.LLx, bounds.URx
	height := y1 - y0

	var P []rawPlacement
	var Q []rawCustom
	x := cMinX

	if offset > 0 && x+offset <= cMaxX+cfg.CoordEps {
		comps, area, err := fitRegion(component, x, y0, x+offset, y1, cfg)
		if err != nil {
			return nil, nil, err
		}
		if area >= cfg.AreaEps {
			if isStandardFit(area, offset*height) {
				P = append(P, stdPlacement(offset, height, x, y0, cfg))
			} else {
				Q = append(Q, customsFromComponents(comps, cfg)...)
			}
		}
		x = geom.Snap(x+offset, cfg.Snap)
	}

	// prevCkpt tracks the state immediately before the most recent
	// successful placement in the main loop, so the tail backtrack can
	// undo exactly that placement (spec.md §2: "reverts the last
	// placement"), not the (trivially unchanged) state of the failing
	// iteration itself.
	var prevX float64
	var prevPLen, prevQLen int
	havePrev := false

	for x < cMaxX-cfg.CoordEps {
		ckptX, ckptPLen, ckptQLen := x, len(P), len(Q)
		fit := false

		for _, w := range order {
			if x+w > cMaxX+cfg.CoordEps {
				continue
			}
			comps, area, err := fitRegion(component, x, y0, x+w, y1, cfg)
			if err != nil {
				return nil, nil, err
			}
			if area < cfg.AreaEps {
				continue
			}
			if isStandardFit(area, w*height) {
				P = append(P, stdPlacement(w, height, x, y0, cfg))
			} else {
				Q = append(Q, customsFromComponents(comps, cfg)...)
			}
			x = geom.Snap(x+w, cfg.Snap)
			fit = true
			break
		}

		if fit {
			havePrev, prevX, prevPLen, prevQLen = true, ckptX, ckptPLen, ckptQLen
			continue
		}

		// No width fit at this cursor: handle the tail and end the segment.
		rem := cMaxX - x
		if rem < cfg.MicroRest && havePrev {
			altOrder := reversedOrder(order)
			altP, altQ, err := greedyFillToEnd(component, y0, y1, prevX, cMaxX, altOrder, cfg)
			if err != nil {
				return nil, nil, err
			}
			// The original tail is scored with the residual it leaves, and
			// that residual is emitted when the original is kept.
			tailComps, tailArea, err := fitRegion(component, x, y0, cMaxX, y1, cfg)
			if err != nil {
				return nil, nil, err
			}
			var tailQ []rawCustom
			if tailArea >= cfg.AreaEps {
				tailQ = customsFromComponents(tailComps, cfg)
			}
			origQ := append(Q[prevQLen:len(Q):len(Q)], tailQ...)
			if scoreOf(altQ).less(scoreOf(origQ)) {
				P = append(P[:prevPLen], altP...)
				Q = append(Q[:prevQLen], altQ...)
			} else {
				Q = append(Q, tailQ...)
			}
		} else {
			comps, area, err := fitRegion(component, x, y0, cMaxX, y1, cfg)
			if err != nil {
				return nil, nil, err
			}
			if area >= cfg.AreaEps {
				Q = append(Q, customsFromComponents(comps, cfg)...)
			}
		}
		break
	}

	return P, Q, nil
}

// isStandardFit applies the spec.md §9 "ratio variant" of the standard-fit
// test: a candidate rectangle counts as fully inside the component when the
// intersection covers at least 95% of the rectangle's own area. This is
// the one consistently-applied choice between the two variants the spec
// leaves open; see DESIGN.md.
func isStandardFit(intersectionArea, rectArea float64) bool {
	if rectArea <= 0 {
		return false
	}
	return intersectionArea/rectArea >= 0.95
}

// fitRegion intersects component with the candidate rectangle [x0,y0,x1,y1]
// and returns its (possibly disjoint) components plus their total area.
func fitRegion(component geom.Polygon, x0, y0, x1, y1 float64, cfg Config) ([]geom.Polygon, float64, error) {
	candidate := geom.Rect(x0, y0, x1, y1)
	comps, err := geom.Intersect(component, candidate)
	if err != nil {
		return nil, 0, wrapGeometry("segment fit", err)
	}
	var total float64
	for _, c := range comps {
		total += c.Area()
	}
	return comps, total, nil
}

// stdPlacement builds a rawPlacement with snapped coordinates.
func stdPlacement(width, height, x, y float64, cfg Config) rawPlacement {
	return rawPlacement{
		Width:  geom.Snap(width, cfg.Snap),
		Height: geom.Snap(height, cfg.Snap),
		X:      geom.Snap(x, cfg.Snap),
		Y:      geom.Snap(y, cfg.Snap),
	}
}

// customsFromComponents builds one rawCustom per non-empty geometry
// component, snapping its bounding-box dimensions.
func customsFromComponents(comps []geom.Polygon, cfg Config) []rawCustom {
	out := make([]rawCustom, 0, len(comps))
	for _, c := range comps {
		if c.Area() < cfg.AreaEps {
			continue
		}
		b := c.Bounds()
		out = append(out, rawCustom{
			Width:    geom.Snap(b.URx-b.LLx, cfg.Snap),
			Height:   geom.Snap(b.URy-b.LLy, cfg.Snap),
			X:        geom.Snap(b.LLx, cfg.Snap),
			Y:        geom.Snap(b.LLy, cfg.Snap),
			Geometry: c,
		})
	}
	return out
}
