package wallpack

import "github.com/blockcourse/wallpack/internal/geom"

// reversedOrder returns a copy of order reversed end-to-end. For a
// descending width order the reverse is the smallest-first order the tail
// backtrack tries (spec.md §4.4); for any other order (such as the default
// {826, 1239, 413} trial) it is just that order backwards.
func reversedOrder(order []float64) []float64 {
	out := make([]float64, len(order))
	for i, w := range order {
		out[len(order)-1-i] = w
	}
	return out
}

// greedyFillToEnd runs a single, non-backtracking pass of the segment
// packer's main loop from xStart to xEnd using the given width order. It is
// the "one-shot fill" the tail backtracker tries as an alternative to the
// greedy result once a micro-rest has been detected (spec.md §4.4): unlike
// packSegment, it never pushes its own checkpoint and never recurses into
// another backtrack, by design — the backtrack is a bounded one-level
// operation (spec.md §9).
func greedyFillToEnd(component geom.Polygon, y0, y1, xStart, xEnd float64, order []float64, cfg Config) ([]rawPlacement, []rawCustom, error) {
	height := y1 - y0
	x := xStart
	var P []rawPlacement
	var Q []rawCustom

	for x < xEnd-cfg.CoordEps {
		fit := false
		for _, w := range order {
			if x+w > xEnd+cfg.CoordEps {
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
			continue
		}
		comps, area, err := fitRegion(component, x, y0, xEnd, y1, cfg)
		if err != nil {
			return nil, nil, err
		}
		if area >= cfg.AreaEps {
			Q = append(Q, customsFromComponents(comps, cfg)...)
		}
		break
	}

	return P, Q, nil
}
