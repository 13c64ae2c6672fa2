package wallpack

import (
	"fmt"
	"math"
	"sort"

	"github.com/blockcourse/wallpack/internal/geom"
)

// CustomType is the ctype code assigned to a custom piece at classification
// time (spec.md §4.7).
type CustomType uint8

const (
	// CustomStandardCut is a width-only cut from a standard-height source
	// block (code "1").
	CustomStandardCut CustomType = iota + 1
	// CustomFlexibleCut is a flexible cut with non-standard height (code "2").
	CustomFlexibleCut
	// CustomOutOfSpec exceeds the width or height a single source block can
	// provide (code "X").
	CustomOutOfSpec
)

// Code returns the single-character/letter code used in custom labels.
func (t CustomType) Code() string {
	switch t {
	case CustomStandardCut:
		return "1"
	case CustomFlexibleCut:
		return "2"
	case CustomOutOfSpec:
		return "X"
	default:
		return "?"
	}
}

// classifiedCustom is a custom piece after coalescing, splitting,
// classification, and source-block selection, but before label assignment
// (which needs the full cross-course emission order — see labels.go).
type classifiedCustom struct {
	Width, Height, X, Y float64
	Geometry             geom.Polygon
	CType                CustomType
	SourceBlockWidth     float64
	Waste                float64
}

// postProcess runs the full §4.7 pipeline over every raw custom piece
// collected from every course: row-aware coalescing, out-of-spec
// splitting, the optional §9 refinement pass, classification, and
// source-block selection. It returns any standard placements promoted out
// of customs by the optional pass (nil unless cfg.OptPasses), the final
// ordered list of classified customs, and any warnings raised along the
// way.
func postProcess(raw []rawCustom, cfg Config) ([]rawPlacement, []classifiedCustom, []Warning, error) {
	coalesced, err := coalesceByRow(raw, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	split, err := splitAllOutOfSpec(coalesced, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	var promoted []rawPlacement
	var warnings []Warning
	pieces := split
	if cfg.OptPasses {
		pieces, err = coalesceGeoms(pieces, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		pieces, warnings = eliminateMicro(pieces, cfg, warnings)
		pieces, promoted = replaceWithStandard(pieces, cfg)
		pieces = resnap(pieces, cfg)
	}

	classified := classify(pieces, cfg)
	return promoted, classified, warnings, nil
}

// rowPiece is an intermediate custom piece carrying its row id, before
// classification.
type rowPiece struct {
	Width, Height, X, Y float64
	Geometry             geom.Polygon
	Row                  int
}

// coalesceByRow groups raw custom pieces by course index, unions each
// group's geometry, and re-splits the union into its connected components
// — merging slivers produced at component boundaries and aperture edges
// without merging pieces from different courses (spec.md §4.7).
func coalesceByRow(raw []rawCustom, cfg Config) ([]rowPiece, error) {
	byRow := map[int][]geom.Polygon{}
	var rows []int
	seen := map[int]bool{}
	for _, c := range raw {
		byRow[c.CourseIndex] = append(byRow[c.CourseIndex], c.Geometry)
		if !seen[c.CourseIndex] {
			seen[c.CourseIndex] = true
			rows = append(rows, c.CourseIndex)
		}
	}
	sort.Ints(rows)

	var out []rowPiece
	for _, row := range rows {
		merged, err := geom.UnionAll(byRow[row])
		if err != nil {
			return nil, wrapGeometry("custom coalesce", err)
		}
		pieces := toRowPieces(merged, row, cfg)
		out = append(out, pieces...)
	}
	return out, nil
}

func toRowPieces(polys []geom.Polygon, row int, cfg Config) []rowPiece {
	out := make([]rowPiece, 0, len(polys))
	for _, p := range polys {
		if p.Area() < cfg.AreaEps {
			continue
		}
		b := p.Bounds()
		out = append(out, rowPiece{
			Width:    geom.Snap(b.URx-b.LLx, cfg.Snap),
			Height:   geom.Snap(b.URy-b.LLy, cfg.Snap),
			X:        geom.Snap(b.LLx, cfg.Snap),
			Y:        geom.Snap(b.LLy, cfg.Snap),
			Geometry: p,
			Row:      row,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// inSpec reports whether a piece fits into a single standard source block
// without further splitting (spec.md §4.7).
func inSpec(width, height float64, cfg Config) bool {
	return width <= cfg.SplitMaxWidth+cfg.CustomTol && height <= cfg.CourseHeight+cfg.CustomTol
}

// splitAllOutOfSpec slices every out-of-spec piece into vertical strips no
// wider than cfg.SplitMaxWidth, intersecting each strip with the piece's
// own geometry.
func splitAllOutOfSpec(pieces []rowPiece, cfg Config) ([]rowPiece, error) {
	var out []rowPiece
	for _, p := range pieces {
		if inSpec(p.Width, p.Height, cfg) {
			out = append(out, p)
			continue
		}
		strips, err := splitOne(p, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, strips...)
	}
	return out, nil
}

func splitOne(p rowPiece, cfg Config) ([]rowPiece, error) {
	b := p.Geometry.Bounds()
	n := int(math.Ceil((b.URx - b.LLx) / cfg.SplitMaxWidth))
	if n < 1 {
		n = 1
	}
	var out []rowPiece
	for i := 0; i < n; i++ {
		x0 := b.LLx + float64(i)*cfg.SplitMaxWidth
		x1 := math.Min(x0+cfg.SplitMaxWidth, b.URx)
		if x1 <= x0 {
			continue
		}
		strip := geom.Rect(x0, b.LLy, x1, b.URy)
		comps, err := geom.Intersect(p.Geometry, strip)
		if err != nil {
			return nil, wrapGeometry("out-of-spec split", err)
		}
		out = append(out, toRowPieces(comps, p.Row, cfg)...)
	}
	return out, nil
}

// coalesceGeoms re-runs row-aware union across an already-split piece set,
// used by the optional merge-adjacent refinement pass.
func coalesceGeoms(pieces []rowPiece, cfg Config) ([]rowPiece, error) {
	byRow := map[int][]geom.Polygon{}
	var rows []int
	seen := map[int]bool{}
	for _, p := range pieces {
		byRow[p.Row] = append(byRow[p.Row], p.Geometry)
		if !seen[p.Row] {
			seen[p.Row] = true
			rows = append(rows, p.Row)
		}
	}
	sort.Ints(rows)
	var out []rowPiece
	for _, row := range rows {
		merged, err := geom.UnionAll(byRow[row])
		if err != nil {
			return nil, wrapGeometry("merge-adjacent", err)
		}
		out = append(out, toRowPieces(merged, row, cfg)...)
	}
	return out, nil
}

// eliminateMicro drops pieces whose area is below AreaEps, recording a
// warning for each — an artifact of snapping/splitting, never a silent
// coverage loss of anything meaningful.
func eliminateMicro(pieces []rowPiece, cfg Config, warnings []Warning) ([]rowPiece, []Warning) {
	var out []rowPiece
	for _, p := range pieces {
		if p.Geometry.Area() < cfg.AreaEps {
			warnings = append(warnings, Warning{
				Stage:   "optimize",
				Message: fmt.Sprintf("dropped micro custom piece at (%.3f,%.3f), area %.6f", p.X, p.Y, p.Geometry.Area()),
			})
			continue
		}
		out = append(out, p)
	}
	return out, warnings
}

// replaceWithStandard promotes any in-spec, nearly-rectangular custom
// piece whose width matches a configured standard width to a standard
// placement instead.
func replaceWithStandard(pieces []rowPiece, cfg Config) ([]rowPiece, []rawPlacement) {
	var kept []rowPiece
	var promoted []rawPlacement
	for _, p := range pieces {
		rectArea := p.Width * p.Height
		ratio := 0.0
		if rectArea > 0 {
			ratio = p.Geometry.Area() / rectArea
		}
		if ratio >= 0.95 && math.Abs(p.Height-cfg.CourseHeight) <= cfg.CustomTol {
			if w, ok := matchingWidth(p.Width, cfg); ok {
				promoted = append(promoted, rawPlacement{Width: w, Height: cfg.CourseHeight, X: p.X, Y: p.Y})
				continue
			}
		}
		kept = append(kept, p)
	}
	return kept, promoted
}

// matchingWidth returns a configured standard width within CustomTol of w,
// preferring the closest match.
func matchingWidth(w float64, cfg Config) (float64, bool) {
	best := 0.0
	bestDiff := math.Inf(1)
	found := false
	for _, cw := range cfg.Widths {
		diff := math.Abs(cw - w)
		if diff <= cfg.CustomTol && diff < bestDiff {
			best, bestDiff, found = cw, diff, true
		}
	}
	return best, found
}

// resnap re-applies the snap grid to every piece's coordinates. In
// practice this is a no-op, since every piece is already snapped at
// emission; it exists so the optional pass's documented "snap" step is a
// real, visible operation rather than an implicit assumption.
func resnap(pieces []rowPiece, cfg Config) []rowPiece {
	out := make([]rowPiece, len(pieces))
	for i, p := range pieces {
		p.X = geom.Snap(p.X, cfg.Snap)
		p.Y = geom.Snap(p.Y, cfg.Snap)
		p.Width = geom.Snap(p.Width, cfg.Snap)
		p.Height = geom.Snap(p.Height, cfg.Snap)
		out[i] = p
	}
	return out
}

// classify assigns a CType and an advisory source-block width/waste to
// every piece (spec.md §4.7).
func classify(pieces []rowPiece, cfg Config) []classifiedCustom {
	out := make([]classifiedCustom, 0, len(pieces))
	maxStd := cfg.MaxStdWidth()
	for _, p := range pieces {
		var ct CustomType
		switch {
		case p.Width > maxStd+cfg.CustomTol || p.Height > cfg.CourseHeight+cfg.CustomTol:
			ct = CustomOutOfSpec
		case math.Abs(p.Height-cfg.CourseHeight) <= cfg.CustomTol && p.Width <= maxStd+cfg.CustomTol:
			ct = CustomStandardCut
		default:
			ct = CustomFlexibleCut
		}

		source, waste := sourceBlock(p.Width, cfg)
		out = append(out, classifiedCustom{
			Width:            p.Width,
			Height:           p.Height,
			X:                p.X,
			Y:                p.Y,
			Geometry:         p.Geometry,
			CType:            ct,
			SourceBlockWidth: source,
			Waste:            waste,
		})
	}
	return out
}

// sourceBlock picks, among configured widths >= required, the one
// minimizing waste; if none is wide enough, it falls back to the largest
// available width (spec.md §4.7, advisory only).
func sourceBlock(required float64, cfg Config) (source, waste float64) {
	best := math.Inf(1)
	bestWaste := math.Inf(1)
	largest := 0.0
	for _, w := range cfg.Widths {
		if w > largest {
			largest = w
		}
		if w >= required {
			waste := w - required
			if waste < bestWaste {
				best, bestWaste = w, waste
			}
		}
	}
	if math.IsInf(best, 1) {
		return largest, largest - required
	}
	return best, bestWaste
}
