// Package wallpack packs a closed wall outline, minus any apertures, into
// standard rectangular blocks laid out in a brick-pattern course layout
// plus custom-cut pieces covering whatever residual geometry the standard
// blocks cannot fill. See SPEC_FULL.md for the full specification this
// package implements.
package wallpack

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/blockcourse/wallpack/internal/geom"
)

// Placement is one standard block placement in the final plan.
type Placement struct {
	Label  string  `json:"label"`
	Type   string  `json:"type"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// CustomPiece is one custom-cut piece in the final plan.
type CustomPiece struct {
	Label            string       `json:"label"`
	CType            CustomType   `json:"-"`
	Width            float64      `json:"width"`
	Height           float64      `json:"height"`
	X                float64      `json:"x"`
	Y                float64      `json:"y"`
	Geometry         geom.Polygon `json:"geometry"`
	SourceBlockWidth float64      `json:"source_block_width"`
	Waste            float64      `json:"waste"`
}

// Plan is the complete output of Pack.
type Plan struct {
	Units    string
	Placed   []Placement
	Customs  []CustomPiece
	Summary  map[string]int
	Warnings []Warning
}

// Pack packs wall (minus apertures) into a Plan. Cancellation is
// cooperative at course boundaries (spec.md §5): ctx is checked once per
// course.
func Pack(ctx context.Context, wall geom.Polygon, apertures []geom.Polygon, cfg Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sanitizedWall, err := geom.Sanitize(wall)
	if err != nil {
		if wall.Area() < cfg.AreaEps {
			return &Plan{Units: "mm", Summary: map[string]int{}}, nil
		}
		return nil, wrapGeometry("wall", err)
	}

	if sanitizedWall.Area() < cfg.AreaEps {
		return &Plan{Units: "mm", Summary: map[string]int{}}, nil
	}

	var warnings []Warning
	sanitizedApertures := make([]geom.Polygon, len(apertures))
	for i, a := range apertures {
		sa, err := geom.Sanitize(a)
		if err != nil {
			return nil, wrapGeometry(fmt.Sprintf("aperture %d", i), err)
		}
		sanitizedApertures[i] = sa
	}

	keepOut, apWarnings, err := buildKeepOut(sanitizedWall, sanitizedApertures, cfg)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, apWarnings...)

	courses, err := buildCourses(sanitizedWall, keepOut, cfg)
	if err != nil {
		return nil, err
	}

	rawP, rawQ, err := packCourses(ctx, courses, cfg)
	if err != nil {
		return nil, err
	}

	promotedP, classifiedQ, optWarnings, err := postProcess(rawQ, cfg)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, optWarnings...)

	allP := append(rawP, promotedP...)
	placed := assignStandardLabels(allP, cfg)
	customs := assignCustomLabels(classifiedQ)

	summary := map[string]int{}
	for _, p := range placed {
		summary[p.Type]++
	}

	return &Plan{
		Units:    "mm",
		Placed:   placed,
		Customs:  customs,
		Summary:  summary,
		Warnings: warnings,
	}, nil
}

// componentResult is one course-component's packed output, tagged so
// results can be reassembled in deterministic order after an optionally
// concurrent packing pass.
type componentResult struct {
	courseIndex int
	compIndex   int
	placements  []rawPlacement
	customs     []rawCustom
}

// packCourses packs every component of every course, honoring
// cfg.Workers for optional concurrency across courses. Regardless of
// worker count, results are reassembled in ascending (course, component)
// order before returning, so label assignment is never affected by
// scheduling (spec.md §5, §9).
func packCourses(ctx context.Context, courses []course, cfg Config) ([]rawPlacement, []rawCustom, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	type job struct {
		courseIndex int
		compIndex   int
		component   geom.Polygon
		y0, y1      float64
	}

	var jobs []job
	for _, c := range courses {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		for ci, comp := range c.Components {
			jobs = append(jobs, job{courseIndex: c.Index, compIndex: ci, component: comp, y0: c.Y0, y1: c.Y1})
		}
	}

	results := make([]componentResult, len(jobs))
	errs := make([]error, len(jobs))

	if workers == 1 {
		for i, j := range jobs {
			if i > 0 && j.courseIndex != jobs[i-1].courseIndex {
				if err := ctx.Err(); err != nil {
					return nil, nil, err
				}
			}
			p, q, err := packComponent(j.component, j.y0, j.y1, j.courseIndex, cfg)
			results[i] = componentResult{courseIndex: j.courseIndex, compIndex: j.compIndex, placements: p, customs: q}
			errs[i] = err
		}
	} else {
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		var ctxErr error
		for i, j := range jobs {
			if i > 0 && j.courseIndex != jobs[i-1].courseIndex {
				if ctxErr = ctx.Err(); ctxErr != nil {
					break
				}
			}
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, j job) {
				defer wg.Done()
				defer func() { <-sem }()
				p, q, err := packComponent(j.component, j.y0, j.y1, j.courseIndex, cfg)
				results[i] = componentResult{courseIndex: j.courseIndex, compIndex: j.compIndex, placements: p, customs: q}
				errs[i] = err
			}(i, j)
		}
		wg.Wait()
		if ctxErr != nil {
			return nil, nil, ctxErr
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].courseIndex != results[j].courseIndex {
			return results[i].courseIndex < results[j].courseIndex
		}
		return results[i].compIndex < results[j].compIndex
	})

	var rawP []rawPlacement
	var rawQ []rawCustom
	for _, r := range results {
		rawP = append(rawP, r.placements...)
		for _, c := range r.customs {
			c.CourseIndex = r.courseIndex
			rawQ = append(rawQ, c)
		}
	}
	return rawP, rawQ, nil
}
