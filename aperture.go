package wallpack

import (
	"fmt"

	"github.com/blockcourse/wallpack/internal/geom"
)

// apertureMinArea is the §4.2 "micro-opening, likely noise" threshold.
const apertureMinArea = 1000.0

// apertureMaxRatio is the §4.2 "aperture is effectively the whole wall"
// threshold, expressed as a fraction of the wall's area.
const apertureMaxRatio = 0.80

// filterApertures discards implausible apertures and returns the
// survivors, alongside a warning for each discard. Warnings are side-band
// only: they never change buildKeepOut's result.
func filterApertures(apertures []geom.Polygon, wallArea float64) (survivors []geom.Polygon, warnings []Warning) {
	for i, a := range apertures {
		area := a.Area()
		switch {
		case area < apertureMinArea:
			warnings = append(warnings, Warning{
				Stage:   "aperture",
				Message: fmt.Sprintf("aperture %d discarded: area %.3f below micro-opening threshold %.3f", i, area, apertureMinArea),
			})
		case wallArea > 0 && area/wallArea > apertureMaxRatio:
			warnings = append(warnings, Warning{
				Stage:   "aperture",
				Message: fmt.Sprintf("aperture %d discarded: area ratio %.3f exceeds %.2f", i, area/wallArea, apertureMaxRatio),
			})
		default:
			survivors = append(survivors, a)
		}
	}
	return survivors, warnings
}

// buildKeepOut unions the wall's holes with the surviving apertures and
// optionally buffers the result outward by cfg.KeepOut. It returns a nil
// slice (not an error) when there is nothing to keep out.
func buildKeepOut(wall geom.Polygon, apertures []geom.Polygon, cfg Config) ([]geom.Polygon, []Warning, error) {
	survivors, warnings := filterApertures(apertures, wall.Area())

	all := make([]geom.Polygon, 0, len(survivors)+len(wall.Holes))
	all = append(all, geom.Holes(wall)...)
	all = append(all, survivors...)

	merged, err := geom.UnionAll(all)
	if err != nil {
		return nil, warnings, wrapGeometry("keep-out union", err)
	}
	if len(merged) == 0 {
		return nil, warnings, nil
	}

	if cfg.KeepOut <= 0 {
		return merged, warnings, nil
	}

	buffered := make([]geom.Polygon, 0, len(merged))
	for _, p := range merged {
		b, err := geom.Buffer(p, cfg.KeepOut)
		if err != nil {
			return nil, warnings, wrapGeometry("keep-out buffer", err)
		}
		buffered = append(buffered, b)
	}
	return buffered, warnings, nil
}
