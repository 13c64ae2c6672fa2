package wallpack

import (
	"fmt"
	"math"
)

// letterFor maps a standard block width to its label letter, falling back
// to the nearest configured width when there is no exact match (spec.md
// §3 Label). Ties are broken toward the smaller candidate width so the
// mapping is deterministic.
func letterFor(width float64, cfg Config) string {
	if letter, ok := cfg.SizeToLetter[width]; ok {
		return letter
	}
	bestWidth := 0.0
	bestDiff := math.Inf(1)
	found := false
	for w := range cfg.SizeToLetter {
		diff := math.Abs(w - width)
		if diff < bestDiff || (diff == bestDiff && w < bestWidth) {
			bestWidth, bestDiff, found = w, diff, true
		}
	}
	if !found {
		return "?"
	}
	return cfg.SizeToLetter[bestWidth]
}

// assignStandardLabels assigns "<letter><ordinal>" labels to every
// placement in emission order, one counter per letter.
func assignStandardLabels(raw []rawPlacement, cfg Config) []Placement {
	counts := map[string]int{}
	out := make([]Placement, len(raw))
	for i, p := range raw {
		letter := letterFor(p.Width, cfg)
		counts[letter]++
		out[i] = Placement{
			Label:  fmt.Sprintf("%s%d", letter, counts[letter]),
			Type:   letter,
			Width:  p.Width,
			Height: p.Height,
			X:      p.X,
			Y:      p.Y,
		}
	}
	return out
}

// assignCustomLabels assigns "CU<code>(<ordinal>)" labels in emission
// order, one counter per ctype code.
func assignCustomLabels(raw []classifiedCustom) []CustomPiece {
	counts := map[string]int{}
	out := make([]CustomPiece, len(raw))
	for i, c := range raw {
		code := c.CType.Code()
		counts[code]++
		out[i] = CustomPiece{
			Label:            fmt.Sprintf("CU%s(%d)", code, counts[code]),
			CType:            c.CType,
			Width:            c.Width,
			Height:           c.Height,
			X:                c.X,
			Y:                c.Y,
			Geometry:         c.Geometry,
			SourceBlockWidth: c.SourceBlockWidth,
			Waste:            c.Waste,
		}
	}
	return out
}
