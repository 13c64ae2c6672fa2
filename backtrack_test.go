package wallpack

import (
	"testing"

	"github.com/blockcourse/wallpack/internal/geom"
)

func TestReversedOrder(t *testing.T) {
	got := reversedOrder([]float64{1239, 826, 413})
	want := []float64{413, 826, 1239}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reversedOrder() = %v, want %v", got, want)
		}
	}
}

func TestGreedyFillToEndCoversWholeSpan(t *testing.T) {
	component := geom.Rect(0, 0, 413+413, 495)
	cfg := DefaultConfig()
	placements, customs, err := greedyFillToEnd(component, 0, 495, 0, 413+413, []float64{413}, cfg)
	if err != nil {
		t.Fatalf("greedyFillToEnd: %v", err)
	}
	if len(customs) != 0 {
		t.Errorf("expected exact fit with no customs, got %d", len(customs))
	}
	if len(placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placements))
	}
}

func TestPackSegmentTailBacktrackTriggers(t *testing.T) {
	// The descending order places 1239 + 1239 and leaves a 10mm residual,
	// below MicroRest (15): the tail backtrack should retry with the
	// reversed (smallest-first) order and keep whichever scores lower.
	cfg := DefaultConfig()
	width := 1239.0 + 826 + 413 + 10
	component := geom.Rect(0, 0, width, cfg.CourseHeight)
	placements, customs, err := packSegment(component, 0, cfg.CourseHeight, cfg.Widths, 0, cfg)
	if err != nil {
		t.Fatalf("packSegment: %v", err)
	}
	var placedWidth, customWidth float64
	for _, p := range placements {
		placedWidth += p.Width
	}
	for _, c := range customs {
		customWidth += c.Width
	}
	if got, want := placedWidth+customWidth, width; got < want-1.0 || got > want+1.0 {
		t.Errorf("total covered width = %v, want ~%v", got, want)
	}
}
