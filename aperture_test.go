package wallpack

import (
	"math"
	"testing"

	"github.com/blockcourse/wallpack/internal/geom"
)

func TestFilterAperturesDropsMicroOpening(t *testing.T) {
	tiny := geom.Rect(0, 0, 10, 10) // area 100 < apertureMinArea
	survivors, warnings := filterApertures([]geom.Polygon{tiny}, 1e6)
	if len(survivors) != 0 {
		t.Errorf("expected tiny aperture to be dropped, got %d survivors", len(survivors))
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(warnings))
	}
}

func TestFilterAperturesDropsOversized(t *testing.T) {
	wall := geom.Rect(0, 0, 1000, 1000)
	huge := geom.Rect(0, 0, 950, 950)
	survivors, warnings := filterApertures([]geom.Polygon{huge}, wall.Area())
	if len(survivors) != 0 {
		t.Errorf("expected oversized aperture to be dropped, got %d survivors", len(survivors))
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(warnings))
	}
}

func TestFilterAperturesKeepsPlausible(t *testing.T) {
	door := geom.Rect(100, 0, 926, 2000) // 826 x 2000, well inside bounds
	survivors, warnings := filterApertures([]geom.Polygon{door}, 1e7)
	if len(survivors) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(survivors))
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %d", len(warnings))
	}
}

func TestBuildKeepOutEmptyWhenNothingToKeepOut(t *testing.T) {
	wall := geom.Rect(0, 0, 1000, 1000)
	cfg := DefaultConfig()
	keepOut, _, err := buildKeepOut(wall, nil, cfg)
	if err != nil {
		t.Fatalf("buildKeepOut: %v", err)
	}
	if len(keepOut) != 0 {
		t.Errorf("expected no keep-out regions, got %d", len(keepOut))
	}
}

func TestBuildKeepOutBuffersAperture(t *testing.T) {
	wall := geom.Rect(0, 0, 2000, 2000)
	door := geom.Rect(500, 0, 1326, 2000) // 826 wide, plausible door
	cfg := DefaultConfig()
	keepOut, _, err := buildKeepOut(wall, []geom.Polygon{door}, cfg)
	if err != nil {
		t.Fatalf("buildKeepOut: %v", err)
	}
	if len(keepOut) != 1 {
		t.Fatalf("expected 1 keep-out region, got %d", len(keepOut))
	}
	if keepOut[0].Area() <= door.Area() {
		t.Errorf("expected buffered keep-out area > aperture area: got %v, want > %v", keepOut[0].Area(), door.Area())
	}
}

func TestBuildKeepOutNoBufferWhenDisabled(t *testing.T) {
	wall := geom.Rect(0, 0, 2000, 2000)
	door := geom.Rect(500, 0, 1326, 2000)
	cfg := DefaultConfig()
	cfg.KeepOut = 0
	keepOut, _, err := buildKeepOut(wall, []geom.Polygon{door}, cfg)
	if err != nil {
		t.Fatalf("buildKeepOut: %v", err)
	}
	if len(keepOut) != 1 {
		t.Fatalf("expected 1 keep-out region, got %d", len(keepOut))
	}
	if math.Abs(keepOut[0].Area()-door.Area()) > 1.0 {
		t.Errorf("expected keep-out area to equal aperture area, got %v vs %v", keepOut[0].Area(), door.Area())
	}
}
