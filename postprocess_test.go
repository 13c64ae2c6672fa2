package wallpack

import (
	"math"
	"testing"

	"github.com/blockcourse/wallpack/internal/geom"
)

func TestInSpec(t *testing.T) {
	cfg := DefaultConfig()
	if !inSpec(413, 495, cfg) {
		t.Error("413x495 should be in spec")
	}
	if inSpec(900, 495, cfg) {
		t.Error("900 wide should be out of spec")
	}
	if inSpec(413, 900, cfg) {
		t.Error("900 tall should be out of spec")
	}
}

func TestSplitAllOutOfSpecSlicesWidePiece(t *testing.T) {
	cfg := DefaultConfig()
	wide := rawCustom{
		Width: 1000, Height: 495, X: 0, Y: 0,
		Geometry: geom.Rect(0, 0, 1000, 495),
	}
	pieces, err := coalesceByRow([]rawCustom{wide}, cfg)
	if err != nil {
		t.Fatalf("coalesceByRow: %v", err)
	}
	split, err := splitAllOutOfSpec(pieces, cfg)
	if err != nil {
		t.Fatalf("splitAllOutOfSpec: %v", err)
	}
	for _, p := range split {
		if p.Width > cfg.SplitMaxWidth+cfg.CoordEps {
			t.Errorf("strip width %v exceeds SplitMaxWidth %v", p.Width, cfg.SplitMaxWidth)
		}
	}
	var total float64
	for _, p := range split {
		total += p.Geometry.Area()
	}
	if math.Abs(total-wide.Geometry.Area()) > 1.0 {
		t.Errorf("split pieces total area = %v, want %v", total, wide.Geometry.Area())
	}
}

func TestCoalesceByRowMergesWithinRowOnly(t *testing.T) {
	cfg := DefaultConfig()
	raw := []rawCustom{
		{Width: 100, Height: 495, X: 0, Y: 0, Geometry: geom.Rect(0, 0, 100, 495), CourseIndex: 0},
		{Width: 100, Height: 495, X: 50, Y: 0, Geometry: geom.Rect(50, 0, 150, 495), CourseIndex: 0},
		{Width: 100, Height: 495, X: 0, Y: 495, Geometry: geom.Rect(0, 495, 100, 990), CourseIndex: 1},
	}
	pieces, err := coalesceByRow(raw, cfg)
	if err != nil {
		t.Fatalf("coalesceByRow: %v", err)
	}
	if len(pieces) != 2 {
		t.Fatalf("expected row 0's two adjacent pieces to merge into 1, plus row 1's piece: got %d pieces", len(pieces))
	}
}

func TestMatchingWidth(t *testing.T) {
	cfg := DefaultConfig()
	if w, ok := matchingWidth(828, cfg); !ok || w != 826 {
		t.Errorf("matchingWidth(828) = (%v, %v), want (826, true)", w, ok)
	}
	if _, ok := matchingWidth(600, cfg); ok {
		t.Error("matchingWidth(600) should not match within CustomTol")
	}
}

func TestSourceBlockPicksMinimalWaste(t *testing.T) {
	cfg := DefaultConfig()
	source, waste := sourceBlock(300, cfg)
	if source != 413 {
		t.Errorf("source = %v, want 413", source)
	}
	if math.Abs(waste-113) > 1e-6 {
		t.Errorf("waste = %v, want 113", waste)
	}
}

func TestSourceBlockFallsBackToLargest(t *testing.T) {
	cfg := DefaultConfig()
	source, waste := sourceBlock(2000, cfg)
	if source != 1239 {
		t.Errorf("source = %v, want 1239 (largest available)", source)
	}
	if waste >= 0 {
		t.Errorf("waste = %v, want negative (required exceeds every source)", waste)
	}
}

func TestEliminateMicroDropsTinyPieces(t *testing.T) {
	cfg := DefaultConfig()
	pieces := []rowPiece{
		{Width: 1, Height: 1, Geometry: geom.Rect(0, 0, 0.001, 0.001)},
		{Width: 413, Height: 495, Geometry: geom.Rect(0, 0, 413, 495)},
	}
	out, warnings := eliminateMicro(pieces, cfg, nil)
	if len(out) != 1 {
		t.Fatalf("expected 1 surviving piece, got %d", len(out))
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(warnings))
	}
}

func TestReplaceWithStandardPromotesExactMatch(t *testing.T) {
	cfg := DefaultConfig()
	pieces := []rowPiece{
		{Width: 826, Height: 495, X: 100, Y: 0, Geometry: geom.Rect(100, 0, 926, 495)},
	}
	kept, promoted := replaceWithStandard(pieces, cfg)
	if len(kept) != 0 {
		t.Errorf("expected the piece to be promoted out, got %d kept", len(kept))
	}
	if len(promoted) != 1 || promoted[0].Width != 826 {
		t.Fatalf("promoted = %v, want one 826-wide placement", promoted)
	}
}

func TestClassifyAssignsCodes(t *testing.T) {
	cfg := DefaultConfig()
	pieces := []rowPiece{
		{Width: 300, Height: 495, Geometry: geom.Rect(0, 0, 300, 495)},         // in spec, standard height -> "1"
		{Width: 300, Height: 300, Geometry: geom.Rect(0, 0, 300, 300)},         // flexible height -> "2"
		{Width: 2000, Height: 495, Geometry: geom.Rect(0, 0, 2000, 495)},       // too wide -> "X"
	}
	got := classify(pieces, cfg)
	want := []CustomType{CustomStandardCut, CustomFlexibleCut, CustomOutOfSpec}
	for i, w := range want {
		if got[i].CType != w {
			t.Errorf("pieces[%d].CType = %v, want %v", i, got[i].CType, w)
		}
	}
}

func TestCustomTypeCode(t *testing.T) {
	cases := map[CustomType]string{
		CustomStandardCut: "1",
		CustomFlexibleCut: "2",
		CustomOutOfSpec:   "X",
	}
	for ct, want := range cases {
		if got := ct.Code(); got != want {
			t.Errorf("Code() = %v, want %v", got, want)
		}
	}
}
