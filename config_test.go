package wallpack

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsEmptyWidths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Widths = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty Widths")
	}
}

func TestValidateRejectsNonPositiveWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Widths = []float64{1239, 0, 413}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive width")
	}
}

func TestValidateRejectsNonPositiveCourseHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CourseHeight = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive CourseHeight")
	}
}

func TestValidateRejectsNegativeMinAdaptiveHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinAdaptiveHeight = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative MinAdaptiveHeight")
	}
}

func TestValidateRejectsNegativeWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative Workers")
	}
}

func TestMaxStdWidth(t *testing.T) {
	cfg := DefaultConfig()
	if got, want := cfg.MaxStdWidth(), 1239.0; got != want {
		t.Errorf("MaxStdWidth() = %v, want %v", got, want)
	}
}

func TestSmallestWidth(t *testing.T) {
	if got, want := smallestWidth([]float64{826, 1239, 413}), 413.0; got != want {
		t.Errorf("smallestWidth() = %v, want %v", got, want)
	}
}

func TestWidthsDescending(t *testing.T) {
	got := widthsDescending([]float64{413, 1239, 826})
	want := []float64{1239, 826, 413}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("widthsDescending() = %v, want %v", got, want)
		}
	}
}
