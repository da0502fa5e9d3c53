package linebreak

import "testing"

func TestFits(t *testing.T) {
	tests := []struct {
		name    string
		width   Advance
		allowed Advance
		want    bool
	}{
		{"under", 50, 100, true},
		{"exact", 100, 100, true},
		{"over", 101, 100, false},
		{"within epsilon", 100.0009, 100, true},
		{"zero allowed exact", 0, 0, true},
		{"zero allowed over", 1, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fits(tc.width, tc.allowed); got != tc.want {
				t.Errorf("fits(%v, %v) = %v, want %v", tc.width, tc.allowed, got, tc.want)
			}
		})
	}
}

func TestRelTolerance(t *testing.T) {
	if got := relTolerance(0); got <= 0 {
		t.Errorf("relTolerance(0) = %v, want > 0", got)
	}
	if got := relTolerance(1000); got <= relTolerance(1) {
		t.Errorf("relTolerance should grow with allowedWidth: relTolerance(1000)=%v relTolerance(1)=%v", got, relTolerance(1))
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: 5, End: 10}
	if r.Contains(4) {
		t.Error("4 should not be contained")
	}
	if !r.Contains(5) {
		t.Error("5 should be contained")
	}
	if !r.Contains(9) {
		t.Error("9 should be contained")
	}
	if r.Contains(10) {
		t.Error("10 should not be contained (half-open)")
	}
	if got := r.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}

func TestExtentCombine(t *testing.T) {
	a := Extent{Ascent: -10, Descent: 2}
	b := Extent{Ascent: -20, Descent: 5}
	got := a.combine(b)
	want := Extent{Ascent: -20, Descent: 5}
	if got != want {
		t.Errorf("combine = %+v, want %+v", got, want)
	}
}

func TestBoundsIsZero(t *testing.T) {
	if !(Bounds{}).IsZero() {
		t.Error("zero-value Bounds should be IsZero")
	}
	if (Bounds{Right: 1}).IsZero() {
		t.Error("non-zero Bounds should not be IsZero")
	}
}
