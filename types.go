package linebreak

import "math"

// Advance is a horizontal distance in the layout coordinate space. All
// advances, widths and extents in this package are 32-bit floats, per
// the wire contract this core was built against; ε-tolerance
// computations promote to float64 internally to protect against
// summation-order drift (see relTolerance).
type Advance float32

// Zero is the zero advance.
func (a Advance) Zero() Advance { return 0 }

// IsZero reports whether a is exactly zero.
func (a Advance) IsZero() bool { return a == 0 }

// Max returns the larger of a and b.
func (a Advance) Max(b Advance) Advance {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func (a Advance) Min(b Advance) Advance {
	if a < b {
		return a
	}
	return b
}

// relTolerance computes ε for a given allowed width, per spec §4.4.7: a
// relative tolerance of ~1e-5 * max(1, allowedWidth), immunizing fit
// decisions against float summation order.
func relTolerance(allowedWidth Advance) Advance {
	w := float64(allowedWidth)
	if w < 1 {
		w = 1
	}
	return Advance(1e-5 * w)
}

// fits reports whether width is within allowedWidth plus the rounding
// tolerance ε.
func fits(width, allowedWidth Advance) bool {
	return float64(width) <= float64(allowedWidth)+float64(relTolerance(allowedWidth))
}

// Range is a half-open byte range [Start, End) into a text buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether offset lies within the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Extent describes how far a line rises above (Ascent, non-positive) and
// drops below (Descent, non-negative) its baseline.
type Extent struct {
	Ascent  Advance // always <= 0
	Descent Advance // always >= 0
}

// combine returns the extent covering both e and o: the smaller (more
// negative) ascent, and the larger descent.
func (e Extent) combine(o Extent) Extent {
	return Extent{
		Ascent:  Advance(math.Min(float64(e.Ascent), float64(o.Ascent))),
		Descent: Advance(math.Max(float64(e.Descent), float64(o.Descent))),
	}
}

// Bounds is a tight ink rectangle, relative to a line's origin, reported
// only when bounds mode is enabled (see BuildFlags.ComputeBounds).
type Bounds struct {
	Left, Top, Right, Bottom Advance
}

// IsZero reports whether the bounds rectangle has no extent.
func (b Bounds) IsZero() bool {
	return b.Left == 0 && b.Top == 0 && b.Right == 0 && b.Bottom == 0
}
