package linebreak

import "github.com/go-text/typesetting/font"

// LineBreakStyle selects the strictness of the Unicode line-break
// algorithm used to derive word boundaries for a style run's script.
type LineBreakStyle int

const (
	// LineBreakStyleLoose permits the widest set of break opportunities.
	LineBreakStyleLoose LineBreakStyle = iota
	// LineBreakStyleNormal is the common-case rule set.
	LineBreakStyleNormal
	// LineBreakStyleStrict permits the narrowest set of break opportunities.
	LineBreakStyleStrict
)

// LineBreakWordStyle selects the CJK phrase-break policy, per spec §4.5.
type LineBreakWordStyle int

const (
	// LineBreakWordStyleNone breaks at the narrowest script rule
	// (per-grapheme for Han/Hiragana/Katakana/Hangul).
	LineBreakWordStyleNone LineBreakWordStyle = iota
	// LineBreakWordStylePhrase breaks only at phrase-level segmentation
	// (bunsetsu-like segments for Japanese, spaces for Korean).
	LineBreakWordStylePhrase
	// LineBreakWordStyleAuto behaves as Phrase when the result fits in
	// <=4 lines, otherwise falls back to None.
	LineBreakWordStyleAuto
)

// StartHyphenEdit instructs the solver to prepend a hyphen-like glyph to
// a line's continuation.
type StartHyphenEdit int

const (
	StartHyphenEditNoEdit StartHyphenEdit = iota
	StartHyphenEditInsertHyphen
)

// EndHyphenEdit instructs the solver to append a hyphen-like glyph to a
// line before the break. Only NoEdit vs. non-NoEdit matters for width
// accounting; glyph selection is left to the caller.
type EndHyphenEdit int

const (
	EndHyphenEditNoEdit EndHyphenEdit = iota
	EndHyphenEditInsertHyphen
	EndHyphenEditInsertArmenianHyphen
	EndHyphenEditInsertMaqaf
	EndHyphenEditInsertUkrainianHyphen
)

// HyphenEdit pairs the edits applied to the two lines straddling a
// hyphenation break.
type HyphenEdit struct {
	End   EndHyphenEdit
	Start StartHyphenEdit
}

// NoHyphenEdit is the zero-value edit: no hyphen glyph on either side.
var NoHyphenEdit = HyphenEdit{}

// runKind tags a prepared run as a style run or a replacement run. Per
// the redesign note in spec §9, the small fixed variant set here is
// modeled as a tagged struct rather than an interface hierarchy.
type runKind int

const (
	runKindStyle runKind = iota
	runKindReplacement
)

// StyleRun associates a half-open byte range with the shaping and
// break-policy parameters that apply to it. Style runs must partition
// the buffer exactly: no gaps, no overlaps.
type StyleRun struct {
	Range Range

	// FontCollection is an opaque handle to the font(s) used to shape
	// this run; the core never dereferences it beyond identity and
	// extent lookups performed by the caller-supplied Advancer.
	FontCollection *font.Face

	Size               Advance
	LetterSpacing      Advance
	ScaleX             float32
	LocaleListID       int32
	LineBreakStyle     LineBreakStyle
	LineBreakWordStyle LineBreakWordStyle
	HyphenationAllowed bool
	KerningIgnored     bool
}

// ReplacementRun is a half-open byte range whose interior is atomic: it
// offers no interior break opportunity, and its total advance is
// supplied directly rather than derived from shaping. Per spec §3, its
// ascent/descent contribution is zero.
type ReplacementRun struct {
	Range        Range
	Advance      Advance
	LocaleListID int32
}

// preparedRun is the internal tagged-union representation merging style
// runs and replacement runs into a single ordered, gap-free sequence
// used by MeasuredText and the enumerator.
type preparedRun struct {
	kind        runKind
	style       StyleRun
	replacement ReplacementRun
}

func (r preparedRun) rng() Range {
	if r.kind == runKindReplacement {
		return r.replacement.Range
	}
	return r.style.Range
}

func (r preparedRun) isReplacement() bool { return r.kind == runKindReplacement }
