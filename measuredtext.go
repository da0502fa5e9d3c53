package linebreak

import "sort"

// Advancer is the external shaping collaborator (spec §1, "out of
// scope: font shaping and advance measurement"). It supplies the
// incremental advance contributed by each code unit of a style run, and
// the run's ascent/descent extent. Implementations typically wrap a
// real text shaper (HarfBuzz, go-text/typesetting, etc.); this package
// never shapes text itself.
type Advancer interface {
	// Advances returns one advance per byte offset in run.Range,
	// ordered by offset. Trailing bytes of a multi-byte cluster, and
	// zero-width characters, are represented as 0.
	Advances(text string, run StyleRun) []Advance
	// Extent returns the run's ascent (<=0) and descent (>=0).
	Extent(run StyleRun) Extent
}

// BoundsProvider is the external collaborator used when bounds-aware
// fitting is enabled (spec §4.4.5). It reports the tight ink rectangle
// of a byte range, which may overshoot the advance-derived box for
// fonts whose glyphs are wider than their advance.
type BoundsProvider interface {
	Bounds(text string, run StyleRun, start, end int) Bounds
}

// BuildFlags parameterizes MeasuredText construction, mirroring the
// collaborator contract in spec §6.
type BuildFlags struct {
	ComputeHyphenation bool
	ComputeFullLayout  bool
	ComputeBounds      bool
	IgnoreKerning      bool
	Hint               string
}

// MeasuredTextBuilder accumulates style runs and replacement runs for a
// single paragraph before shaping and validation in Build.
type MeasuredTextBuilder struct {
	styles       []StyleRun
	replacements []ReplacementRun
}

// NewMeasuredTextBuilder returns an empty builder.
func NewMeasuredTextBuilder() *MeasuredTextBuilder {
	return &MeasuredTextBuilder{}
}

// AddStyleRun registers a style run over [start, end).
func (b *MeasuredTextBuilder) AddStyleRun(start, end int, run StyleRun) *MeasuredTextBuilder {
	run.Range = Range{Start: start, End: end}
	b.styles = append(b.styles, run)
	return b
}

// AddReplacementRun registers an atomic replacement run over [start, end)
// with a directly-specified advance.
func (b *MeasuredTextBuilder) AddReplacementRun(start, end int, advance Advance, localeListID int32) *MeasuredTextBuilder {
	b.replacements = append(b.replacements, ReplacementRun{
		Range:        Range{Start: start, End: end},
		Advance:      advance,
		LocaleListID: localeListID,
	})
	return b
}

// MeasuredText is an immutable, indexed record of per-byte advances,
// per-range style/replacement runs, and per-range extents, derived from
// a paragraph's style runs plus shaping performed by an Advancer. It is
// built once per paragraph and consulted read-only by the solver.
type MeasuredText struct {
	text    string
	runs    []preparedRun // sorted by start, partitioning [0, len(text))
	extents []Extent      // parallel to runs; zero for replacement runs
	advance []Advance     // len(text); advance[i] for byte offset i
	bounds  BoundsProvider
	flags   BuildFlags
}

// Build validates the accumulated runs and shapes them via advancer,
// returning a ready-to-use MeasuredText. Overlapping or gapped style
// runs, and replacement runs crossing a style-run boundary, are
// reported as a *BuildError (spec §7); all other numeric edge cases are
// the caller's responsibility.
func (b *MeasuredTextBuilder) Build(text string, advancer Advancer, bounds BoundsProvider, flags BuildFlags) (*MeasuredText, error) {
	styles := append([]StyleRun(nil), b.styles...)
	sort.Slice(styles, func(i, j int) bool { return styles[i].Range.Start < styles[j].Range.Start })

	if err := validatePartition(styles, len(text)); err != nil {
		return nil, err
	}

	replacements := append([]ReplacementRun(nil), b.replacements...)
	sort.Slice(replacements, func(i, j int) bool { return replacements[i].Range.Start < replacements[j].Range.Start })
	if err := validateReplacements(replacements, styles); err != nil {
		return nil, err
	}

	mt := &MeasuredText{
		text:    text,
		advance: make([]Advance, len(text)),
		bounds:  bounds,
		flags:   flags,
	}

	addStyle := func(run StyleRun) {
		mt.runs = append(mt.runs, preparedRun{kind: runKindStyle, style: run})
		fillAdvances(mt.advance, text, run, advancer)
		mt.extents = append(mt.extents, extentOf(advancer, run))
	}
	addReplacement := func(rr ReplacementRun) {
		mt.runs = append(mt.runs, preparedRun{kind: runKindReplacement, replacement: rr})
		fillReplacementAdvance(mt.advance, rr)
		mt.extents = append(mt.extents, Extent{})
	}

	replIdx := 0
	for _, sr := range styles {
		// Emit style run segments, splitting around any replacement
		// runs nested inside it.
		cursor := sr.Range.Start
		for replIdx < len(replacements) && replacements[replIdx].Range.Start < sr.Range.End {
			rr := replacements[replIdx]
			if cursor < rr.Range.Start {
				addStyle(subRun(sr, cursor, rr.Range.Start))
			}
			addReplacement(rr)
			cursor = rr.Range.End
			replIdx++
		}
		if cursor < sr.Range.End {
			addStyle(subRun(sr, cursor, sr.Range.End))
		}
	}

	return mt, nil
}

func extentOf(advancer Advancer, run StyleRun) Extent {
	if advancer == nil {
		return Extent{}
	}
	return advancer.Extent(run)
}

func subRun(sr StyleRun, start, end int) StyleRun {
	sr.Range = Range{Start: start, End: end}
	return sr
}

func fillAdvances(out []Advance, text string, run StyleRun, advancer Advancer) {
	if run.Range.Len() <= 0 || advancer == nil {
		return
	}
	advances := advancer.Advances(text, run)
	for i, a := range advances {
		if run.Range.Start+i < len(out) {
			out[run.Range.Start+i] = a
		}
	}
}

func fillReplacementAdvance(out []Advance, rr ReplacementRun) {
	if rr.Range.Len() <= 0 {
		return
	}
	out[rr.Range.Start] = rr.Advance
	for i := rr.Range.Start + 1; i < rr.Range.End; i++ {
		out[i] = 0
	}
}

func validatePartition(styles []StyleRun, length int) error {
	cursor := 0
	for _, sr := range styles {
		if sr.Range.Start != cursor {
			return newBuildError("style runs must partition the buffer without gap or overlap", sr.Range)
		}
		if sr.Range.End < sr.Range.Start {
			return newBuildError("style run end precedes start", sr.Range)
		}
		cursor = sr.Range.End
	}
	if cursor != length {
		return newBuildError("style runs do not cover the full buffer", Range{Start: cursor, End: length})
	}
	return nil
}

func validateReplacements(replacements []ReplacementRun, styles []StyleRun) error {
	prevEnd := -1
	for _, rr := range replacements {
		if rr.Range.Start < prevEnd {
			return newBuildError("replacement runs overlap", rr.Range)
		}
		prevEnd = rr.Range.End

		contained := false
		for _, sr := range styles {
			if rr.Range.Start >= sr.Range.Start && rr.Range.End <= sr.Range.End {
				contained = true
				break
			}
		}
		if !contained {
			return newBuildError("replacement run crosses a style-run boundary", rr.Range)
		}
	}
	return nil
}

// Text returns the paragraph's text buffer.
func (mt *MeasuredText) Text() string { return mt.text }

// Advance returns the advance contributed by the byte at offset i.
func (mt *MeasuredText) Advance(i int) Advance {
	if i < 0 || i >= len(mt.advance) {
		return 0
	}
	return mt.advance[i]
}

// runIndexAt returns the index into mt.runs of the run containing
// offset, or -1 at end of buffer.
func (mt *MeasuredText) runIndexAt(offset int) int {
	lo, hi := 0, len(mt.runs)
	for lo < hi {
		mid := (lo + hi) / 2
		if mt.runs[mid].rng().End <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(mt.runs) && mt.runs[lo].rng().Contains(offset) {
		return lo
	}
	return -1
}

// RunInfo describes the style applicable at a byte offset, per spec
// §4.1 run_info.
type RunInfo struct {
	LocaleListID       int32
	Size               Advance
	LetterSpacing      Advance
	HyphenationAllowed bool
	LineBreakStyle     LineBreakStyle
	LineBreakWordStyle LineBreakWordStyle
	Extent             Extent
	IsReplacement      bool
}

// RunInfo returns the style applicable at byte offset i.
func (mt *MeasuredText) RunInfo(i int) RunInfo {
	idx := mt.runIndexAt(i)
	if idx < 0 {
		return RunInfo{}
	}
	r := mt.runs[idx]
	if r.isReplacement() {
		return RunInfo{
			LocaleListID:  r.replacement.LocaleListID,
			IsReplacement: true,
		}
	}
	return RunInfo{
		LocaleListID:       r.style.LocaleListID,
		Size:               r.style.Size,
		LetterSpacing:      r.style.LetterSpacing,
		HyphenationAllowed: r.style.HyphenationAllowed,
		LineBreakStyle:     r.style.LineBreakStyle,
		LineBreakWordStyle: r.style.LineBreakWordStyle,
	}
}

// IsReplacementInterior reports whether i lies within a replacement run
// but is not its first byte (spec §4.1).
func (mt *MeasuredText) IsReplacementInterior(i int) bool {
	idx := mt.runIndexAt(i)
	if idx < 0 || !mt.runs[idx].isReplacement() {
		return false
	}
	return i > mt.runs[idx].replacement.Range.Start
}

// ReplacementAt returns the replacement run containing offset, if any.
func (mt *MeasuredText) ReplacementAt(offset int) (ReplacementRun, bool) {
	idx := mt.runIndexAt(offset)
	if idx < 0 || !mt.runs[idx].isReplacement() {
		return ReplacementRun{}, false
	}
	return mt.runs[idx].replacement, true
}

// Extent returns (min ascent, max descent) over all non-replacement
// content in [start, end); if the range is entirely replacement
// content, it returns the zero extent (spec §4.1).
func (mt *MeasuredText) Extent(start, end int) Extent {
	var result Extent
	any := false
	for i := mt.runIndexAtOrAfter(start); i < len(mt.runs) && mt.runs[i].rng().Start < end; i++ {
		if mt.runs[i].isReplacement() {
			continue
		}
		e := mt.extents[i]
		if !any {
			result = e
			any = true
		} else {
			result = result.combine(e)
		}
	}
	return result
}

func (mt *MeasuredText) runIndexAtOrAfter(offset int) int {
	lo, hi := 0, len(mt.runs)
	for lo < hi {
		mid := (lo + hi) / 2
		if mt.runs[mid].rng().End <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Bounds returns the tight ink rectangle of [start, end) when bounds
// mode is enabled; the zero rectangle otherwise.
func (mt *MeasuredText) Bounds(start, end int) Bounds {
	if !mt.flags.ComputeBounds || mt.bounds == nil {
		return Bounds{}
	}
	idx := mt.runIndexAt(start)
	if idx < 0 || mt.runs[idx].isReplacement() {
		return Bounds{}
	}
	return mt.bounds.Bounds(mt.text, mt.runs[idx].style, start, end)
}

// BoundsEnabled reports whether this MeasuredText was built with
// bounds-aware fitting available.
func (mt *MeasuredText) BoundsEnabled() bool {
	return mt.flags.ComputeBounds && mt.bounds != nil
}
