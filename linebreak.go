package linebreak

// maxAutoPhraseLines bounds the CJK LineBreakWordStyleAuto probe (spec
// §4.5): a phrase-level break is accepted only if it would still fit in
// this many lines, matching the conventional ICU default.
const maxAutoPhraseLines = 4

// BreakLineGreedy walks mt's break opportunities in order and commits a
// line whenever the next candidate would overflow the width budget
// reported by wp for that line number, generalizing the single-pass
// "last fitting attempt" algorithm used throughout this package's
// lineage. It performs no lookahead beyond one candidate and never
// revisits a committed line, so it is not minimum-raggedness optimal;
// see the package doc comment for that tradeoff.
//
// hyphenators and locales may be nil, in which case DefaultHyphenatorMap
// and DefaultLocaleListCache are used; hyphenation candidates are only
// produced for runs that allow hyphenation and whose locale has a
// registered Hyphenator. tabs may be nil, in which case a tab
// character measures as its shaped advance with no special stop
// behavior.
func BreakLineGreedy(mt *MeasuredText, wp WidthProvider, hyphenators *HyphenatorMap, locales *LocaleListCache, tabs *TabStops, useBoundsForWidth bool) (LineResult, error) {
	if mt == nil {
		return LineResult{}, newBuildError("nil measured text", Range{})
	}
	if wp == nil {
		return LineResult{}, newBuildError("nil width provider", Range{})
	}
	if len(mt.Text()) == 0 {
		return LineResult{}, nil
	}
	if hyphenators == nil {
		hyphenators = DefaultHyphenatorMap()
	}
	if locales == nil {
		locales = DefaultLocaleListCache()
	}

	enum := NewEnumerator(mt, hyphenators, locales)
	applyWordStylePhrasing(mt, enum, wp.LineWidth(0))

	asm := &lineAssembler{}
	start := 0
	lineNumber := 0
	// startEdit is the continuation edit applied to the line currently
	// being built at start, carried forward from the Edit.Start of the
	// hyphenation break that ended the previous line (spec §4.4.4).
	startEdit := StartHyphenEditNoEdit

	type fitAttempt struct {
		candidate BreakCandidate
		width     Advance
	}
	var last *fitAttempt

	for {
		c, ok := enum.Next()
		if !ok {
			break
		}

		allowed := wp.LineWidth(lineNumber)
		width := effectiveWidth(mt, start, c, tabs, useBoundsForWidth, startEdit)

		if !fits(width, allowed) && last != nil {
			asm.commit(mt, start, last.candidate.Offset, last.candidate.TrimmedEnd, last.width, last.candidate.Mandatory, last.candidate.Edit, startEdit)
			start = last.candidate.Offset
			startEdit = last.candidate.Edit.Start
			lineNumber++
			last = nil
			allowed = wp.LineWidth(lineNumber)
			width = effectiveWidth(mt, start, c, tabs, useBoundsForWidth, startEdit)
		}

		if !fits(width, allowed) && last == nil && c.Kind != BreakDesperate {
			// The candidate alone overflows an empty line (including one
			// just started above): fall back to per-grapheme breaks
			// within it.
			if split := splitDesperately(mt, start, c); len(split) > 0 {
				enum.InsertAhead(split)
				continue
			}
		}

		if c.Mandatory || !fits(width, allowed) {
			asm.commit(mt, start, c.Offset, c.TrimmedEnd, width, c.Mandatory, c.Edit, startEdit)
			start = c.Offset
			startEdit = c.Edit.Start
			lineNumber++
			last = nil
		} else {
			last = &fitAttempt{candidate: c, width: width}
		}
	}

	if last != nil {
		asm.commit(mt, start, last.candidate.Offset, last.candidate.TrimmedEnd, last.width, last.candidate.Mandatory, last.candidate.Edit, startEdit)
	}

	return asm.result(), nil
}

// effectiveWidth is the width reported for a line ending at c and used
// to decide whether it fits: the advance sum over [start, c.TrimmedEnd)
// (or, when bounds-aware fitting is enabled, the tight ink rectangle
// over the same range), plus the width contributed by an inserted end-
// hyphen glyph when c ends a hyphenation break, plus the width
// contributed by a start-hyphen glyph when startEdit carries one over
// from the previous line's break (spec §4.4.4).
func effectiveWidth(mt *MeasuredText, start int, c BreakCandidate, tabs *TabStops, useBounds bool, startEdit StartHyphenEdit) Advance {
	width := measureLineWidth(mt, start, c.TrimmedEnd, tabs, c)
	if useBounds && mt.BoundsEnabled() {
		b := mt.Bounds(start, c.TrimmedEnd)
		if !b.IsZero() {
			width = b.Right - b.Left
		}
	}
	if c.Edit.End != EndHyphenEditNoEdit {
		width += hyphenGlyphWidth(mt, start)
	}
	if startEdit != StartHyphenEditNoEdit {
		width += hyphenGlyphWidth(mt, start)
	}
	return width
}

// hyphenGlyphWidth approximates the width contribution of an inserted
// hyphen glyph as one character advance of the run's font size, since
// the actual glyph advance is a shaping concern this package does not
// perform.
func hyphenGlyphWidth(mt *MeasuredText, start int) Advance {
	info := mt.RunInfo(start)
	return info.Size
}

// measureLineWidth sums per-byte advances over [start, end), resolving
// tab characters against tabs and adding each run's letter spacing once
// per character boundary (spec §4.4.6).
func measureLineWidth(mt *MeasuredText, start, end int, tabs *TabStops, c BreakCandidate) Advance {
	if end <= start {
		return 0
	}
	text := mt.Text()
	var width Advance
	i := start
	for i < end {
		if text[i] == '\t' && tabs != nil {
			width = tabs.NextStopAfter(width)
			i++
			continue
		}
		width += mt.Advance(i)
		if !isUTF8Continuation(text[i]) {
			info := mt.RunInfo(i)
			if info.LetterSpacing != 0 && i+1 < end {
				width += info.LetterSpacing
			}
		}
		i++
	}
	return width
}

// splitDesperately produces DESPERATE candidates at every grapheme
// boundary within [start, c.Offset), used when a single break-free
// stretch of text cannot fit on any line. A replacement run anywhere in
// the range is never split: its own start/end offsets are substituted
// for the grapheme boundaries that would otherwise fall in its
// interior, preserving atomicity even in this last-resort path.
func splitDesperately(mt *MeasuredText, start int, c BreakCandidate) []BreakCandidate {
	var offsets []int
	for _, o := range desperateBreaksIn(mt.Text(), start, c.Offset) {
		if !mt.IsReplacementInterior(o) {
			offsets = append(offsets, o)
		}
	}
	for _, r := range mt.runs {
		if !r.isReplacement() {
			continue
		}
		if rs := r.replacement.Range.Start; rs > start && rs < c.Offset {
			offsets = append(offsets, rs)
		}
		if re := r.replacement.Range.End; re > start && re < c.Offset {
			offsets = append(offsets, re)
		}
	}
	if len(offsets) == 0 {
		return nil
	}
	sortInts(offsets)
	offsets = dedupeInts(offsets)

	out := make([]BreakCandidate, 0, len(offsets)+1)
	for _, off := range offsets {
		kind := BreakDesperate
		if isReplacementBoundary(mt, off) {
			kind = BreakReplacementEdge
		}
		out = append(out, BreakCandidate{Offset: off, Kind: kind, TrimmedEnd: off})
	}
	out = append(out, c)
	return out
}

func isReplacementBoundary(mt *MeasuredText, offset int) bool {
	for _, r := range mt.runs {
		if r.isReplacement() && (r.replacement.Range.Start == offset || r.replacement.Range.End == offset) {
			return true
		}
	}
	return false
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func dedupeInts(s []int) []int {
	out := s[:0]
	var prev int
	for i, v := range s {
		if i == 0 || v != prev {
			out = append(out, v)
		}
		prev = v
	}
	return out
}

// applyWordStylePhrasing re-derives word-boundary candidates for any
// stretch of text whose style run requests Phrase or Auto CJK breaking
// (spec §4.5), replacing the plain word-segmenter boundaries the
// enumerator produced by default with phrase-level ones. representativeWidth
// is the width of the paragraph's first line, used as the Auto policy's
// probe budget; later lines may differ, which is an accepted
// approximation of the probe-then-fallback pass.
func applyWordStylePhrasing(mt *MeasuredText, enum *Enumerator, representativeWidth Advance) {
	text := mt.Text()
	if len(text) == 0 {
		return
	}
	for _, r := range mt.runs {
		if r.isReplacement() {
			continue
		}
		style := r.style.LineBreakWordStyle
		if style == LineBreakWordStyleNone {
			continue
		}
		if !isCJKRun(text, r.style.Range) {
			continue
		}
		resolved := resolveWordStyle(style, mt, r.style.Range.Start, r.style.Range.End, representativeWidth, maxAutoPhraseLines)
		if resolved == nil {
			continue
		}
		enum.ReplaceWordBoundariesIn(r.style.Range, resolved)
	}
}

// isCJKRun reports whether run contains any Han, Hiragana, Katakana or
// Hangul codepoint, the scripts for which phrase-style breaking is
// meaningful.
func isCJKRun(text string, rng Range) bool {
	for _, r := range text[rng.Start:rng.End] {
		switch {
		case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
			return true
		case r >= 0x3040 && r <= 0x30FF: // Hiragana + Katakana
			return true
		case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables
			return true
		}
	}
	return false
}
