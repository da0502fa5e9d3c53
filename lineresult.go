package linebreak

// Line is one committed line of the result: a half-open byte range
// into the original buffer, plus the measurements and edits needed to
// render and justify it, per spec §3.
type Line struct {
	Range Range

	// TrimmedRange excludes trailing whitespace absorbed by the break
	// (spec §4.6); rendering and justification use this range, while
	// Range (including the absorbed whitespace) is what the solver
	// consumed width-wise.
	TrimmedRange Range

	Width     Advance
	Extent    Extent
	Mandatory bool

	// Edit is non-zero when this line ends at a hyphenation break.
	Edit HyphenEdit

	// ContinuesHyphenation is the Start edit carried over when the
	// previous line ended in a hyphenation break whose Hyphenator
	// requested one on the continuation (spec scenario S4, Polish
	// compound words); StartHyphenEditNoEdit otherwise.
	ContinuesHyphenation StartHyphenEdit
}

// IsEmpty reports whether the line spans zero bytes.
func (l Line) IsEmpty() bool { return l.Range.Len() == 0 }

// LineResult is the output of a single BreakLineGreedy call: the
// ordered sequence of committed lines covering the entire input buffer.
type LineResult struct {
	Lines []Line
}

// TotalLines returns the number of committed lines.
func (r LineResult) TotalLines() int { return len(r.Lines) }

// lineAssembler accumulates committed lines during the greedy solve.
type lineAssembler struct {
	lines []Line
}

func (a *lineAssembler) commit(mt *MeasuredText, start, end, trimmedEnd int, width Advance, mandatory bool, edit HyphenEdit, continuation StartHyphenEdit) {
	a.lines = append(a.lines, Line{
		Range:                Range{Start: start, End: end},
		TrimmedRange:         Range{Start: start, End: trimmedEnd},
		Width:                width,
		Extent:               mt.Extent(start, trimmedEnd),
		Mandatory:            mandatory,
		Edit:                 edit,
		ContinuesHyphenation: continuation,
	})
}

func (a *lineAssembler) result() LineResult {
	return LineResult{Lines: a.lines}
}
