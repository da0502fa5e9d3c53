package linebreak

// BreakKind classifies a break opportunity by the rule that produced it,
// per spec §3. The solver treats all kinds uniformly except DESPERATE,
// which it only consumes when no other candidate fits on an empty line.
type BreakKind int

const (
	// BreakWord is a Unicode word-boundary break (space, UAX#14 class
	// transition, CJK phrase edge).
	BreakWord BreakKind = iota
	// BreakHyphenation is a mid-word break supplied by a Hyphenator,
	// carrying a HyphenEdit describing the glyph inserted on each side.
	BreakHyphenation
	// BreakReplacementEdge is the start or end boundary of an atomic
	// replacement run, produced only by the desperate-break path;
	// replacement runs offer no interior break.
	BreakReplacementEdge
	// BreakDesperate is a last-resort, per-grapheme-cluster break used
	// only when a single word cannot fit any line on its own.
	BreakDesperate
	// BreakEndOfText is the sentinel candidate at len(text), always
	// present and always the final one enumerated.
	BreakEndOfText
)

func (k BreakKind) String() string {
	switch k {
	case BreakWord:
		return "word"
	case BreakHyphenation:
		return "hyphenation"
	case BreakReplacementEdge:
		return "replacement-edge"
	case BreakDesperate:
		return "desperate"
	case BreakEndOfText:
		return "end-of-text"
	default:
		return "unknown"
	}
}

// BreakCandidate is a single position in the buffer at which a line may
// legally end, together with the bookkeeping the solver and the line
// assembler need once that position is chosen.
type BreakCandidate struct {
	// Offset is the byte offset of the break, i.e. the exclusive end of
	// a line ending here.
	Offset int
	Kind   BreakKind

	// Mandatory marks a forced break (hard line break in the source),
	// which the solver must take even if more text would still fit.
	Mandatory bool

	// Edit is non-zero only for BreakHyphenation candidates.
	Edit HyphenEdit

	// TrimmedEnd is the offset trailing whitespace should be trimmed
	// back to when this candidate ends a line (spec §4.6); equal to
	// Offset when there is nothing to trim.
	TrimmedEnd int
}
