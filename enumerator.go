package linebreak

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/unicode/bidi"
)

// Enumerator walks a MeasuredText's break opportunities in byte order,
// merging word boundaries, mandatory breaks and (when enabled)
// hyphenation points into one ordered stream, with any candidate inside
// a replacement run's interior removed. It is a restartable cursor
// (Peek/Next/Mark/Reset); the solver consumes it with Next and, when a
// stretch of text cannot fit any line, splices finer-grained candidates
// in ahead of the cursor with InsertAhead.
type Enumerator struct {
	candidates []BreakCandidate
	pos        int
}

// NewEnumerator builds the ordered candidate stream for mt. When
// hyphenators is non-nil and a run allows hyphenation, hyphenation
// points for the run's locale (resolved via locales) are interleaved
// between the enclosing word's boundaries.
func NewEnumerator(mt *MeasuredText, hyphenators *HyphenatorMap, locales *LocaleListCache) *Enumerator {
	text := mt.Text()
	if len(text) == 0 {
		return &Enumerator{candidates: []BreakCandidate{{Offset: 0, Kind: BreakEndOfText, Mandatory: true, TrimmedEnd: 0}}}
	}

	var out []BreakCandidate
	last := 0

	emitWord := func(end int, mandatory bool) {
		if end <= last {
			return
		}
		if hyphenators != nil {
			emitHyphenation(mt, hyphenators, locales, last, end, &out)
		}
		out = append(out, BreakCandidate{
			Offset:     end,
			Kind:       BreakWord,
			Mandatory:  mandatory,
			TrimmedEnd: trimBack(text, last, end),
		})
		last = end
	}

	seg := words.NewSegmenter([]byte(text))
	pos := 0
	for seg.Next() {
		tok := seg.Bytes()
		end := pos + len(tok)
		if end > len(text) {
			end = len(text)
		}
		pos = end
		if !isWordBreakOpportunity(text, last, end) {
			continue
		}
		emitWord(end, isMandatoryBreak(text, last, end))
	}

	// A replacement run's interior offers no break opportunity: drop any
	// candidate that landed there. No candidate is added at the run's
	// own edges.
	out = spliceReplacementEdges(mt, out)

	if len(out) == 0 || out[len(out)-1].Offset != len(text) {
		out = append(out, BreakCandidate{Offset: len(text), Kind: BreakEndOfText, Mandatory: true, TrimmedEnd: trimBack(text, last, len(text))})
	} else {
		out[len(out)-1].Kind = BreakEndOfText
	}

	return &Enumerator{candidates: out}
}

// Peek returns the next unread candidate without consuming it.
func (e *Enumerator) Peek() (BreakCandidate, bool) {
	if e.pos >= len(e.candidates) {
		return BreakCandidate{}, false
	}
	return e.candidates[e.pos], true
}

// Next consumes and returns the next candidate.
func (e *Enumerator) Next() (BreakCandidate, bool) {
	c, ok := e.Peek()
	if ok {
		e.pos++
	}
	return c, ok
}

// Mark returns an opaque cursor position for later Reset.
func (e *Enumerator) Mark() int { return e.pos }

// Reset rewinds the cursor to a previously obtained Mark.
func (e *Enumerator) Reset(mark int) { e.pos = mark }

// Done reports whether every candidate has been consumed.
func (e *Enumerator) Done() bool { return e.pos >= len(e.candidates) }

// InsertAhead splices extra candidates into the stream immediately
// before the next unread candidate, used when the solver discovers
// mid-walk that a stretch of text needs finer-grained (e.g. desperate)
// candidates than were enumerated up front.
func (e *Enumerator) InsertAhead(extra []BreakCandidate) {
	if len(extra) == 0 {
		return
	}
	head := append([]BreakCandidate(nil), e.candidates[:e.pos]...)
	head = append(head, extra...)
	head = append(head, e.candidates[e.pos:]...)
	e.candidates = head
}

// ReplaceWordBoundariesIn discards any BreakWord candidates whose
// offset falls within rng and splices in replacements at the given
// offsets instead, used to apply CJK phrase-style segmentation to a
// style run after the default word-boundary pass already ran.
func (e *Enumerator) ReplaceWordBoundariesIn(rng Range, offsets []int) {
	var kept []BreakCandidate
	for _, c := range e.candidates {
		if c.Kind == BreakWord && rng.Contains(c.Offset) {
			continue
		}
		kept = append(kept, c)
	}
	for _, off := range offsets {
		if !rng.Contains(off) {
			continue
		}
		kept = append(kept, BreakCandidate{Offset: off, Kind: BreakWord, TrimmedEnd: off})
	}
	sortCandidates(kept)
	e.candidates = kept
}

// isWordBreakOpportunity reports whether the boundary following the
// token text[start:end] is a legal line-break point: trailing
// whitespace, a bidi separator class, or end of buffer. A bare word
// followed immediately by another word (no space between them, as
// UAX#29 can report for some scripts) is not a break point on its own.
func isWordBreakOpportunity(text string, start, end int) bool {
	if end >= len(text) {
		return true
	}
	r := decodeRuneAt(text, end-1)
	if unicode.IsSpace(r) {
		return true
	}
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.WS, bidi.S, bidi.B:
		return true
	}
	last := decodeRuneAt(text, end-1)
	return isMandatoryRune(last)
}

func isMandatoryBreak(text string, start, end int) bool {
	if end >= len(text) {
		return true
	}
	return isMandatoryRune(decodeRuneAt(text, end-1))
}

func isMandatoryRune(r rune) bool {
	switch r {
	case '\n', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	props, _ := bidi.LookupRune(r)
	return props.Class() == bidi.B
}

func decodeRuneAt(text string, byteOffset int) rune {
	for i, r := range text[byteOffset:] {
		_ = i
		return r
	}
	return 0
}

// trimBack returns the offset trailing whitespace between [start, end)
// should be trimmed back to, per spec §4.6. Only ASCII and common
// Unicode space runs are trimmed; a trimmed candidate still reports
// Offset as the full consuming end so width accounting for the next
// line starts in the right place.
func trimBack(text string, start, end int) int {
	trimmed := end
	for trimmed > start {
		r, size := decodeLastRune(text[start:trimmed])
		if size == 0 || !unicode.IsSpace(r) {
			break
		}
		trimmed -= size
	}
	return trimmed
}

func decodeLastRune(s string) (rune, int) {
	if len(s) == 0 {
		return 0, 0
	}
	// Walk back to the start of the last rune.
	i := len(s) - 1
	for i > 0 && isUTF8Continuation(s[i]) {
		i--
	}
	for _, r := range s[i:] {
		return r, len(s) - i
	}
	return 0, 0
}

func isUTF8Continuation(b byte) bool { return b&0xC0 == 0x80 }

// spliceReplacementEdges enforces replacement-run atomicity (spec §3,
// §4.2): a replacement run is a single unit, never split internally, so
// any candidate whose offset falls strictly inside a run's interior is
// discarded. It does NOT invent a break candidate at the run's end —
// per §4.4.2 ("if it fits, add it; otherwise break before it") the run
// rides along with whatever word-level candidate already contains it,
// and breaking before it when nothing fits is the desperate path's job
// (splitDesperately substitutes the run's own edges there).
func spliceReplacementEdges(mt *MeasuredText, in []BreakCandidate) []BreakCandidate {
	var out []BreakCandidate
	for _, c := range in {
		if mt.IsReplacementInterior(c.Offset) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func sortCandidates(c []BreakCandidate) {
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && c[j-1].Offset > c[j].Offset; j-- {
			c[j-1], c[j] = c[j], c[j-1]
		}
	}
}

// emitHyphenation asks the Hyphenator registered for the run's locale
// for interior break points within text[start:end] and appends one
// BreakHyphenation candidate per point, in offset order, ahead of the
// word-boundary candidate that follows.
func emitHyphenation(mt *MeasuredText, hyphenators *HyphenatorMap, locales *LocaleListCache, start, end int, out *[]BreakCandidate) {
	info := mt.RunInfo(start)
	if !info.HyphenationAllowed {
		return
	}
	locale := LocaleEmpty
	if locales != nil {
		locale = locales.Lookup(info.LocaleListID)
	}
	hyphenator := hyphenators.Lookup(locale)
	if hyphenator == nil {
		return
	}
	word := mt.Text()[start:end]
	points := hyphenator.HyphenationPoints(word, locale)
	for _, p := range points {
		if p <= 0 || p >= len(word) {
			continue
		}
		*out = append(*out, BreakCandidate{
			Offset:     start + p,
			Kind:       BreakHyphenation,
			Edit:       HyphenEdit{End: endHyphenEditAt(word, p), Start: hyphenator.ContinuationEdit(locale)},
			TrimmedEnd: start + p,
		})
	}
}

// endHyphenEditAt reports the EndHyphenEdit for a hyphenation break at
// byte offset point within word: a break landing right after a hyphen
// (or soft hyphen) already present in the word needs no inserted glyph,
// since the existing character already serves that role.
func endHyphenEditAt(word string, point int) EndHyphenEdit {
	r, _ := decodeLastRune(word[:point])
	if r == '-' || r == '\u00ad' {
		return EndHyphenEditNoEdit
	}
	return EndHyphenEditInsertHyphen
}
