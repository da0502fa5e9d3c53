package linebreak

import (
	"github.com/clipperhouse/uax29/v2/phrases"
	"github.com/clipperhouse/uax29/v2/words"
)

// phraseBoundaries returns the byte offsets at which text[start:end]
// may be broken under CJK phrase-style segmentation (spec §4.5,
// LineBreakWordStylePhrase): bunsetsu-like segments for Japanese,
// rather than a break after every grapheme.
func phraseBoundaries(text string, start, end int) []int {
	var offsets []int
	seg := phrases.NewSegmenter([]byte(text[start:end]))
	pos := start
	for seg.Next() {
		pos += len(seg.Bytes())
		if pos < end {
			offsets = append(offsets, pos)
		}
	}
	return offsets
}

// wordBoundaries returns the byte offsets at which text[start:end] may
// be broken under plain Unicode word segmentation: every UAX#29 word
// boundary, without the whitespace filter NewEnumerator applies.
// resolveWordStyle does not use it; the Auto fallback keeps the
// enumerator's default candidates, and per-grapheme breaks come from
// desperateBreaksIn.
func wordBoundaries(text string, start, end int) []int {
	var offsets []int
	seg := words.NewSegmenter([]byte(text[start:end]))
	pos := start
	for seg.Next() {
		pos += len(seg.Bytes())
		if pos < end {
			offsets = append(offsets, pos)
		}
	}
	return offsets
}

// resolveWordStyle implements the Auto policy (spec §4.5): attempt a
// phrase-level break over [start, end) against allowedWidth; if it
// would still require more than maxAutoLines lines, fall back to the
// narrower None policy. countGreedyLines measures how many lines a candidate
// boundary set would take by greedily packing per mt's advances.
func resolveWordStyle(style LineBreakWordStyle, mt *MeasuredText, start, end int, allowedWidth Advance, maxAutoLines int) []int {
	switch style {
	case LineBreakWordStylePhrase:
		return phraseBoundaries(mt.Text(), start, end)
	case LineBreakWordStyleAuto:
		phraseOffsets := phraseBoundaries(mt.Text(), start, end)
		if countGreedyLines(mt, start, end, phraseOffsets, allowedWidth) <= maxAutoLines {
			return phraseOffsets
		}
		return nil
	default:
		return nil
	}
}

// countGreedyLines estimates how many lines a greedy pack over the
// given candidate offsets would take, used only to probe the Auto
// policy; it does not perform hyphenation or trimming.
func countGreedyLines(mt *MeasuredText, start, end int, offsets []int, allowedWidth Advance) int {
	if allowedWidth <= 0 {
		return len(offsets) + 1
	}
	lines := 1
	lineStart := start
	var width Advance
	prev := start
	for _, off := range append(append([]int{}, offsets...), end) {
		var seg Advance
		for i := prev; i < off; i++ {
			seg += mt.Advance(i)
		}
		if width+seg > allowedWidth && lineStart < prev {
			lines++
			lineStart = prev
			width = seg
		} else {
			width += seg
		}
		prev = off
	}
	return lines
}
