package linebreak

import "github.com/rivo/uniseg"

// desperateBreaksIn enumerates grapheme-cluster boundaries within
// text[start:end], used as the last-resort break source (spec §3
// DESPERATE) when a single word cannot fit on its own line. Splitting
// inside a grapheme cluster (e.g. a base letter plus combining marks,
// or a multi-codepoint emoji) would visually corrupt the glyph, so the
// solver never breaks more finely than this.
func desperateBreaksIn(text string, start, end int) []int {
	if end <= start {
		return nil
	}
	var offsets []int
	pos := start
	gr := uniseg.NewGraphemes(text[start:end])
	for gr.Next() {
		pos += len(gr.Str())
		if pos < end {
			offsets = append(offsets, pos)
		}
	}
	return offsets
}
