// Package linebreak implements a greedy line breaker for laid-out,
// multi-script, multi-style text.
//
// Given a [MeasuredText] describing per-codepoint advances and style runs,
// and a [WidthProvider] describing the width budget of each line,
// [BreakLineGreedy] walks the text's break opportunities in order and
// commits a line whenever the next candidate would overflow the current
// budget. It does not attempt optimal (minimum-raggedness) paragraph
// breaking; for that, see a Knuth-Plass-style implementation such as
// Typst's. Font shaping, hyphenation-pattern loading, locale
// canonicalization and Unicode boundary detection itself are delegated
// to the collaborators described by the interfaces in this package
// (see [Advancer], [Hyphenator], [LocaleListCache]).
//
// Known bug, preserved for compatibility: at very narrow widths, a
// trailing space following a replacement run that cannot share a line
// with it is emitted as its own zero-width line rather than being
// absorbed into the replacement run's line. See TestBreakLineGreedyReplacementNarrowOverflow.
package linebreak
