package linebreak

import "fmt"

// BuildError reports a malformed MeasuredText construction: overlapping
// style runs, style runs that fail to cover the buffer, or a
// replacement run crossing a style-run boundary. BreakLineGreedy also
// returns one for a nil MeasuredText or WidthProvider. Per spec §7 these
// are the only recoverable-by-the-host errors the core produces; everything
// else (width-impossible lines, a missing hyphenator for a locale)
// degrades silently rather than erroring.
type BuildError struct {
	Reason string
	Range  Range
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("linebreak: malformed measured text: %s at [%d, %d)", e.Reason, e.Range.Start, e.Range.End)
}

func newBuildError(reason string, r Range) error {
	return &BuildError{Reason: reason, Range: r}
}
