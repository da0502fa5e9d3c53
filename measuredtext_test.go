package linebreak

import (
	"strings"
	"testing"
)

// fixedAdvancer is a test double giving every byte of ASCII text a
// fixed advance per spec §8's worked scenarios ("a font where every
// ASCII glyph has advance 10 at size 10").
type fixedAdvancer struct {
	perByte Advance
	ascent  Advance
	descent Advance
}

func (f fixedAdvancer) Advances(text string, run StyleRun) []Advance {
	seg := text[run.Range.Start:run.Range.End]
	out := make([]Advance, len(seg))
	for i := range out {
		out[i] = f.perByte
	}
	return out
}

func (f fixedAdvancer) Extent(run StyleRun) Extent {
	return Extent{Ascent: f.ascent, Descent: f.descent}
}

func asciiAdvancer() fixedAdvancer {
	return fixedAdvancer{perByte: 10, ascent: -80, descent: 20}
}

func TestBuildValidatesGaplessPartition(t *testing.T) {
	b := NewMeasuredTextBuilder()
	b.AddStyleRun(0, 3, StyleRun{Size: 10})
	b.AddStyleRun(5, 8, StyleRun{Size: 10})
	_, err := b.Build("abcdefgh", asciiAdvancer(), nil, BuildFlags{})
	if err == nil {
		t.Fatal("expected error for gapped style runs")
	}
}

func TestBuildValidatesOverlap(t *testing.T) {
	b := NewMeasuredTextBuilder()
	b.AddStyleRun(0, 5, StyleRun{Size: 10})
	b.AddStyleRun(3, 8, StyleRun{Size: 10})
	_, err := b.Build("abcdefgh", asciiAdvancer(), nil, BuildFlags{})
	if err == nil {
		t.Fatal("expected error for overlapping style runs")
	}
}

func TestBuildValidatesFullCoverage(t *testing.T) {
	b := NewMeasuredTextBuilder()
	b.AddStyleRun(0, 5, StyleRun{Size: 10})
	_, err := b.Build("abcdefgh", asciiAdvancer(), nil, BuildFlags{})
	if err == nil {
		t.Fatal("expected error when style runs do not cover the buffer")
	}
}

func TestBuildValidatesReplacementCrossesBoundary(t *testing.T) {
	b := NewMeasuredTextBuilder()
	b.AddStyleRun(0, 4, StyleRun{Size: 10})
	b.AddStyleRun(4, 8, StyleRun{Size: 10})
	b.AddReplacementRun(2, 6, 50, 0)
	_, err := b.Build("abcdefgh", asciiAdvancer(), nil, BuildFlags{})
	if err == nil {
		t.Fatal("expected error for a replacement run crossing a style boundary")
	}
}

func TestBuildSimple(t *testing.T) {
	text := "This is an example text."
	b := NewMeasuredTextBuilder()
	b.AddStyleRun(0, len(text), StyleRun{Size: 10})
	mt, err := b.Build(text, asciiAdvancer(), nil, BuildFlags{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if mt.Text() != text {
		t.Errorf("Text() = %q, want %q", mt.Text(), text)
	}
	for i := 0; i < len(text); i++ {
		if got := mt.Advance(i); got != 10 {
			t.Errorf("Advance(%d) = %v, want 10", i, got)
		}
	}
	e := mt.Extent(0, len(text))
	if e.Ascent != -80 || e.Descent != 20 {
		t.Errorf("Extent = %+v, want {-80 20}", e)
	}
}

func TestBuildWithReplacementRun(t *testing.T) {
	text := "This (is an) example text."
	repl := strings.Index(text, "(is an)")
	b := NewMeasuredTextBuilder()
	b.AddStyleRun(0, len(text), StyleRun{Size: 10})
	b.AddReplacementRun(repl, repl+len("(is an)"), 50, 0)
	mt, err := b.Build(text, asciiAdvancer(), nil, BuildFlags{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got, ok := mt.ReplacementAt(repl); !ok || got.Advance != 50 {
		t.Errorf("ReplacementAt(%d) = %+v, %v, want advance 50", repl, got, ok)
	}
	if !mt.IsReplacementInterior(repl + 1) {
		t.Error("byte after replacement start should be interior")
	}
	if mt.IsReplacementInterior(repl) {
		t.Error("replacement's first byte should not be interior")
	}
	// A replacement run's extent never contributes ascent/descent.
	e := mt.Extent(repl, repl+len("(is an)"))
	if e != (Extent{}) {
		t.Errorf("replacement-only range Extent = %+v, want zero", e)
	}
}

func TestRunInfoReflectsStyle(t *testing.T) {
	text := "hello world"
	b := NewMeasuredTextBuilder()
	b.AddStyleRun(0, 5, StyleRun{Size: 12, HyphenationAllowed: true, LineBreakWordStyle: LineBreakWordStylePhrase})
	b.AddStyleRun(5, len(text), StyleRun{Size: 20})
	mt, err := b.Build(text, asciiAdvancer(), nil, BuildFlags{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	info := mt.RunInfo(2)
	if info.Size != 12 || !info.HyphenationAllowed || info.LineBreakWordStyle != LineBreakWordStylePhrase {
		t.Errorf("RunInfo(2) = %+v, unexpected", info)
	}
	info2 := mt.RunInfo(7)
	if info2.Size != 20 || info2.HyphenationAllowed {
		t.Errorf("RunInfo(7) = %+v, unexpected", info2)
	}
}
