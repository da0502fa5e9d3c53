package linebreak

import "testing"

func buildPlainText(t *testing.T, text string, style StyleRun) *MeasuredText {
	t.Helper()
	b := NewMeasuredTextBuilder()
	b.AddStyleRun(0, len(text), style)
	mt, err := b.Build(text, asciiAdvancer(), nil, BuildFlags{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return mt
}

func TestEnumeratorEmptyText(t *testing.T) {
	mt := buildPlainText(t, "", StyleRun{Size: 10})
	e := NewEnumerator(mt, nil, nil)
	c, ok := e.Next()
	if !ok || c.Offset != 0 || c.Kind != BreakEndOfText || !c.Mandatory {
		t.Fatalf("expected single mandatory end-of-text candidate at 0, got %+v ok=%v", c, ok)
	}
	if _, ok := e.Next(); ok {
		t.Fatal("expected exactly one candidate for empty text")
	}
}

func TestEnumeratorWordBoundaries(t *testing.T) {
	text := "This is text."
	mt := buildPlainText(t, text, StyleRun{Size: 10})
	e := NewEnumerator(mt, nil, nil)

	var offsets []int
	for {
		c, ok := e.Next()
		if !ok {
			break
		}
		offsets = append(offsets, c.Offset)
	}
	if len(offsets) == 0 {
		t.Fatal("expected at least one break candidate")
	}
	if offsets[len(offsets)-1] != len(text) {
		t.Errorf("last candidate offset = %d, want %d (end of text)", offsets[len(offsets)-1], len(text))
	}
}

func TestEnumeratorMandatoryAtNewline(t *testing.T) {
	text := "first\nsecond"
	mt := buildPlainText(t, text, StyleRun{Size: 10})
	e := NewEnumerator(mt, nil, nil)

	sawMandatoryBeforeEnd := false
	for {
		c, ok := e.Next()
		if !ok {
			break
		}
		if c.Mandatory && c.Offset < len(text) {
			sawMandatoryBeforeEnd = true
		}
	}
	if !sawMandatoryBeforeEnd {
		t.Error("expected a mandatory break at the newline")
	}
}

func TestEnumeratorPeekDoesNotConsume(t *testing.T) {
	mt := buildPlainText(t, "a b", StyleRun{Size: 10})
	e := NewEnumerator(mt, nil, nil)
	first, ok := e.Peek()
	if !ok {
		t.Fatal("expected a candidate")
	}
	second, ok := e.Peek()
	if !ok || second != first {
		t.Fatalf("Peek should be idempotent, got %+v then %+v", first, second)
	}
}

func TestEnumeratorMarkReset(t *testing.T) {
	mt := buildPlainText(t, "a b c", StyleRun{Size: 10})
	e := NewEnumerator(mt, nil, nil)
	mark := e.Mark()
	first, _ := e.Next()
	second, _ := e.Next()
	if first == second {
		t.Fatal("expected distinct candidates")
	}
	e.Reset(mark)
	again, _ := e.Next()
	if again != first {
		t.Errorf("after Reset, Next() = %+v, want %+v", again, first)
	}
}

// stubHyphenator offers a single hyphenation point at the midpoint of
// any word of 2 or more bytes, used to exercise the enumerator's hyphenation
// interleaving without depending on a real pattern file.
type stubHyphenator struct {
	startEdit StartHyphenEdit
}

func (s stubHyphenator) HyphenationPoints(word string, locale Locale) []int {
	if len(word) < 2 {
		return nil
	}
	return []int{len(word) / 2}
}

func (s stubHyphenator) ContinuationEdit(locale Locale) StartHyphenEdit { return s.startEdit }

func TestEnumeratorHyphenationPoints(t *testing.T) {
	text := "hyphenation"
	locales := NewLocaleListCache()
	localeID := locales.Intern("en")
	mt := buildPlainText(t, text, StyleRun{Size: 10, HyphenationAllowed: true, LocaleListID: localeID})
	hm := NewHyphenatorMap()
	hm.Register("en", stubHyphenator{})

	e := NewEnumerator(mt, hm, locales)
	sawHyphenation := false
	for {
		c, ok := e.Next()
		if !ok {
			break
		}
		if c.Kind == BreakHyphenation {
			sawHyphenation = true
		}
	}
	if !sawHyphenation {
		t.Error("expected at least one hyphenation candidate")
	}
}

func TestEnumeratorReplacementEdge(t *testing.T) {
	text := "This (is an) example text."
	b := NewMeasuredTextBuilder()
	b.AddStyleRun(0, len(text), StyleRun{Size: 10})
	b.AddReplacementRun(5, 12, 50, 0)
	mt, err := b.Build(text, asciiAdvancer(), nil, BuildFlags{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	e := NewEnumerator(mt, nil, nil)
	sawEdge := false
	for {
		c, ok := e.Next()
		if !ok {
			break
		}
		if c.Offset == 12 && (c.Kind == BreakReplacementEdge || c.Kind == BreakWord) {
			sawEdge = true
		}
	}
	if !sawEdge {
		t.Error("expected a break candidate at the replacement run's end")
	}
}
