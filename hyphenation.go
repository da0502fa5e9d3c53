package linebreak

import (
	"fmt"
	"io"
	"sync"

	"github.com/speedata/hyphenation"
)

// Hyphenator is the external collaborator that supplies mid-word break
// points for a single locale, per spec §4.3 "hyphenation is delegated".
// The core never loads hyphenation pattern files itself.
type Hyphenator interface {
	// HyphenationPoints returns byte offsets into word, each a legal
	// place to insert a hyphen and continue the word on the next line.
	// An offset of 0 or len(word) is never meaningful and is ignored by
	// callers.
	HyphenationPoints(word string, locale Locale) []int

	// ContinuationEdit reports the StartHyphenEdit applied to the
	// continuation line after a hyphenation break in this locale. Most
	// locales use StartHyphenEditNoEdit; some (e.g. Polish compound
	// words) repeat a glyph at the start of the continuation.
	ContinuationEdit(locale Locale) StartHyphenEdit
}

// SpeedataHyphenator adapts github.com/speedata/hyphenation pattern
// files to the Hyphenator interface. One instance wraps exactly one
// language's pattern set; use HyphenatorMap to dispatch by locale.
type SpeedataHyphenator struct {
	lang *hyphenation.Lang

	// polishContinuation enables the Start hyphen edit used for Polish
	// compound words split across a hard hyphen (spec scenario S4):
	// the continuation line repeats the hyphen that introduced the
	// second half of the compound.
	polishContinuation bool
}

// NewSpeedataHyphenator loads a pattern file (the hyph-utf8 txt format
// documented by github.com/speedata/hyphenation) from r.
func NewSpeedataHyphenator(r io.Reader) (*SpeedataHyphenator, error) {
	lang, err := hyphenation.New(r)
	if err != nil {
		return nil, fmt.Errorf("linebreak: loading hyphenation patterns: %w", err)
	}
	return &SpeedataHyphenator{lang: lang}, nil
}

// WithPolishContinuation marks this hyphenator as serving a locale
// whose continuation lines repeat a hyphen (Polish compound words).
func (h *SpeedataHyphenator) WithPolishContinuation(enabled bool) *SpeedataHyphenator {
	h.polishContinuation = enabled
	return h
}

// HyphenationPoints implements Hyphenator.
func (h *SpeedataHyphenator) HyphenationPoints(word string, locale Locale) []int {
	if h == nil || h.lang == nil {
		return nil
	}
	return h.lang.Hyphenate(word)
}

// ContinuationEdit implements Hyphenator.
func (h *SpeedataHyphenator) ContinuationEdit(locale Locale) StartHyphenEdit {
	if h != nil && h.polishContinuation {
		return StartHyphenEditInsertHyphen
	}
	return StartHyphenEditNoEdit
}

// HyphenatorMap is a process-wide registry mapping a locale's primary
// language tag to the Hyphenator that serves it, per spec §5 ("the
// hyphenator registry is a concurrent-read-safe, caller-managed
// resource shared across calls"). Reads (the common case, one per
// style run per line-break call) take a read lock; registration is
// expected to happen during startup but is itself safe to call
// concurrently with lookups.
type HyphenatorMap struct {
	mu   sync.RWMutex
	byID map[string]Hyphenator
}

// NewHyphenatorMap returns an empty registry.
func NewHyphenatorMap() *HyphenatorMap {
	return &HyphenatorMap{byID: make(map[string]Hyphenator)}
}

// Register associates tag (a BCP-47 primary language subtag, e.g. "pl",
// "en", "de") with a Hyphenator. A later Register for the same tag
// replaces the earlier one.
func (m *HyphenatorMap) Register(tag string, h Hyphenator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[tag] = h
}

// Lookup returns the Hyphenator registered for locale's primary
// language subtag, or nil if none was registered.
func (m *HyphenatorMap) Lookup(locale Locale) Hyphenator {
	if locale.IsEmpty() {
		return nil
	}
	tag := locale.Primary().String()
	m.mu.RLock()
	defer m.mu.RUnlock()
	if h, ok := m.byID[tag]; ok {
		return h
	}
	base, _ := locale.Primary().Base()
	return m.byID[base.String()]
}

var (
	defaultHyphenatorMapOnce sync.Once
	defaultHyphenatorMap     *HyphenatorMap
)

// DefaultHyphenatorMap returns a lazily-initialized, process-wide
// HyphenatorMap for callers who do not need a dedicated registry.
func DefaultHyphenatorMap() *HyphenatorMap {
	defaultHyphenatorMapOnce.Do(func() {
		defaultHyphenatorMap = NewHyphenatorMap()
	})
	return defaultHyphenatorMap
}
