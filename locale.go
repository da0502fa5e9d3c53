package linebreak

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Locale is a parsed BCP-47 language tag list, used to select a
// Hyphenator and to bias word/phrase segmentation (spec §4.1
// locale_list_id). A StyleRun carries an opaque int32 id rather than a
// Locale directly; the id is resolved against a LocaleListCache.
type Locale struct {
	tags []language.Tag
	raw  string
}

// LocaleEmpty is the unspecified locale: segmentation and hyphenation
// fall back to script-based heuristics.
var LocaleEmpty = Locale{}

// String returns the locale list's original BCP-47 source text.
func (l Locale) String() string { return l.raw }

// Primary returns the first (most specific) tag in the list, or the
// zero Tag if the list is empty.
func (l Locale) Primary() language.Tag {
	if len(l.tags) == 0 {
		return language.Tag{}
	}
	return l.tags[0]
}

// IsEmpty reports whether no locale was specified.
func (l Locale) IsEmpty() bool { return len(l.tags) == 0 }

// LocaleListCache interns BCP-47 locale-list strings into stable int32
// ids, mirroring the spec's locale_list_id contract (§4.1, §5): the
// same textual locale list always resolves to the same id within one
// cache, so callers can compare StyleRun.LocaleListID by value instead
// of re-parsing on every lookup.
//
// Safe for concurrent use; a package-level default is lazily
// initialized for callers who do not need a dedicated cache.
type LocaleListCache struct {
	mu     sync.RWMutex
	byID   []Locale
	byText map[string]int32
}

// NewLocaleListCache returns an empty cache.
func NewLocaleListCache() *LocaleListCache {
	return &LocaleListCache{byText: make(map[string]int32)}
}

// Intern parses a comma- or whitespace-separated BCP-47 locale list
// (e.g. "pl, en-US") and returns a stable id for it. Malformed tags are
// dropped rather than erroring, matching the teacher package's general
// policy of degrading input rather than failing a build over it.
func (c *LocaleListCache) Intern(text string) int32 {
	text = strings.TrimSpace(text)

	c.mu.RLock()
	if id, ok := c.byText[text]; ok {
		c.mu.RUnlock()
		return id
	}
	c.mu.RUnlock()

	loc := parseLocaleList(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.byText[text]; ok {
		return id
	}
	id := int32(len(c.byID))
	c.byID = append(c.byID, loc)
	c.byText[text] = id
	return id
}

// Lookup resolves a previously interned id back to its Locale. An
// unknown id (including the zero value when nothing was ever interned)
// resolves to LocaleEmpty.
func (c *LocaleListCache) Lookup(id int32) Locale {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if id < 0 || int(id) >= len(c.byID) {
		return LocaleEmpty
	}
	return c.byID[id]
}

func parseLocaleList(text string) Locale {
	if text == "" {
		return LocaleEmpty
	}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	var tags []language.Tag
	for _, f := range fields {
		tag, err := language.Parse(f)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return LocaleEmpty
	}
	return Locale{tags: tags, raw: text}
}

var (
	defaultLocaleCacheOnce sync.Once
	defaultLocaleCache     *LocaleListCache
)

// DefaultLocaleListCache returns a lazily-initialized, process-wide
// LocaleListCache for callers who do not need a dedicated one.
func DefaultLocaleListCache() *LocaleListCache {
	defaultLocaleCacheOnce.Do(func() {
		defaultLocaleCache = NewLocaleListCache()
	})
	return defaultLocaleCache
}
