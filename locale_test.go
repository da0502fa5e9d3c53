package linebreak

import "testing"

func TestLocaleListCacheInternStable(t *testing.T) {
	c := NewLocaleListCache()
	id1 := c.Intern("pl")
	id2 := c.Intern("pl")
	if id1 != id2 {
		t.Errorf("Intern should be stable: %d != %d", id1, id2)
	}
}

func TestLocaleListCacheDistinctLists(t *testing.T) {
	c := NewLocaleListCache()
	idPL := c.Intern("pl")
	idEN := c.Intern("en-US")
	if idPL == idEN {
		t.Error("distinct locale lists should get distinct ids")
	}
}

func TestLocaleListCacheEmptyAndMalformed(t *testing.T) {
	c := NewLocaleListCache()
	id := c.Intern("")
	if loc := c.Lookup(id); !loc.IsEmpty() {
		t.Errorf("empty locale text should resolve to LocaleEmpty, got %+v", loc)
	}

	idGarbage := c.Intern("!!!not-a-tag!!!")
	if loc := c.Lookup(idGarbage); !loc.IsEmpty() {
		t.Errorf("malformed locale text should resolve to LocaleEmpty, got %+v", loc)
	}
}

func TestLocaleListCacheLookupUnknown(t *testing.T) {
	c := NewLocaleListCache()
	if loc := c.Lookup(999); !loc.IsEmpty() {
		t.Errorf("unknown id should resolve to LocaleEmpty, got %+v", loc)
	}
}

func TestLocalePrimary(t *testing.T) {
	c := NewLocaleListCache()
	id := c.Intern("pl, en-US")
	loc := c.Lookup(id)
	if loc.IsEmpty() {
		t.Fatal("expected a non-empty locale")
	}
	if got := loc.Primary().String(); got != "pl" {
		t.Errorf("Primary() = %q, want %q", got, "pl")
	}
}

func TestDefaultLocaleListCacheIsShared(t *testing.T) {
	a := DefaultLocaleListCache()
	b := DefaultLocaleListCache()
	if a != b {
		t.Error("DefaultLocaleListCache should return the same instance")
	}
}
