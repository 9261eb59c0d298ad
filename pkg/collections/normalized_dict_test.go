package collections_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/geyuegui/RIDE/pkg/collections"
)

func TestNormalizedDict(t *testing.T) {
	d := collections.NewNormalizedDict[int]()
	d.Set("My Keyword", 1)

	for _, key := range []string{"My Keyword", "my_keyword", "MYKEYWORD"} {
		v, ok := d.Get(key)
		if !ok || v != 1 {
			t.Errorf("Get(%q) = (%d, %v), want (1, true)", key, v, ok)
		}
		if !d.Has(key) {
			t.Errorf("Has(%q) = false, want true", key)
		}
	}

	// Equivalent spellings share one entry.
	d.Set("MY KEYWORD", 2)
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
	if v, _ := d.Get("my keyword"); v != 2 {
		t.Errorf("Get after overwrite = %d, want 2", v)
	}

	if d.Has("other") {
		t.Error("Has(other) = true, want false")
	}
}

func TestNormalizedDictKeys(t *testing.T) {
	d := collections.NewNormalizedDict[string]()
	d.Set("Zeta", "z")
	d.Set("Alpha One", "a")
	d.Set("alpha_one", "a2") // same normalized key, first spelling retained

	want := []string{"Alpha One", "Zeta"}
	if diff := cmp.Diff(want, d.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
}
