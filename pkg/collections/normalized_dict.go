package collections

import "sort"

// NormalizedDict is a map whose keys are folded through Normalize, so
// lookups are case-, whitespace- and underscore-insensitive.  The first
// un-normalized spelling of a key is retained for iteration.
type NormalizedDict[V any] struct {
	values map[string]V
	names  map[string]string
}

func NewNormalizedDict[V any]() *NormalizedDict[V] {
	return &NormalizedDict[V]{
		values: make(map[string]V),
		names:  make(map[string]string),
	}
}

// Set binds key to value, overwriting any previous binding of an
// equivalent key.
func (d *NormalizedDict[V]) Set(key string, value V) {
	norm := Normalize(key)
	if _, ok := d.names[norm]; !ok {
		d.names[norm] = key
	}
	d.values[norm] = value
}

// Get returns the value bound to the given key.
func (d *NormalizedDict[V]) Get(key string) (V, bool) {
	v, ok := d.values[Normalize(key)]
	return v, ok
}

// Has reports whether an equivalent key is bound.
func (d *NormalizedDict[V]) Has(key string) bool {
	_, ok := d.values[Normalize(key)]
	return ok
}

// Len returns the number of distinct normalized keys.
func (d *NormalizedDict[V]) Len() int {
	return len(d.values)
}

// Keys returns the original spellings of all keys, sorted.
func (d *NormalizedDict[V]) Keys() []string {
	keys := make([]string, 0, len(d.names))
	for _, name := range d.names {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
