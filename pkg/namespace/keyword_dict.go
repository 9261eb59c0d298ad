package namespace

import "github.com/geyuegui/RIDE/pkg/collections"

// KeywordDict maps case/whitespace-normalized keyword names to their
// resolved KeywordInfo.  Both the short name and the fully-qualified
// long name are registered: the short name only for its first definition
// (locals shadow imports), the long name always, since it is
// unambiguous.
type KeywordDict struct {
	dict *collections.NormalizedDict[KeywordInfo]
}

// NewKeywordDict builds a dictionary from an ordered keyword list.
func NewKeywordDict(keywords []KeywordInfo) *KeywordDict {
	d := collections.NewNormalizedDict[KeywordInfo]()
	for _, kw := range keywords {
		// First definition of a short name wins; this is what gives
		// local keywords preference over resource and library ones.
		if !d.Has(kw.Name()) {
			d.Set(kw.Name(), kw)
		}
		d.Set(kw.Longname(), kw)
	}
	return &KeywordDict{dict: d}
}

// Find returns the keyword registered under the given name, short or
// long.
func (d *KeywordDict) Find(name string) (KeywordInfo, bool) {
	return d.dict.Get(name)
}

// Len returns the number of registered names.
func (d *KeywordDict) Len() int {
	return d.dict.Len()
}
