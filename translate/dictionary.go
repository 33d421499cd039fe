package translate

import "travel-companion/domain"

// Entry a source phrase and its translation
type Entry struct {
	Phrase      string
	Translation string
}

// Dictionary phrase translations for one target language.
// Lookups are exact and case-sensitive. Entries keep insertion order,
// which decides ties during fuzzy matching.
type Dictionary struct {
	entries []Entry
	index   map[string]int
}

// NewDictionary builds a dictionary. A repeated phrase replaces the earlier
// translation but keeps the earlier position.
func NewDictionary(entries ...Entry) *Dictionary {
	d := &Dictionary{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if i, ok := d.index[e.Phrase]; ok {
			d.entries[i].Translation = e.Translation
			continue
		}
		d.index[e.Phrase] = len(d.entries)
		d.entries = append(d.entries, e)
	}
	return d
}

// Lookup finds the translation stored for exactly phrase.
func (d *Dictionary) Lookup(phrase string) (string, bool) {
	if d == nil {
		return "", false
	}
	i, ok := d.index[phrase]
	if !ok {
		return "", false
	}
	return d.entries[i].Translation, true
}

// Entries the entries in insertion order
func (d *Dictionary) Entries() []Entry {
	if d == nil {
		return nil
	}
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len the number of phrases
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Dictionaries maps a target language to its phrase dictionary
type Dictionaries map[domain.Language]*Dictionary
