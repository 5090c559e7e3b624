package transform

// CasingMap recovers canonically cased field names from lowercase key
// fragments. It is immutable after construction and safe for concurrent
// use; build one at startup and share it across requests.
//
// Fragments are the delimiter-free concatenation of one or more raw key
// segments ("total", "energy", "consumed" → "totalenergyconsumed"), so the
// matching policy is driven entirely by the table: adding an entry is all
// it takes to teach the resolver a new multi-word field.
type CasingMap struct {
	entries map[string]string
	maxLen  int
}

// NewCasingMap builds a CasingMap from fragment → canonical-name pairs.
// The input map is copied.
func NewCasingMap(entries map[string]string) *CasingMap {
	m := &CasingMap{entries: make(map[string]string, len(entries))}
	for frag, canonical := range entries {
		m.entries[frag] = canonical
		if len(frag) > m.maxLen {
			m.maxLen = len(frag)
		}
	}
	return m
}

// DefaultCasingMap returns a CasingMap over the built-in BRSR field table.
func DefaultCasingMap() *CasingMap {
	return NewCasingMap(defaultCasingEntries)
}

// Canonical looks up the canonical name for a lowercase fragment.
func (m *CasingMap) Canonical(fragment string) (string, bool) {
	name, ok := m.entries[fragment]
	return name, ok
}

// MaxFragmentLen returns the length of the longest known fragment. The
// resolver uses it to bound how many segments it joins when trying
// longest-match lookups.
func (m *CasingMap) MaxFragmentLen() int { return m.maxLen }

// Len returns the number of entries in the table.
func (m *CasingMap) Len() int { return len(m.entries) }
