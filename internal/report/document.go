package report

// Document is a nested report: a tree of field maps with sequences and
// scalars at the leaves. The top-level keys are section identifiers.
type Document map[string]Value

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v.Clone()
	}
	return out
}

// Lookup walks the document along the given field names and returns the
// value at the end of the path.
func (d Document) Lookup(path ...string) (Value, bool) {
	cur := d
	for i, seg := range path {
		v, ok := cur[seg]
		if !ok {
			return Value{}, false
		}
		if i == len(path)-1 {
			return v, true
		}
		if v.Kind() != KindSubtree {
			return Value{}, false
		}
		cur = v.Fields()
	}
	return Value{}, false
}

// Merge deep-merges updates into base and returns the combined document.
// Base is never mutated and keys present only in base are preserved. Where
// both sides hold a subtree the merge recurses; otherwise the value from
// updates wins outright. Values taken from updates are deep-cloned, so
// mutating updates afterwards never alters the returned document.
func Merge(base, updates Document) Document {
	out := make(Document, len(base)+len(updates))
	for k, v := range base {
		out[k] = v
	}
	for k, uv := range updates {
		if bv, ok := out[k]; ok && bv.Kind() == KindSubtree && uv.Kind() == KindSubtree {
			merged := Merge(Document(bv.Fields()), Document(uv.Fields()))
			out[k] = Subtree(map[string]Value(merged))
			continue
		}
		out[k] = uv.Clone()
	}
	return out
}

// MergeAll folds the documents left to right into a single document,
// starting from an empty one. Later documents win on conflicting paths, so
// the caller's ordering decides conflict resolution.
func MergeAll(docs ...Document) Document {
	out := Document{}
	for _, d := range docs {
		out = Merge(out, d)
	}
	return out
}
