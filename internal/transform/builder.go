package transform

import (
	"fmt"
	"sort"
	"strings"

	"vivaran/internal/report"
)

// ShapeConflictError reports an assignment that would replace a value of
// one shape with another (scalar vs subtree vs sequence) at the same path
// within a single build.
type ShapeConflictError struct {
	Key      string
	Path     []string
	Existing report.Kind
	Incoming report.Kind
}

func (e *ShapeConflictError) Error() string {
	return fmt.Sprintf("flat key %q: %s already holds a %s, cannot assign a %s",
		e.Key, strings.Join(e.Path, "."), e.Existing, e.Incoming)
}

// KeyError pairs a flat key with the error that kept it out of the built
// document.
type KeyError struct {
	Key string
	Err error
}

func (e KeyError) Error() string { return fmt.Sprintf("key %q: %v", e.Key, e.Err) }

func (e KeyError) Unwrap() error { return e.Err }

// Builder turns one chunk's flat mapping into a nested report document.
// Safe for concurrent use; per-build state lives on the stack.
type Builder struct {
	resolver *Resolver

	// AllowOverwrite switches shape conflicts from errors to
	// last-write-wins. Off by default so malformed extraction output is
	// caught instead of silently corrupting the document.
	AllowOverwrite bool
}

// NewBuilder creates a Builder over the given resolver.
func NewBuilder(resolver *Resolver) *Builder {
	return &Builder{resolver: resolver}
}

// Build resolves every flat key and writes its value into a fresh nested
// document. A failing key never aborts the rest: all failures are
// collected and returned alongside the document holding the keys that
// succeeded. Keys are processed in sorted order so results and error
// ordering are deterministic. Null and empty-string scalars are dropped,
// matching what the extraction boundary emits for absent fields.
func (b *Builder) Build(flat map[string]report.Value) (report.Document, []KeyError) {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := report.Document{}
	var errs []KeyError

	for _, key := range keys {
		value := flat[key]
		if value.IsNull() || value.IsEmptyString() {
			continue
		}

		path, err := b.resolver.Resolve(key)
		if err != nil {
			errs = append(errs, KeyError{Key: key, Err: err})
			continue
		}
		if err := b.assign(doc, key, path, value); err != nil {
			errs = append(errs, KeyError{Key: key, Err: err})
		}
	}

	return doc, errs
}

// assign walks the path, creating subtree nodes as needed, and writes the
// value at the final segment.
func (b *Builder) assign(doc report.Document, key string, path Path, value report.Value) error {
	cur := map[string]report.Value(doc)

	for i, seg := range path.Segments[:len(path.Segments)-1] {
		existing, ok := cur[seg]
		if !ok {
			child := report.Subtree(map[string]report.Value{})
			cur[seg] = child
			cur = child.Fields()
			continue
		}
		if existing.Kind() != report.KindSubtree {
			if !b.AllowOverwrite {
				return &ShapeConflictError{
					Key:      key,
					Path:     path.Segments[:i+1],
					Existing: existing.Kind(),
					Incoming: report.KindSubtree,
				}
			}
			child := report.Subtree(map[string]report.Value{})
			cur[seg] = child
			cur = child.Fields()
			continue
		}
		cur = existing.Fields()
	}

	if path.IsArray && value.Kind() != report.KindSequence {
		value = report.Sequence(value)
	}

	last := path.Segments[len(path.Segments)-1]
	if existing, ok := cur[last]; ok && existing.Kind() != value.Kind() && !b.AllowOverwrite {
		return &ShapeConflictError{
			Key:      key,
			Path:     path.Segments,
			Existing: existing.Kind(),
			Incoming: value.Kind(),
		}
	}
	cur[last] = value
	return nil
}
