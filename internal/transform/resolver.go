package transform

import (
	"fmt"
	"strings"
)

// Delimiter separates segments in flat extraction keys.
const Delimiter = "_"

// arrayMarker is the trailing segment signalling that a key's value should
// be stored as a sequence. It never appears in the resolved path.
const arrayMarker = "array"

// sections is the closed set of top-level section prefixes and their
// canonical identifiers.
var sections = map[string]string{
	"sectiona": "sectionA",
	"sectionb": "sectionB",
	"sectionc": "sectionC",
}

// Path is the resolved location of a flat key inside the nested report:
// the canonical section identifier followed by zero or more field names.
// IsArray records a stripped array marker; it affects how the value is
// stored, never where.
type Path struct {
	Segments []string
	IsArray  bool
}

// String returns the dotted rendering of the path, for logs and errors.
func (p Path) String() string {
	return strings.Join(p.Segments, ".")
}

// UnknownSectionError reports a flat key whose leading segment is not a
// known top-level section.
type UnknownSectionError struct {
	Key     string
	Segment string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("flat key %q: unknown section %q", e.Key, e.Segment)
}

// Resolver converts flat extraction keys into canonical nested paths.
// It is pure and safe for concurrent use.
type Resolver struct {
	casing *CasingMap
}

// NewResolver creates a Resolver over the given casing map.
func NewResolver(casing *CasingMap) *Resolver {
	return &Resolver{casing: casing}
}

// Resolve maps a flat key to its canonical path.
//
// The key is split on the delimiter; the first segment must name a known
// section. A trailing "array" segment is stripped into Path.IsArray. The
// remaining segments are matched against the casing map greedily: at each
// position the longest joined run of segments with a table entry wins, so
// runs like "total"+"energy"+"consumed" collapse into one canonical field
// name. Segments with no match pass through as-is, lowercase.
func (r *Resolver) Resolve(flatKey string) (Path, error) {
	parts := strings.Split(flatKey, Delimiter)

	section, ok := sections[strings.ToLower(parts[0])]
	if !ok {
		return Path{}, &UnknownSectionError{Key: flatKey, Segment: parts[0]}
	}

	rest := parts[1:]
	isArray := false
	if n := len(rest); n > 0 && strings.ToLower(rest[n-1]) == arrayMarker {
		rest = rest[:n-1]
		isArray = true
	}

	segments := make([]string, 0, len(rest)+1)
	segments = append(segments, section)

	for i := 0; i < len(rest); {
		if rest[i] == "" {
			i++
			continue
		}

		canonical, matched := r.longestMatch(rest, i)
		if matched == 0 {
			segments = append(segments, strings.ToLower(rest[i]))
			i++
			continue
		}
		segments = append(segments, canonical)
		i += matched
	}

	return Path{Segments: segments, IsArray: isArray}, nil
}

// longestMatch finds the longest run of segments starting at i whose
// joined fragment has a casing table entry. It returns the canonical name
// and the number of segments consumed, or 0 when nothing matches.
func (r *Resolver) longestMatch(rest []string, i int) (string, int) {
	var (
		frag      strings.Builder
		canonical string
		consumed  int
	)
	for j := i; j < len(rest); j++ {
		frag.WriteString(strings.ToLower(rest[j]))
		if frag.Len() > r.casing.MaxFragmentLen() {
			break
		}
		if name, ok := r.casing.Canonical(frag.String()); ok {
			canonical = name
			consumed = j - i + 1
		}
	}
	return canonical, consumed
}
