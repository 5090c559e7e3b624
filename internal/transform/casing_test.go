package transform

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivaran/internal/extractor"
)

func TestCasingMap_Canonical(t *testing.T) {
	m := NewCasingMap(map[string]string{
		"policymatrix": "policyMatrix",
		"haspolicy":    "hasPolicy",
	})

	name, ok := m.Canonical("policymatrix")
	require.True(t, ok)
	assert.Equal(t, "policyMatrix", name)

	_, ok = m.Canonical("unknown")
	assert.False(t, ok)
}

func TestCasingMap_CopiesInput(t *testing.T) {
	entries := map[string]string{"haspolicy": "hasPolicy"}
	m := NewCasingMap(entries)

	entries["haspolicy"] = "mutated"
	delete(entries, "haspolicy")

	name, ok := m.Canonical("haspolicy")
	require.True(t, ok)
	assert.Equal(t, "hasPolicy", name)
}

func TestCasingMap_MaxFragmentLen(t *testing.T) {
	m := NewCasingMap(map[string]string{
		"ab":       "ab",
		"abcdefgh": "abCdEfGh",
		"abcd":     "abCd",
	})
	assert.Equal(t, 8, m.MaxFragmentLen())
	assert.Equal(t, 3, m.Len())
}

func TestDefaultCasingMap_KnownEntries(t *testing.T) {
	m := DefaultCasingMap()

	for frag, want := range map[string]string{
		"entityname":          "entityName",
		"policymatrix":        "policyMatrix",
		"haspolicy":           "hasPolicy",
		"approvedbyboard":     "approvedByBoard",
		"businessactivities":  "businessActivities",
		"totalenergyconsumed": "totalEnergyConsumed",
	} {
		name, ok := m.Canonical(frag)
		require.True(t, ok, "missing entry %q", frag)
		assert.Equal(t, want, name)
	}
}

func TestDefaultCasingMap_NoCompoundOfPlainSegments(t *testing.T) {
	m := DefaultCasingMap()

	// These concatenations would swallow the nested employees breakdown
	// paths if they ever gained entries.
	for _, frag := range []string{"permanentmale", "permanentfemale", "permanenttotal"} {
		_, ok := m.Canonical(frag)
		assert.False(t, ok, "entry %q must not exist", frag)
	}
}

var promptKeyRe = regexp.MustCompile(`"(section[ABC]_[A-Za-z0-9_]+)"`)

// Every key the chunk prompts ask the model for is spelled out segment by
// segment, so resolving one must never join adjacent segments through a
// compound table entry: each underscore in a prompt key is a level of
// nesting. A compound entry that is the concatenation of words also used
// as separate segments would silently flatten those levels.
func TestDefaultCasingMap_PromptKeysResolveSegmentPerSegment(t *testing.T) {
	r := NewResolver(DefaultCasingMap())

	seen := map[string]bool{}
	for _, chunk := range extractor.Chunks() {
		for _, match := range promptKeyRe.FindAllStringSubmatch(chunk.Prompt, -1) {
			key := match[1]
			if seen[key] {
				continue
			}
			seen[key] = true

			segments := strings.Split(key, "_")
			want := segments[1:]
			if len(want) > 0 && want[len(want)-1] == "array" {
				want = want[:len(want)-1]
			}

			path, err := r.Resolve(key)
			require.NoError(t, err, "key %q", key)
			require.Len(t, path.Segments, len(want)+1,
				"key %q collapsed to %v", key, path.Segments)
			for i, seg := range want {
				assert.Equal(t, seg, path.Segments[i+1],
					"key %q segment %d", key, i)
			}
		}
	}
	require.NotEmpty(t, seen)
}
