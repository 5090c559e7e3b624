package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(DefaultCasingMap())
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver()

	cases := []struct {
		key     string
		want    []string
		isArray bool
	}{
		{"sectiona_cin", []string{"sectionA", "cin"}, false},
		{"sectiona_entityname", []string{"sectionA", "entityName"}, false},
		{"sectiona_employees_permanent_male", []string{"sectionA", "employees", "permanent", "male"}, false},
		{"sectiona_businessactivities_array", []string{"sectionA", "businessActivities"}, true},
		{"sectionb_policymatrix_p1_haspolicy", []string{"sectionB", "policyMatrix", "p1", "hasPolicy"}, false},
		{"sectionc_principle1_appealsoutstanding", []string{"sectionC", "principle1", "appealsOutstanding"}, false},
		// Multi-segment fragments collapse into one canonical field.
		{"sectionc_principle6_total_energy_consumed", []string{"sectionC", "principle6", "totalEnergyConsumed"}, false},
		// Section-only key resolves to a single-element path.
		{"sectiona", []string{"sectionA"}, false},
		// Mixed-case input is normalized before lookup.
		{"sectionA_entityName", []string{"sectionA", "entityName"}, false},
		{"SECTIONB_POLICYMATRIX_P1_WEBLINK", []string{"sectionB", "policyMatrix", "p1", "webLink"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			path, err := r.Resolve(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, path.Segments)
			assert.Equal(t, tc.isArray, path.IsArray)
		})
	}
}

func TestResolver_Resolve_UnknownSection(t *testing.T) {
	r := newTestResolver()

	_, err := r.Resolve("sectiond_cin")
	require.Error(t, err)

	var unknownErr *UnknownSectionError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "sectiond_cin", unknownErr.Key)
	assert.Equal(t, "sectiond", unknownErr.Segment)
}

func TestResolver_Resolve_ArrayMarkerOnlyTrailing(t *testing.T) {
	r := newTestResolver()

	// "array" mid-key is an ordinary segment, not a marker.
	path, err := r.Resolve("sectiona_array_items")
	require.NoError(t, err)
	assert.Equal(t, []string{"sectionA", "array", "items"}, path.Segments)
	assert.False(t, path.IsArray)

	// Section-level array key.
	path, err = r.Resolve("sectiona_products_array")
	require.NoError(t, err)
	assert.Equal(t, []string{"sectionA", "products"}, path.Segments)
	assert.True(t, path.IsArray)
}

func TestResolver_Resolve_GreedyPrefersLongestMatch(t *testing.T) {
	m := NewCasingMap(map[string]string{
		"water":                "water",
		"waterintensity":       "waterIntensity",
		"waterintensityperton": "waterIntensityPerTon",
	})
	r := NewResolver(m)

	path, err := r.Resolve("sectionc_water_intensity_per_ton")
	require.NoError(t, err)
	assert.Equal(t, []string{"sectionC", "waterIntensityPerTon"}, path.Segments)
}

func TestResolver_Resolve_EmptySegmentsSkipped(t *testing.T) {
	r := newTestResolver()

	path, err := r.Resolve("sectiona__cin")
	require.NoError(t, err)
	assert.Equal(t, []string{"sectionA", "cin"}, path.Segments)
}

func TestResolver_Resolve_Deterministic(t *testing.T) {
	r := newTestResolver()

	first, err := r.Resolve("sectionb_policymatrix_p3_approvedbyboard")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := r.Resolve("sectionb_policymatrix_p3_approvedbyboard")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPath_String(t *testing.T) {
	p := Path{Segments: []string{"sectionA", "employees", "permanent"}}
	assert.Equal(t, "sectionA.employees.permanent", p.String())
}
