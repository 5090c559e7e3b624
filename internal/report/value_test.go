package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroValueIsNull(t *testing.T) {
	var v Value
	assert.Equal(t, KindScalar, v.Kind())
	assert.True(t, v.IsNull())

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestValue_Constructors(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.True(t, String("").IsEmptyString())
	assert.False(t, String("x").IsEmptyString())

	n := Number(42)
	assert.Equal(t, KindScalar, n.Kind())
	assert.Equal(t, "42", string(n.Raw()))

	b := Bool(true)
	assert.Equal(t, "true", string(b.Raw()))

	seq := Sequence(String("a"), String("b"))
	assert.Equal(t, KindSequence, seq.Kind())
	assert.Len(t, seq.Items(), 2)

	sub := Subtree(map[string]Value{"k": String("v")})
	assert.Equal(t, KindSubtree, sub.Kind())
	assert.Len(t, sub.Fields(), 1)
}

func TestValue_ScalarNormalizesNull(t *testing.T) {
	assert.True(t, Scalar(nil).IsNull())
	assert.True(t, Scalar(json.RawMessage("null")).IsNull())
	assert.False(t, Scalar(json.RawMessage(`"null"`)).IsNull())
}

func TestValue_SubtreeRetainsBackingMap(t *testing.T) {
	fields := map[string]Value{}
	sub := Subtree(fields)

	fields["added"] = String("later")

	assert.Len(t, sub.Fields(), 1)
	_, ok := sub.Fields()["added"]
	assert.True(t, ok)
}

func TestValue_CloneIsDeep(t *testing.T) {
	inner := map[string]Value{"leaf": String("original")}
	v := Subtree(map[string]Value{"inner": Subtree(inner)})

	clone := v.Clone()
	inner["leaf"] = String("mutated")

	got := clone.Fields()["inner"].Fields()["leaf"]
	assert.Equal(t, `"original"`, string(got.Raw()))
}

func TestValue_UnmarshalJSON_Shapes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  Kind
	}{
		{"object", `{"a":1}`, KindSubtree},
		{"nested object", `{"a":{"b":[1,2]}}`, KindSubtree},
		{"array", `[1,"two",null]`, KindSequence},
		{"string", `"hello"`, KindScalar},
		{"number", `3.14`, KindScalar},
		{"bool", `false`, KindScalar},
		{"null", `null`, KindScalar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tc.input), &v))
			assert.Equal(t, tc.kind, v.Kind())
		})
	}
}

func TestValue_UnmarshalJSON_Invalid(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(``), &v))
	assert.Error(t, v.UnmarshalJSON([]byte(`not json`)))
}

func TestValue_MarshalRoundTrip(t *testing.T) {
	input := `{"sectionA":{"cin":"L23201DL1959GOI003948","employees":{"permanent":{"male":"3424"}},"tags":["a","b"]}}`

	var v Value
	require.NoError(t, json.Unmarshal([]byte(input), &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}
