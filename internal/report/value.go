package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindSubtree
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindSubtree:
		return "subtree"
	default:
		return "unknown"
	}
}

// Value is a closed tagged variant over the JSON-compatible payloads the
// extraction boundary produces: a scalar (string, number, bool, null), a
// sequence of values, or a subtree of named values. The zero Value is the
// JSON null scalar.
type Value struct {
	kind Kind
	raw  json.RawMessage
	seq  []Value
	sub  map[string]Value
}

// Null returns the JSON null scalar.
func Null() Value {
	return Value{kind: KindScalar}
}

// String returns a string scalar.
func String(s string) Value {
	raw, _ := json.Marshal(s)
	return Value{kind: KindScalar, raw: raw}
}

// Number returns a numeric scalar.
func Number(f float64) Value {
	raw, _ := json.Marshal(f)
	return Value{kind: KindScalar, raw: raw}
}

// Bool returns a boolean scalar.
func Bool(b bool) Value {
	raw, _ := json.Marshal(b)
	return Value{kind: KindScalar, raw: raw}
}

// Scalar wraps a raw JSON scalar payload without inspecting it.
func Scalar(raw json.RawMessage) Value {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Null()
	}
	return Value{kind: KindScalar, raw: raw}
}

// Sequence returns a sequence value over the given items.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, seq: items}
}

// Subtree returns a subtree value backed by the given field map. The map is
// retained, not copied, so later writes through Fields are visible.
func Subtree(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindSubtree, sub: fields}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the JSON null scalar.
func (v Value) IsNull() bool {
	return v.kind == KindScalar && len(v.raw) == 0
}

// IsEmptyString reports whether the value is the scalar "".
func (v Value) IsEmptyString() bool {
	return v.kind == KindScalar && bytes.Equal(v.raw, []byte(`""`))
}

// Raw returns the raw JSON payload of a scalar, or nil for null and
// non-scalar values.
func (v Value) Raw() json.RawMessage { return v.raw }

// Items returns the backing slice of a sequence, or nil otherwise.
func (v Value) Items() []Value { return v.seq }

// Fields returns the live backing map of a subtree, or nil otherwise.
func (v Value) Fields() map[string]Value { return v.sub }

// Clone returns a deep copy sharing no mutable state with v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.Clone()
		}
		return Value{kind: KindSequence, seq: items}
	case KindSubtree:
		fields := make(map[string]Value, len(v.sub))
		for k, f := range v.sub {
			fields[k] = f.Clone()
		}
		return Value{kind: KindSubtree, sub: fields}
	default:
		if v.raw == nil {
			return Value{kind: KindScalar}
		}
		return Value{kind: KindScalar, raw: append(json.RawMessage(nil), v.raw...)}
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindSequence:
		return json.Marshal(v.seq)
	case KindSubtree:
		return json.Marshal(v.sub)
	default:
		if len(v.raw) == 0 {
			return []byte("null"), nil
		}
		return v.raw, nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. Objects decode to subtrees,
// arrays to sequences, everything else to an opaque scalar.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("report.Value: empty JSON input")
	}
	switch trimmed[0] {
	case '{':
		var fields map[string]Value
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return err
		}
		if fields == nil {
			fields = map[string]Value{}
		}
		*v = Value{kind: KindSubtree, sub: fields}
	case '[':
		var items []Value
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		if items == nil {
			items = []Value{}
		}
		*v = Value{kind: KindSequence, seq: items}
	default:
		if bytes.Equal(trimmed, []byte("null")) {
			*v = Null()
			return nil
		}
		if !json.Valid(trimmed) {
			return fmt.Errorf("report.Value: invalid JSON scalar: %s", trimmed)
		}
		*v = Value{kind: KindScalar, raw: append(json.RawMessage(nil), trimmed...)}
	}
	return nil
}
