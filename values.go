// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package oratest

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind tags the variants of a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Sequence
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is one node of a comparison: a scalar (null, bool, number,
// string) or a composite (sequence of Values, or a mapping from string
// key to Value). The zero Value is Null.
//
// Values are immutable inputs to comparison and are never mutated.
type Value struct {
	m    map[string]Value
	seq  []Value
	s    string
	f    float64
	kind Kind
	b    bool
}

// NullValue returns the null Value. It equals only itself.
func NullValue() Value { return Value{} }

// BoolValue returns b as a Value.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// NumberValue returns f as a Value.
func NumberValue(f float64) Value { return Value{kind: Number, f: f} }

// StringValue returns s as a Value.
func StringValue(s string) Value { return Value{kind: String, s: s} }

// SequenceValue returns elems as a sequence Value.
// The slice is NOT copied.
func SequenceValue(elems ...Value) Value { return Value{kind: Sequence, seq: elems} }

// MappingValue returns m as a mapping Value. The map is NOT copied.
func MappingValue(m map[string]Value) Value { return Value{kind: Mapping, m: m} }

// Kind returns the variant tag of v.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the bool scalar, or false if v is not a Bool.
func (v Value) Bool() bool { return v.kind == Bool && v.b }

// Number returns the numeric scalar, or NaN if v is not a Number.
func (v Value) Number() float64 {
	if v.kind != Number {
		return math.NaN()
	}
	return v.f
}

// Str returns the string scalar, or "" if v is not a String.
func (v Value) Str() string {
	if v.kind != String {
		return ""
	}
	return v.s
}

// Len returns the member count of a composite, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case Sequence:
		return len(v.seq)
	case Mapping:
		return len(v.m)
	}
	return 0
}

// Index returns the i-th element of a sequence.
// It panics when v is not a Sequence or i is out of range,
// just as indexing a slice would.
func (v Value) Index(i int) Value { return v.seq[i] }

// Key returns the member of a mapping under key, and whether it is present.
func (v Value) Key(key string) (Value, bool) {
	m, ok := v.m[key]
	return m, ok
}

// FromAny converts a Go value decoded from JSON or scanned from a
// database row into a Value. Supported: nil, bool, every integer and
// float type, string, []byte, time.Time and anything with an
// AsTime() time.Time method (rendered as RFC3339Nano in UTC),
// []interface{} and map[string]interface{} (recursively), and
// Value itself. Anything else is an error.
func FromAny(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return x, nil
	case bool:
		return BoolValue(x), nil
	case int:
		return NumberValue(float64(x)), nil
	case int8:
		return NumberValue(float64(x)), nil
	case int16:
		return NumberValue(float64(x)), nil
	case int32:
		return NumberValue(float64(x)), nil
	case int64:
		return NumberValue(float64(x)), nil
	case uint:
		return NumberValue(float64(x)), nil
	case uint8:
		return NumberValue(float64(x)), nil
	case uint16:
		return NumberValue(float64(x)), nil
	case uint32:
		return NumberValue(float64(x)), nil
	case uint64:
		return NumberValue(float64(x)), nil
	case float32:
		return NumberValue(float64(x)), nil
	case float64:
		return NumberValue(x), nil
	case string:
		return StringValue(x), nil
	case []byte:
		return StringValue(string(x)), nil
	case time.Time:
		return StringValue(x.UTC().Format(time.RFC3339Nano)), nil
	case interface{ AsTime() time.Time }:
		return StringValue(x.AsTime().UTC().Format(time.RFC3339Nano)), nil
	case []interface{}:
		elems := make([]Value, len(x))
		for i, e := range x {
			var err error
			if elems[i], err = FromAny(e); err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return SequenceValue(elems...), nil
	case map[string]interface{}:
		m := make(map[string]Value, len(x))
		for k, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, fmt.Errorf("[%q]: %w", k, err)
			}
			m[k] = ev
		}
		return MappingValue(m), nil
	}
	return Value{}, fmt.Errorf("cannot represent %T as a Value", v)
}

// DeepEqual reports whether a and b are structurally equal: scalars by
// value, sequences element by element in order, mappings key by key.
// A Null equals only another Null; Values of different kinds are never
// equal. Two composites of equal size but different key sets are not
// equal: keys are taken from one side and each must be present in the
// other, a missing key is an inequality.
//
// Cyclic composites (a mapping or sequence that reaches itself) are not
// detected and make DeepEqual recurse without bound. Callers own that
// risk; the function never fails otherwise.
func DeepEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool:
		return a.b == b.b
	case Number:
		return a.f == b.f
	case String:
		return a.s == b.s
	case Sequence:
		if len(a.seq) != len(b.seq) {
			return false
		}
		if len(a.seq) != 0 && &a.seq[0] == &b.seq[0] {
			// same backing array
			return true
		}
		for i := range a.seq {
			if !DeepEqual(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	case Mapping:
		// Size check alone is not enough: b may hold the same number
		// of members under different keys.
		if len(a.m) != len(b.m) {
			return false
		}
		for k, av := range a.m {
			bv, ok := b.m[k]
			if !ok || !DeepEqual(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}
