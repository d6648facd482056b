// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package oratest

import (
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Diff returns a human-readable report of how a and b differ,
// or the empty string when DeepEqual(a, b) would be true.
// Meant for test failure messages.
func Diff(a, b Value) string {
	return cmp.Diff(a.generic(), b.generic())
}

// generic converts v back to plain Go values (nil, bool, float64,
// string, []interface{}, map[string]interface{}) for go-cmp.
func (v Value) generic() interface{} {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		return v.f
	case String:
		return v.s
	case Sequence:
		elems := make([]interface{}, len(v.seq))
		for i, e := range v.seq {
			elems[i] = e.generic()
		}
		return elems
	case Mapping:
		m := make(map[string]interface{}, len(v.m))
		for k, e := range v.m {
			m[k] = e.generic()
		}
		return m
	}
	return nil
}

// String renders v in a compact JSON-like form, mapping keys sorted.
func (v Value) String() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v Value) render(sb *strings.Builder) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(v.b))
	case Number:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case String:
		sb.WriteString(strconv.Quote(v.s))
	case Sequence:
		sb.WriteByte('[')
		for i, e := range v.seq {
			if i != 0 {
				sb.WriteByte(',')
			}
			e.render(sb)
		}
		sb.WriteByte(']')
	case Mapping:
		keys := maps.Keys(v.m)
		slices.Sort(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i != 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			v.m[k].render(sb)
		}
		sb.WriteByte('}')
	}
}
