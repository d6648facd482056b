// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package oratest

import (
	"math"
	"strconv"
	"strings"
)

// Ordering is the result of CompareVersions.
type Ordering int8

const (
	Less          Ordering = -1
	Equal         Ordering = 0
	Greater       Ordering = 1
	NotComparable Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case NotComparable:
		return "not comparable"
	}
	return "ordering(" + strconv.Itoa(int(o)) + ")"
}

// CompareVersions orders two dot-separated version strings such as
// "19.9.0" numerically, segment by segment from the left. The first
// differing segment decides. When all shared segments are equal, the
// version with FEWER segments ranks Greater: "12.2" beats "12.2.0.0.0".
//
// Either argument not being a string yields NotComparable; that is the
// only failure mode and it is non-fatal. A non-numeric segment becomes
// NaN and orders the same as its peer (neither greater nor less), so
// malformed segments are skipped over rather than rejected.
func CompareVersions(v1, v2 interface{}) Ordering {
	s1, ok := v1.(string)
	if !ok {
		return NotComparable
	}
	s2, ok := v2.(string)
	if !ok {
		return NotComparable
	}
	t1 := strings.Split(s1, ".")
	t2 := strings.Split(s2, ".")
	n := len(t1)
	if len(t2) < n {
		n = len(t2)
	}
	for i := 0; i < n; i++ {
		a, b := versionToken(t1[i]), versionToken(t2[i])
		if a > b {
			return Greater
		}
		if a < b {
			return Less
		}
	}
	switch {
	case len(t1) == len(t2):
		return Equal
	case len(t1) < len(t2):
		return Greater
	}
	return Less
}

func versionToken(s string) float64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return math.NaN()
	}
	return float64(n)
}
