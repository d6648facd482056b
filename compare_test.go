// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package oratest_test

import (
	"testing"

	"github.com/godror/oratest"
)

func TestCompareVersions(t *testing.T) {
	t.Parallel()
	for i, tC := range []struct {
		v1, v2 interface{}
		want   oratest.Ordering
	}{
		{"18.5.0", "18.5.0", oratest.Equal},
		{"19.9.0", "18.5.0", oratest.Greater},
		{"18.5.0", "19.9.0", oratest.Less},
		{"19.10.0", "19.9.0", oratest.Greater},
		{"12.1.0.2", "12.2.0.1", oratest.Less},
		// fewer segments rank higher on a tie
		{"12.2", "12.2.0.0.0", oratest.Greater},
		{"12.2.0.0.0", "12.2", oratest.Less},
		{"23", "23.4", oratest.Greater},
		// non-numeric segments order as equal to anything
		{"12.x.1", "12.y.1", oratest.Equal},
		{"12.x.2", "12.x.1", oratest.Greater},
		{123, "1.0", oratest.NotComparable},
		{"1.0", nil, oratest.NotComparable},
		{nil, nil, oratest.NotComparable},
	} {
		if got := oratest.CompareVersions(tC.v1, tC.v2); got != tC.want {
			t.Errorf("%d. CompareVersions(%v, %v) = %s, wanted %s", i, tC.v1, tC.v2, got, tC.want)
		}
	}
}

func TestCompareVersionsAntisymmetric(t *testing.T) {
	t.Parallel()
	versions := []string{"11.2.0.4", "12.1", "12.2.0.1", "18.3", "19.9.0", "21", "23.4.0.24.05"}
	for _, a := range versions {
		for _, b := range versions {
			x, y := oratest.CompareVersions(a, b), oratest.CompareVersions(b, a)
			if x == oratest.Equal && y != oratest.Equal ||
				x == oratest.Greater && y != oratest.Less ||
				x == oratest.Less && y != oratest.Greater {
				t.Errorf("CompareVersions(%q, %q) = %s but CompareVersions(%q, %q) = %s",
					a, b, x, b, a, y)
			}
		}
	}
}
