// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package oratest

import (
	"math/rand"
	"strings"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "_$#"
)

// RandomString returns a random identifier-safe string of length n:
// a letter followed by letters and digits.
func RandomString(n int) string {
	if n <= 0 {
		return ""
	}
	const letters = upperChars + lowerChars
	const rest = letters + digitChars
	var sb strings.Builder
	sb.Grow(n)
	sb.WriteByte(letters[rand.Intn(len(letters))])
	for i := 1; i < n; i++ {
		sb.WriteByte(rest[rand.Intn(len(rest))])
	}
	return sb.String()
}

// RandomPassword returns a random password of length n (minimum 4 is
// enforced) that satisfies the usual profile rules: starts with a
// letter and contains at least one upper-case letter, one digit and
// one of "_$#".
func RandomPassword(n int) string {
	if n < 4 {
		n = 4
	}
	b := make([]byte, n)
	b[0] = lowerChars[rand.Intn(len(lowerChars))]
	b[1] = upperChars[rand.Intn(len(upperChars))]
	b[2] = digitChars[rand.Intn(len(digitChars))]
	b[3] = symbolChars[rand.Intn(len(symbolChars))]
	const all = upperChars + lowerChars + digitChars + symbolChars
	for i := 4; i < n; i++ {
		b[i] = all[rand.Intn(len(all))]
	}
	// keep the guaranteed classes, shuffle only the tail
	tail := b[1:]
	rand.Shuffle(len(tail), func(i, j int) { tail[i], tail[j] = tail[j], tail[i] })
	return string(b)
}
