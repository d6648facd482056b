// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package oratest_test

import (
	"context"
	"testing"
	"time"

	"github.com/godror/knownpb/timestamppb"

	"github.com/godror/oratest"
)

func TestFromAnyTimestamp(t *testing.T) {
	t.Parallel()
	when := time.Date(2026, 8, 30, 1, 2, 3, 0, time.UTC)
	got, err := oratest.FromAny(timestamppb.New(when))
	if err != nil {
		t.Fatal(err)
	}
	want := oratest.StringValue("2026-08-30T01:02:03Z")
	if !oratest.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v", got, want)
	}
	// the wrapped and the plain time must land on the same Value
	if plain, err := oratest.FromAny(when); err != nil {
		t.Fatal(err)
	} else if !oratest.DeepEqual(got, plain) {
		t.Errorf("timestamp %v != time %v", got, plain)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	skipIfNoDB(t)
	defer tl.EnableLogging(t)()
	ctx, cancel := context.WithTimeout(oratest.TestContext("TimestampRoundTrip"), 30*time.Second)
	defer cancel()

	when := time.Date(2026, 8, 30, 1, 2, 3, 0, time.UTC)
	const qry = "SELECT CAST(:1 AS TIMESTAMP WITH TIME ZONE) FROM DUAL"
	var got timestamppb.Timestamp
	if err := testDb.QueryRowContext(ctx, qry, timestamppb.New(when)).Scan(&got); err != nil {
		t.Fatalf("%s: %+v", qry, err)
	}
	if !got.AsTime().Equal(when) {
		t.Errorf("got %s, wanted %s", got.AsTime(), when)
	}

	gv, err := oratest.FromAny(&got)
	if err != nil {
		t.Fatal(err)
	}
	wv, err := oratest.FromAny(when)
	if err != nil {
		t.Fatal(err)
	}
	if !oratest.DeepEqual(gv, wv) {
		t.Errorf("got %v, wanted %v", gv, wv)
	}
}
