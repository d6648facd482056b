// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

// Package oratest holds the shared helpers of godror-based test
// suites: structural comparison of result values, version-string
// ordering, idempotent table DDL, random identifiers, session
// statistics and a testing.T-aware driver logger, all against a live
// database reached through the godror driver.
package oratest
