// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package oratest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	godror "github.com/godror/godror"
)

// ServerVersion returns the database server's version,
// using a raw driver connection of db.
func ServerVersion(ctx context.Context, db Execer) (godror.VersionInfo, error) {
	var v godror.VersionInfo
	err := godror.Raw(ctx, db, func(c godror.Conn) error {
		var err error
		v, err = c.ServerVersion()
		return err
	})
	return v, err
}

// ClientVersion returns the Oracle Client library's version.
func ClientVersion(ctx context.Context, db Execer) (godror.VersionInfo, error) {
	var v godror.VersionInfo
	err := godror.Raw(ctx, db, func(c godror.Conn) error {
		var err error
		v, err = c.ClientVersion()
		return err
	})
	return v, err
}

// VersionString renders v as a plain dot-separated string
// ("19.3.0.0.0"), without the server release banner that
// VersionInfo.String appends.
func VersionString(v godror.VersionInfo) string {
	fields := []int{int(v.Version), int(v.Release), int(v.Update), int(v.PortRelease), int(v.PortUpdate)}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ".")
}

// VersionAtLeast reports whether v is at least min, a dot-separated
// version string such as "18.3". Only as many fields as min provides
// are compared, so the field-count tie rule of CompareVersions never
// applies here.
func VersionAtLeast(v godror.VersionInfo, min string) bool {
	have := strings.Split(VersionString(v), ".")
	want := strings.Split(min, ".")
	if len(want) < len(have) {
		have = have[:len(want)]
	}
	switch CompareVersions(strings.Join(have, "."), min) {
	case Greater, Equal:
		return true
	}
	return false
}

// ServerVersionAtLeast reports whether the server version is at least
// min ("12.1", "23.4.0.24.05", ...).
func ServerVersionAtLeast(ctx context.Context, db Execer, min string) (bool, error) {
	v, err := ServerVersion(ctx, db)
	if err != nil {
		return false, err
	}
	return VersionAtLeast(v, min), nil
}

// IsSodaEnabled reports whether SODA document operations can be used:
// both the server and the client library must be at least 18.3.
func IsSodaEnabled(ctx context.Context, db Execer) (bool, error) {
	sv, err := ServerVersion(ctx, db)
	if err != nil {
		return false, err
	}
	cv, err := ClientVersion(ctx, db)
	if err != nil {
		return false, err
	}
	return VersionAtLeast(sv, "18.3") && VersionAtLeast(cv, "18.3"), nil
}

const sessionStatQry = `SELECT s.value
  FROM v$mystat s, v$statname n
  WHERE s.statistic# = n.statistic# AND n.name = :1`

// SessionStat returns the current session's value of the named
// v$mystat statistic. Needs SELECT privilege on v$mystat and
// v$statname.
func SessionStat(ctx context.Context, db Querier, name string) (int64, error) {
	var value int64
	if err := db.QueryRowContext(ctx, sessionStatQry, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("statistic %q: %w", name, err)
	}
	return value, nil
}

// ParseCount returns the session's total statement parse count,
// for asserting on statement-cache effectiveness.
func ParseCount(ctx context.Context, db Querier) (int64, error) {
	return SessionStat(ctx, db, "parse count (total)")
}

// RoundTripCount returns the session's SQL*Net round-trip count.
func RoundTripCount(ctx context.Context, db Querier) (int64, error) {
	return SessionStat(ctx, db, "SQL*Net roundtrips to/from client")
}

// IsOraErr reports whether err carries the given ORA-nnnnn code.
func IsOraErr(err error, code int) bool {
	var oerr *godror.OraErr
	return errors.As(err, &oerr) && oerr.Code() == code
}
