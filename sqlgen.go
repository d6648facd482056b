// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package oratest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Execer is the minimal statement-execution surface needed by the
// table helpers; *sql.DB, *sql.Conn and *sql.Tx all satisfy it.
type Execer interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
}

// Querier is the minimal row-query surface needed by the statistics
// helpers; *sql.DB, *sql.Conn and *sql.Tx all satisfy it.
type Querier interface {
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// CreateTableSQL returns a PL/SQL block that drops table (ignoring
// ORA-00942, table does not exist) and recreates it with the given
// column definitions, so tests can set up their tables idempotently.
// Single quotes in columnsDDL are doubled for the inner
// EXECUTE IMMEDIATE string.
func CreateTableSQL(table, columnsDDL string) string {
	return fmt.Sprintf(`DECLARE
  tbl_missing EXCEPTION;
  PRAGMA EXCEPTION_INIT(tbl_missing, -942);
BEGIN
  BEGIN
    EXECUTE IMMEDIATE 'DROP TABLE %s PURGE';
  EXCEPTION WHEN tbl_missing THEN NULL;
  END;
  EXECUTE IMMEDIATE 'CREATE TABLE %s (%s)';
END;`,
		table, table, strings.ReplaceAll(columnsDDL, "'", "''"))
}

// DropTableSQL returns a PL/SQL block that drops table,
// ignoring ORA-00942.
func DropTableSQL(table string) string {
	return fmt.Sprintf(`DECLARE
  tbl_missing EXCEPTION;
  PRAGMA EXCEPTION_INIT(tbl_missing, -942);
BEGIN
  EXECUTE IMMEDIATE 'DROP TABLE %s PURGE';
EXCEPTION WHEN tbl_missing THEN NULL;
END;`,
		table)
}

// CreateTable (re)creates table with the given column definitions.
func CreateTable(ctx context.Context, db Execer, table, columnsDDL string) error {
	qry := CreateTableSQL(table, columnsDDL)
	if _, err := db.ExecContext(ctx, qry); err != nil {
		return fmt.Errorf("%s: %w", qry, err)
	}
	return nil
}

// DropTable drops table, treating a missing table as success.
func DropTable(ctx context.Context, db Execer, table string) error {
	qry := DropTableSQL(table)
	if _, err := db.ExecContext(ctx, qry); err != nil {
		return fmt.Errorf("%s: %w", qry, err)
	}
	return nil
}

// TableName returns prefix upper-cased with a unique suffix, short
// enough for the 30-byte identifier limit of older servers. Parallel
// test runs against the same schema get distinct names.
func TableName(prefix string) string {
	s := ulid.Make().String()
	return strings.ToUpper(prefix) + "_" + s[len(s)-10:]
}
