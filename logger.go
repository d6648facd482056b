// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package oratest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/go-logfmt/logfmt"
	godror "github.com/godror/godror"
)

// TestContext returns a context tagged with "Test"+name as the trace
// module, so the server-side session of each test is identifiable in
// v$session.
func TestContext(name string) context.Context {
	return godror.ContextWithTraceTag(context.Background(), godror.TraceTag{Module: "Test" + name})
}

var bufPool = sync.Pool{New: func() interface{} { return bytes.NewBuffer(make([]byte, 0, 1024)) }}

// TestLogger is a slog.Handler that routes driver log records to the
// *testing.Ts registered with EnableLogging, so driver output shows up
// interleaved with the right test's own logs. With verbose set it also
// logfmt-encodes every record to stderr.
type TestLogger struct {
	enc      *logfmt.Encoder
	ts       []*testing.T
	beHelped []*testing.T
	mu       sync.RWMutex
}

// NewTestLogger returns a TestLogger; with verbose it echoes records
// to stderr in logfmt.
func NewTestLogger(verbose bool) *TestLogger {
	tl := &TestLogger{}
	if verbose {
		tl.enc = logfmt.NewEncoder(os.Stderr)
	}
	return tl
}

// Logger returns a *slog.Logger backed by tl,
// suitable for godror.SetLogger.
func (tl *TestLogger) Logger() *slog.Logger { return slog.New(tl) }

func (tl *TestLogger) Enabled(context.Context, slog.Level) bool { return true }

func (tl *TestLogger) Handle(ctx context.Context, r slog.Record) error {
	buf := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(buf)
	buf.Reset()
	buf.WriteString(r.Message)
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(buf, " %s=%v", a.Key, a.Value)
		return true
	})
	return tl.log(buf.String())
}

func (tl *TestLogger) WithAttrs(attrs []slog.Attr) slog.Handler { return tl }
func (tl *TestLogger) WithGroup(name string) slog.Handler       { return tl }

func (tl *TestLogger) log(s string) error {
	if tl.enc != nil {
		tl.mu.Lock()
		tl.enc.EncodeKeyval("msg", s)
		tl.enc.EndRecord()
		tl.mu.Unlock()
	}

	tl.mu.Lock()
	for _, t := range tl.beHelped {
		t.Helper()
	}
	tl.beHelped = tl.beHelped[:0]
	tl.mu.Unlock()

	tl.mu.RLock()
	defer tl.mu.RUnlock()
	if len(tl.ts) == 0 {
		fmt.Println(s)
		return nil
	}
	for _, t := range tl.ts {
		t.Helper()
		t.Log(s)
	}
	return nil
}

// EnableLogging registers t as a log sink and returns the
// deregistering func, to be deferred.
func (tl *TestLogger) EnableLogging(t *testing.T) func() {
	tl.mu.Lock()
	tl.ts = append(tl.ts, t)
	tl.beHelped = append(tl.beHelped, t)
	tl.mu.Unlock()

	return func() {
		tl.mu.Lock()
		defer tl.mu.Unlock()
		for i, f := range tl.ts {
			if f == t {
				tl.ts[i] = tl.ts[0]
				tl.ts = tl.ts[1:]
				break
			}
		}
		for i, f := range tl.beHelped {
			if f == t {
				tl.beHelped[i] = tl.beHelped[0]
				tl.beHelped = tl.beHelped[1:]
				break
			}
		}
	}
}
