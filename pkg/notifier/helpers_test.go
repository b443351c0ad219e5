package notifier_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wrapkit/pkg/logger"
	"github.com/dmitrymomot/wrapkit/pkg/notifier"
)

// scripted is a terminal returning results in order, then its last result forever.
type scripted struct {
	results []bool
	calls   atomic.Int32
}

func newScripted(results ...bool) *scripted {
	return &scripted{results: results}
}

func (s *scripted) Send(_ context.Context, _, _ string) bool {
	n := int(s.calls.Add(1)) - 1
	if n >= len(s.results) {
		return s.results[len(s.results)-1]
	}
	return s.results[n]
}

func (s *scripted) Calls() int { return int(s.calls.Load()) }

var _ notifier.Notifier = (*scripted)(nil)

// logSink collects JSON log records written through a wrapkit logger.
type logSink struct {
	buf *bytes.Buffer
}

func newLogSink() (*logSink, *slog.Logger) {
	buf := &bytes.Buffer{}
	return &logSink{buf: buf}, logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
}

func (s *logSink) records(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(s.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func (s *logSink) count(t *testing.T, msg string) int {
	t.Helper()
	n := 0
	for _, rec := range s.records(t) {
		if rec["msg"] == msg {
			n++
		}
	}
	return n
}
