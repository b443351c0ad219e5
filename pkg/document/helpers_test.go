package document_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wrapkit/pkg/document"
	"github.com/dmitrymomot/wrapkit/pkg/logger"
)

var errBackend = errors.New("backend down")

// countingLoader counts Load calls and fails the first failures calls.
type countingLoader struct {
	content  string
	failures int32
	delay    time.Duration
	calls    atomic.Int32
}

func (l *countingLoader) Load(_ context.Context, name string) (*document.Document, error) {
	n := l.calls.Add(1)
	if l.delay > 0 {
		time.Sleep(l.delay)
	}
	if n <= l.failures {
		return nil, errBackend
	}
	return &document.Document{Name: name, Content: l.content, LoadedAt: time.Now()}, nil
}

func (l *countingLoader) Calls() int { return int(l.calls.Load()) }

type logSink struct {
	buf *bytes.Buffer
}

func newLogSink() (*logSink, *slog.Logger) {
	buf := &bytes.Buffer{}
	return &logSink{buf: buf}, logger.New(logger.WithOutput(buf))
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
