package document_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wrapkit/pkg/document"
)

func TestLazy_LoadsOnFirstReadOnly(t *testing.T) {
	t.Parallel()

	loader := &countingLoader{content: "Top Secret Data"}
	l := document.NewLazy("secret.txt", loader)

	assert.Equal(t, 0, loader.Calls(), "construction must not load")
	assert.False(t, l.Initialized())
	assert.Equal(t, "secret.txt", l.Name())

	for range 3 {
		assert.Equal(t, "Top Secret Data", l.Read(context.Background()))
	}
	assert.Equal(t, 1, loader.Calls())
	assert.True(t, l.Initialized())
}

func TestLazy_ConcurrentFirstReads(t *testing.T) {
	t.Parallel()

	loader := &countingLoader{content: "shared", delay: 10 * time.Millisecond}
	l := document.NewLazy("doc", loader)

	const readers = 32
	results := make([]string, readers)
	var wg sync.WaitGroup
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = l.Read(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, loader.Calls())
	for _, r := range results {
		assert.Equal(t, "shared", r)
	}
}

func TestLazy_FailureThenRetry(t *testing.T) {
	t.Parallel()

	sink, log := newLogSink()
	loader := &countingLoader{content: "recovered", failures: 1}
	l := document.NewLazy("doc", loader, document.WithLogger(log))

	assert.Equal(t, document.Unavailable, l.Read(context.Background()))
	assert.False(t, l.Initialized())

	recs := sink.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "Document load failed", recs[0]["msg"])
	assert.Equal(t, "ERROR", recs[0]["level"])
	assert.Equal(t, "doc", recs[0]["document"])
	assert.Equal(t, errBackend.Error(), recs[0]["error"])

	assert.Equal(t, "recovered", l.Read(context.Background()))
	assert.Equal(t, "recovered", l.Read(context.Background()))
	assert.Equal(t, 2, loader.Calls())
	assert.Len(t, sink.records(t), 1, "successful loads are not logged")
}

func TestLazy_NilDocumentIsUnavailable(t *testing.T) {
	t.Parallel()

	sink, log := newLogSink()
	l := document.NewLazy("doc", document.LoaderFunc(func(context.Context, string) (*document.Document, error) {
		return nil, nil
	}), document.WithLogger(log))
	assert.Equal(t, document.Unavailable, l.Read(context.Background()))
	assert.False(t, l.Initialized())

	recs := sink.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, document.ErrLoadFailed.Error(), recs[0]["error"])
}

func TestIsSentinel(t *testing.T) {
	t.Parallel()

	assert.True(t, document.IsSentinel(document.AccessDenied))
	assert.True(t, document.IsSentinel(document.Unavailable))
	assert.False(t, document.IsSentinel("Top Secret Data"))
	assert.False(t, document.IsSentinel(""))
}

func TestLazy_FailureVisibleBehindLoggingProxy(t *testing.T) {
	t.Parallel()

	sink, log := newLogSink()
	loader := &countingLoader{content: "Top Secret Data", failures: 1}
	r := document.NewLogging(
		document.NewLazy("secret.txt", loader, document.WithLogger(log)),
		document.WithLogger(log),
	)

	assert.Equal(t, document.Unavailable, r.Read(context.Background()))

	recs := sink.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "Document load failed", recs[0]["msg"])
	assert.Contains(t, recs[0]["error"], "backend down")
}
