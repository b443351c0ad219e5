package notifier_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wrapkit/pkg/access"
	"github.com/dmitrymomot/wrapkit/pkg/backoff"
	"github.com/dmitrymomot/wrapkit/pkg/chain"
	"github.com/dmitrymomot/wrapkit/pkg/logger"
	"github.com/dmitrymomot/wrapkit/pkg/notifier"
	"github.com/dmitrymomot/wrapkit/pkg/rbac"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	for _, want := range []bool{true, false} {
		sink, log := newLogSink()
		term := newScripted(want)
		n := notifier.NewLogging(term, notifier.WithLogger(log))

		got := n.Send(context.Background(), "user@example.com", "hello")

		assert.Equal(t, want, got)
		assert.Equal(t, 1, term.Calls())

		recs := sink.records(t)
		require.Len(t, recs, 2)
		assert.Equal(t, "Sending notification", recs[0]["msg"])
		assert.Equal(t, "user@example.com", recs[0]["recipient"])
		assert.Equal(t, "hello", recs[0]["message"])
		assert.Equal(t, want, recs[1]["ok"])
		assert.NotEmpty(t, recs[0]["call_id"])
		assert.Equal(t, recs[0]["call_id"], recs[1]["call_id"])
	}
}

func TestLogging_KeepsCallerCallID(t *testing.T) {
	t.Parallel()

	sink, log := newLogSink()
	n := notifier.NewLogging(newScripted(true), notifier.WithLogger(log))

	ctx := logger.WithCallID(context.Background(), "caller-id")
	n.Send(ctx, "user@example.com", "hello")

	for _, rec := range sink.records(t) {
		assert.Equal(t, "caller-id", rec["call_id"])
	}
}

func TestRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		attempts  int
		results   []bool
		want      bool
		wantCalls int
	}{
		{"always failing uses every attempt", 3, []bool{false}, false, 3},
		{"fails twice then succeeds", 3, []bool{false, false, true}, true, 3},
		{"success is not retried", 3, []bool{true}, true, 1},
		{"second attempt succeeds", 5, []bool{false, true}, true, 2},
		{"single attempt", 1, []bool{false, true}, false, 1},
		{"zero attempts clamps to one", 0, []bool{false}, false, 1},
		{"negative attempts clamps to one", -2, []bool{true}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			term := newScripted(tt.results...)
			n := notifier.NewRetry(term, tt.attempts, notifier.WithLogger(logger.Discard()))

			assert.Equal(t, tt.want, n.Send(context.Background(), "user@example.com", "hello"))
			assert.Equal(t, tt.wantCalls, term.Calls())
		})
	}
}

func TestRetry_LogsExhaustion(t *testing.T) {
	t.Parallel()

	sink, log := newLogSink()
	n := notifier.NewRetry(newScripted(false), 3, notifier.WithLogger(log))
	require.False(t, n.Send(context.Background(), "user@example.com", "hello"))

	assert.Equal(t, 3, sink.count(t, "Notification attempt failed"))
	assert.Equal(t, 1, sink.count(t, "Retries exhausted"))
}

func TestRetry_Backoff(t *testing.T) {
	t.Parallel()

	t.Run("waits between attempts", func(t *testing.T) {
		t.Parallel()
		term := newScripted(false, false, true)
		n := notifier.NewRetry(term, 3,
			notifier.WithLogger(logger.Discard()),
			notifier.WithBackoff(backoff.Constant{Interval: 5 * time.Millisecond}),
		)

		start := time.Now()
		assert.True(t, n.Send(context.Background(), "user@example.com", "hello"))
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
		assert.Equal(t, 3, term.Calls())
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		term := newScripted(false)
		first := notifier.Func(func(ctx context.Context, r, m string) bool {
			cancel()
			return term.Send(ctx, r, m)
		})
		n := notifier.NewRetry(first, 5,
			notifier.WithLogger(logger.Discard()),
			notifier.WithBackoff(backoff.Constant{Interval: time.Hour}),
		)

		assert.False(t, n.Send(ctx, "user@example.com", "hello"))
		assert.Equal(t, 1, term.Calls())
	})
}

func TestTiming(t *testing.T) {
	t.Parallel()

	for _, want := range []bool{true, false} {
		sink, log := newLogSink()
		slow := notifier.Func(func(context.Context, string, string) bool {
			time.Sleep(5 * time.Millisecond)
			return want
		})

		var observed time.Duration
		var observedOK bool
		n := notifier.NewTiming(slow,
			notifier.WithLogger(log),
			notifier.WithObserver(func(d time.Duration, ok bool) {
				observed, observedOK = d, ok
			}),
		)

		assert.Equal(t, want, n.Send(context.Background(), "user@example.com", "hello"))
		assert.GreaterOrEqual(t, observed, 5*time.Millisecond)
		assert.Equal(t, want, observedOK)
		assert.Equal(t, 1, sink.count(t, "Execution time"))
	}
}

func TestAccessControl(t *testing.T) {
	t.Parallel()

	t.Run("denied call never reaches the chain", func(t *testing.T) {
		t.Parallel()
		sink, log := newLogSink()
		term := newScripted(true)
		inner := chain.Chain[notifier.Notifier](term,
			notifier.Logging(notifier.WithLogger(log)),
			notifier.Retry(3, notifier.WithLogger(log)),
			notifier.Timing(notifier.WithLogger(log)),
		)
		n := notifier.NewAccessControl(inner, access.RequireRole("GUEST", "ADMIN"))

		assert.False(t, n.Send(context.Background(), "user@example.com", "hello"))
		assert.Equal(t, 0, term.Calls())
		assert.Empty(t, sink.records(t))
	})

	t.Run("allowed call delegates once", func(t *testing.T) {
		t.Parallel()
		term := newScripted(true)
		n := notifier.NewAccessControl(term, access.RequireContextRole("ADMIN"))

		ctx := rbac.WithRole(context.Background(), "ADMIN")
		assert.True(t, n.Send(ctx, "user@example.com", "hello"))
		assert.Equal(t, 1, term.Calls())
	})

	t.Run("allowed call returns delegate failure unchanged", func(t *testing.T) {
		t.Parallel()
		term := newScripted(false)
		n := notifier.NewAccessControl(term, access.RequireRole("ADMIN", "ADMIN"))
		assert.False(t, n.Send(context.Background(), "user@example.com", "hello"))
		assert.Equal(t, 1, term.Calls())
	})
}

func TestLoggingPlacementAroundRetry(t *testing.T) {
	t.Parallel()

	t.Run("logging outside retry sees one call", func(t *testing.T) {
		t.Parallel()
		sink, log := newLogSink()
		n := chain.Chain[notifier.Notifier](newScripted(false, false, true),
			notifier.Logging(notifier.WithLogger(log)),
			notifier.Retry(3, notifier.WithLogger(logger.Discard())),
		)

		require.True(t, n.Send(context.Background(), "user@example.com", "hello"))
		assert.Equal(t, 1, sink.count(t, "Sending notification"))

		recs := sink.records(t)
		assert.Equal(t, true, recs[len(recs)-1]["ok"])
	})

	t.Run("logging inside retry sees every attempt", func(t *testing.T) {
		t.Parallel()
		sink, log := newLogSink()
		n := chain.Chain[notifier.Notifier](newScripted(false, false, true),
			notifier.Retry(3, notifier.WithLogger(logger.Discard())),
			notifier.Logging(notifier.WithLogger(log)),
		)

		require.True(t, n.Send(context.Background(), "user@example.com", "hello"))
		assert.Equal(t, 3, sink.count(t, "Sending notification"))
		assert.Equal(t, 3, sink.count(t, "Notification call finished"))

		recs := sink.records(t)
		require.NotEmpty(t, recs)
		first := recs[0]["call_id"]
		assert.NotEmpty(t, first)
		for _, rec := range recs {
			assert.Equal(t, first, rec["call_id"], "attempts of one Send share a call id")
		}
	})
}

func TestOutcomeIsOrderIndependent(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	wrappers := map[string]chain.Middleware[notifier.Notifier]{
		"logging": notifier.Logging(notifier.WithLogger(log)),
		"retry":   notifier.Retry(3, notifier.WithLogger(log)),
		"timing":  notifier.Timing(notifier.WithLogger(log)),
	}
	orders := [][]string{
		{"logging", "retry", "timing"},
		{"logging", "timing", "retry"},
		{"retry", "logging", "timing"},
		{"retry", "timing", "logging"},
		{"timing", "logging", "retry"},
		{"timing", "retry", "logging"},
	}
	scenarios := []struct {
		name    string
		results []bool
		want    bool
	}{
		{"always succeeds", []bool{true}, true},
		{"always fails", []bool{false}, false},
		{"recovers on third attempt", []bool{false, false, true}, true},
		{"recovers too late", []bool{false, false, false, true}, false},
	}

	for _, sc := range scenarios {
		for _, order := range orders {
			mws := make([]chain.Middleware[notifier.Notifier], 0, len(order))
			for _, name := range order {
				mws = append(mws, wrappers[name])
			}
			n := chain.Chain[notifier.Notifier](newScripted(sc.results...), mws...)
			assert.Equal(t, sc.want, n.Send(context.Background(), "user@example.com", "hello"),
				"%s with order %v", sc.name, order)
		}
	}
}
