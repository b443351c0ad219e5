// Package backoff computes delays between retry attempts.
//
// Attempt numbers passed to Strategy.Next start at 1 for the first retry;
// zero or negative attempts always yield no delay.
package backoff

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

// Strategy returns the delay to wait before the given retry.
// Implementations must be safe for concurrent use.
type Strategy interface {
	Next(attempt int) time.Duration
}

// None retries immediately.
type None struct{}

func (None) Next(int) time.Duration { return 0 }

// Constant waits the same interval before every retry.
type Constant struct {
	Interval time.Duration
}

func (c Constant) Next(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return c.Interval
}

// Linear grows the delay by Interval on every retry, capped at Max.
// A zero Max means no cap.
type Linear struct {
	Interval time.Duration
	Max      time.Duration
}

func (l Linear) Next(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	d := l.Interval * time.Duration(attempt)
	if l.Max > 0 && d > l.Max {
		d = l.Max
	}
	return d
}

// Exponential implements min(Initial * Multiplier^(attempt-1) * (1 ± Jitter), Max).
// Zero fields fall back to 100ms initial, 2x multiplier and a 5s cap.
type Exponential struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     float64
}

func (e Exponential) Next(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	initial := e.Initial
	if initial == 0 {
		initial = 100 * time.Millisecond
	}
	maxDelay := e.Max
	if maxDelay == 0 {
		maxDelay = 5 * time.Second
	}
	multiplier := e.Multiplier
	if multiplier == 0 {
		multiplier = 2
	}

	interval := float64(initial) * math.Pow(multiplier, float64(attempt-1))
	if e.Jitter > 0 {
		interval *= 1 + (rand.Float64()*2-1)*e.Jitter
	}
	if interval > float64(maxDelay) {
		interval = float64(maxDelay)
	}
	return time.Duration(interval)
}

// Sleep blocks for d or until ctx is done, whichever comes first.
// It returns ctx.Err() when the context ended the wait.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
