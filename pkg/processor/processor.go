// Package processor is a chain over an error-returning capability.
//
// Unlike the notification and document chains, failures here travel as Go
// errors, so wrappers observe them without translating them to in-band values.
package processor

import (
	"context"
	"errors"
)

// ErrOddInput is returned by Halver for inputs that are not divisible by two.
var ErrOddInput = errors.New("processor.errors.odd_input")

// Processor transforms an integer.
type Processor interface {
	Process(ctx context.Context, data int) (int, error)
}

// Func adapts an ordinary function to Processor.
type Func func(ctx context.Context, data int) (int, error)

func (f Func) Process(ctx context.Context, data int) (int, error) { return f(ctx, data) }

// Halver halves even inputs.
type Halver struct{}

func (Halver) Process(ctx context.Context, data int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if data%2 != 0 {
		return 0, ErrOddInput
	}
	return data / 2, nil
}
