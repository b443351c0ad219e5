package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/wrapkit/pkg/chain"
	"github.com/dmitrymomot/wrapkit/pkg/logger"
)

type timingProcessor struct {
	next   Processor
	logger *slog.Logger
}

// NewTiming logs the elapsed time of every delegated call, including failed ones.
func NewTiming(next Processor, log *slog.Logger) Processor {
	return &timingProcessor{next: next, logger: orDefault(log)}
}

func (t *timingProcessor) Process(ctx context.Context, data int) (int, error) {
	start := time.Now()
	out, err := t.next.Process(ctx, data)
	t.logger.LogAttrs(ctx, slog.LevelInfo, "Execution time",
		logger.Component("timing"),
		logger.Duration(time.Since(start)),
		logger.Outcome(err == nil),
	)
	return out, err
}

type ioLoggingProcessor struct {
	next   Processor
	logger *slog.Logger
}

// NewIOLogging logs the input before delegating and the output after a
// successful call. Failed calls log only the input.
func NewIOLogging(next Processor, log *slog.Logger) Processor {
	return &ioLoggingProcessor{next: next, logger: orDefault(log)}
}

func (p *ioLoggingProcessor) Process(ctx context.Context, data int) (int, error) {
	p.logger.LogAttrs(ctx, slog.LevelInfo, "Input", logger.Component("io"), logger.Input(data))
	out, err := p.next.Process(ctx, data)
	if err != nil {
		return out, err
	}
	p.logger.LogAttrs(ctx, slog.LevelInfo, "Output", logger.Component("io"), logger.Output(out))
	return out, nil
}

type errorLoggingProcessor struct {
	next   Processor
	logger *slog.Logger
}

// NewErrorLogging logs failures of next and returns the error unchanged.
func NewErrorLogging(next Processor, log *slog.Logger) Processor {
	return &errorLoggingProcessor{next: next, logger: orDefault(log)}
}

func (p *errorLoggingProcessor) Process(ctx context.Context, data int) (int, error) {
	out, err := p.next.Process(ctx, data)
	if err != nil {
		p.logger.LogAttrs(ctx, slog.LevelError, "Processing failed",
			logger.Component("errors"),
			logger.Input(data),
			logger.Error(err),
		)
	}
	return out, err
}

// Timing returns NewTiming as a chain middleware.
func Timing(log *slog.Logger) chain.Middleware[Processor] {
	return func(next Processor) Processor { return NewTiming(next, log) }
}

// IOLogging returns NewIOLogging as a chain middleware.
func IOLogging(log *slog.Logger) chain.Middleware[Processor] {
	return func(next Processor) Processor { return NewIOLogging(next, log) }
}

// ErrorLogging returns NewErrorLogging as a chain middleware.
func ErrorLogging(log *slog.Logger) chain.Middleware[Processor] {
	return func(next Processor) Processor { return NewErrorLogging(next, log) }
}

func orDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
