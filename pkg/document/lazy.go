package document

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/wrapkit/pkg/logger"
)

// Lazy is a terminal Reader that loads its document on the first Read and
// keeps it for its whole lifetime. Nothing is loaded at construction.
//
// Concurrent first reads load once. A failed load leaves the holder
// uninitialized, so the next Read tries again; the loader error is logged
// since the caller only sees Unavailable.
type Lazy struct {
	name   string
	loader Loader
	logger *slog.Logger

	mu  sync.Mutex
	doc atomic.Pointer[Document]
}

// NewLazy creates an uninitialized holder for the named document.
// WithLogger sets where load failures are reported.
func NewLazy(name string, loader Loader, opts ...Option) *Lazy {
	o := newOptions(opts)
	return &Lazy{name: name, loader: loader, logger: o.logger}
}

// Read returns the document content, loading it first if needed.
// It returns Unavailable when loading fails.
func (l *Lazy) Read(ctx context.Context) string {
	if d := l.doc.Load(); d != nil {
		return d.Content
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if d := l.doc.Load(); d != nil {
		return d.Content
	}

	d, err := l.loader.Load(ctx, l.name)
	if err == nil && d == nil {
		err = ErrLoadFailed
	}
	if err != nil {
		l.logger.LogAttrs(ctx, slog.LevelError, "Document load failed",
			logger.Component("lazy"),
			logger.Document(l.name),
			logger.Error(err),
		)
		return Unavailable
	}
	l.doc.Store(d)
	return d.Content
}

// Name returns the document name the holder was created with.
func (l *Lazy) Name() string { return l.name }

// Initialized reports whether the document has been loaded.
func (l *Lazy) Initialized() bool {
	return l.doc.Load() != nil
}
