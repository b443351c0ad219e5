package chain

import (
	"fmt"
	"slices"
	"strings"
)

// Registry maps wrapper names to middleware factories for one capability type.
// It is not safe for concurrent registration; build it once at startup.
type Registry[T any] struct {
	factories map[string]Middleware[T]
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Middleware[T])}
}

// Register adds or replaces the middleware for name. Names are case-insensitive.
func (r *Registry[T]) Register(name string, mw Middleware[T]) *Registry[T] {
	r.factories[normalize(name)] = mw
	return r
}

// Names returns the registered wrapper names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Middlewares resolves names, outermost first.
func (r *Registry[T]) Middlewares(names []string) ([]Middleware[T], error) {
	mws := make([]Middleware[T], 0, len(names))
	for _, name := range names {
		key := normalize(name)
		if key == "" {
			continue
		}
		mw, ok := r.factories[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWrapper, name)
		}
		mws = append(mws, mw)
	}
	return mws, nil
}

// Build wraps terminal with the named middlewares, outermost first.
func (r *Registry[T]) Build(terminal T, names []string) (T, error) {
	mws, err := r.Middlewares(names)
	if err != nil {
		var zero T
		return zero, err
	}
	return Chain(terminal, mws...), nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
