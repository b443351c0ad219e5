package document

import (
	"context"
	"time"
)

// In-band results returned instead of document content.
const (
	// AccessDenied is returned by access-control wrappers that reject the caller.
	AccessDenied = "ACCESS DENIED"
	// Unavailable is returned by a Lazy holder whose loader failed.
	Unavailable = "DOCUMENT UNAVAILABLE"
)

// Reader is the read capability every chain link implements.
type Reader interface {
	Read(ctx context.Context) string
}

// Func adapts an ordinary function to Reader.
type Func func(ctx context.Context) string

func (f Func) Read(ctx context.Context) string { return f(ctx) }

// Document is a loaded resource.
type Document struct {
	Name     string
	Content  string
	LoadedAt time.Time
}

// IsSentinel reports whether s is one of the in-band failure values rather
// than document content.
func IsSentinel(s string) bool {
	return s == AccessDenied || s == Unavailable
}
