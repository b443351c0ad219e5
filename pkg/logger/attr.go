package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the chain link name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Recipient records a notification recipient under the key "recipient".
func Recipient(r string) slog.Attr {
	return slog.String("recipient", r)
}

// Message records a notification body under the key "message".
func Message(m string) slog.Attr {
	return slog.String("message", m)
}

// CallID records the chain invocation identifier under the key "call_id".
// Empty ids produce an empty Attr.
func CallID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("call_id", id)
}

// Attempt records the 1-based attempt number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// MaxAttempts records the configured attempt limit under the key "max_attempts".
func MaxAttempts(n int) slog.Attr {
	return slog.Int("max_attempts", n)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Outcome records the in-band result of a capability call under the key "ok".
func Outcome(ok bool) slog.Attr {
	return slog.Bool("ok", ok)
}

// Role records a role name under the key "role".
// Empty roles produce an empty Attr.
func Role(role string) slog.Attr {
	if role == "" {
		return slog.Attr{}
	}
	return slog.String("role", role)
}

// Document records a document name under the key "document".
func Document(name string) slog.Attr {
	return slog.String("document", name)
}

// Amount records a monetary amount in major units under the key "amount".
func Amount(v float64) slog.Attr {
	return slog.Float64("amount", v)
}

// Input records the value passed into a chain link under the key "input".
func Input(v any) slog.Attr {
	return slog.Any("input", v)
}

// Output records the value a chain link returned under the key "output".
func Output(v any) slog.Attr {
	return slog.Any("output", v)
}
