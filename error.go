// error.go — the Error contract for anyhow-tracing.
//
// Design tenets:
//   - Interop-first: play nicely with errors.Is/As and errors.Join.
//   - Minimal surface: no logging/HTTP/JSON in core (the tracing subpackage
//     adapts fields for zap; the core only produces values).
//   - Non-mutating ergonomics: fluent builders return a new value.
//   - Fields are text: values render once, at attach time, and never change
//     when the source value does.
package anyhow

// Error is the fluent, interop-friendly contract for field-carrying errors.
//
// All fluent methods MUST be non-mutating: they return a new Error value
// (copy-on-write) and MUST NOT alter the receiver state. This guarantees
// thread-safety for shared error values and keeps rendered output
// reproducible for logs/tests without external synchronization.
//
// Unwrap semantics: Unwrap() error exposes the outermost chain element, so
// stdlib traversal (errors.Is/As) observes the full causal chain.
type Error interface {
	// error provides the display string: the outermost message, then, when
	// fields exist, a bracketed key=value suffix in field attach order.
	error

	// WithField renders val via its display form (%v) and appends the
	// (key, text) pair. Duplicate keys are allowed and kept. Returns a
	// NEW Error.
	//
	// Example:
	//   err = err.WithField("user_id", 42)
	WithField(key string, val any) Error

	// WithFieldDebug renders val via its structural form (%#v): strings
	// come out quoted, containers show their contents. Returns a NEW Error.
	//
	// Example:
	//   err = err.WithFieldDebug("payload", []string{"a", "b"})
	WithFieldDebug(key string, val any) Error

	// Context pushes msg as the new outermost layer of the cause chain.
	// Fields are untouched; the previous chain stays fully intact beneath.
	// Returns a NEW Error.
	Context(msg string) Error

	// WithContext is Context with the message computed lazily. f runs
	// exactly once, during this call, never deferred past it. Returns a
	// NEW Error.
	WithContext(f func() string) Error

	// Fields returns a COPY of the field list in attach order, duplicates
	// included. Callers may mutate the returned slice freely.
	Fields() []Field

	// GetField returns the value of the FIRST field named key. Linear
	// scan over the attach-ordered list.
	GetField(key string) (string, bool)

	// Chain returns the cause chain outermost-first, one entry per wrap
	// layer, root last. The slice is rebuilt fresh on every call.
	Chain() []error

	// RootCause returns the innermost element of the chain.
	RootCause() error

	// Unwrap returns the outermost chain element (never the receiver) to
	// enable stdlib traversal via errors.Is/As.
	Unwrap() error
}
