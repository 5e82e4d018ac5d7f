// wrap.go — field and context operations over arbitrary errors.
//
// Purpose
//   - Apply the fluent builders to ANY error value, not just ours.
//   - Pass success through: every helper here maps nil to nil, so they can
//     sit directly on a return path without an err != nil guard.
//   - Preserve perfect interop with the Go standard library: results keep
//     the original error reachable via Unwrap for errors.Is/As.
//
// Background
//   - Go’s error traversal hinges on Unwrap forms: Unwrap() error and, since
//     Go 1.20, Unwrap() []error. errors.Is/As traverse both, so wrapping an
//     error here never hides it from sentinel or type checks.
package anyhow

// Context wraps err with an additional outermost message. nil → nil.
// An existing Error is augmented immutably; any other error first becomes
// the chain root of a fresh value.
func Context(err error, msg string) Error {
	if err == nil {
		return nil
	}
	return From(err).Context(msg)
}

// WithContext is Context with a lazily computed message. f runs exactly
// once, and only when err is non-nil.
func WithContext(err error, f func() string) Error {
	if err == nil {
		return nil
	}
	return From(err).WithContext(f)
}

// WithField display-renders val and attaches (key, text) to err. nil → nil.
func WithField(err error, key string, val any) Error {
	if err == nil {
		return nil
	}
	return From(err).WithField(key, val)
}

// WithFieldDebug is WithField with structural (%#v) rendering.
func WithFieldDebug(err error, key string, val any) Error {
	if err == nil {
		return nil
	}
	return From(err).WithFieldDebug(key, val)
}
