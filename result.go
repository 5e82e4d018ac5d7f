// result.go — consumption adapters for the two conventional Go return shapes.
//
// Res views a (value, error) pair, Opt a (value, ok) pair. Both expose the
// same four operations as the Error interface; the success/present branch
// passes the value through untouched with a nil error, the failure/absent
// branch builds the error value and applies the operation.
//
// Res composes directly with a call when the arities line up:
//
//	data, err := anyhow.Res(os.ReadFile(path)).WithField("path", path)
//
// Opt wants the usual comma-ok step first (Go only spreads multi-values in
// direct call position for function results):
//
//	v, ok := cache[key]
//	val, err := anyhow.Opt(v, ok).Context("cache miss")
package anyhow

// absentMsg is the message used when a field is attached to an absent
// option, which otherwise has no text of its own.
const absentMsg = "no value"

// Result is a chainable view over a (value, error) pair.
type Result[T any] struct {
	val T
	err error
}

// Res adapts a (value, error) pair, typically a direct function call.
func Res[T any](val T, err error) Result[T] {
	return Result[T]{val: val, err: err}
}

// Context attaches an outer message on failure; success passes through.
func (r Result[T]) Context(msg string) (T, error) {
	if r.err == nil {
		return r.val, nil
	}
	return r.val, From(r.err).Context(msg)
}

// WithContext is Context with a lazy message; f runs only on failure.
func (r Result[T]) WithContext(f func() string) (T, error) {
	if r.err == nil {
		return r.val, nil
	}
	return r.val, From(r.err).WithContext(f)
}

// WithField attaches a display field on failure; success passes through.
func (r Result[T]) WithField(key string, val any) (T, error) {
	if r.err == nil {
		return r.val, nil
	}
	return r.val, From(r.err).WithField(key, val)
}

// WithFieldDebug is WithField with structural (%#v) rendering.
func (r Result[T]) WithFieldDebug(key string, val any) (T, error) {
	if r.err == nil {
		return r.val, nil
	}
	return r.val, From(r.err).WithFieldDebug(key, val)
}

// Option is a chainable view over a (value, ok) pair.
type Option[T any] struct {
	val T
	ok  bool
}

// Opt adapts a comma-ok pair.
func Opt[T any](val T, ok bool) Option[T] {
	return Option[T]{val: val, ok: ok}
}

// Context returns the value when present; otherwise an error built from msg.
func (o Option[T]) Context(msg string) (T, error) {
	if o.ok {
		return o.val, nil
	}
	return o.val, Msg(msg)
}

// WithContext is Context with a lazy message; f runs only on absence.
func (o Option[T]) WithContext(f func() string) (T, error) {
	if o.ok {
		return o.val, nil
	}
	var msg string
	if f != nil {
		msg = f()
	}
	return o.val, Msg(msg)
}

// WithField builds a "no value" error carrying the field when absent.
func (o Option[T]) WithField(key string, val any) (T, error) {
	if o.ok {
		return o.val, nil
	}
	return o.val, Msg(absentMsg).WithField(key, val)
}

// WithFieldDebug is WithField with structural (%#v) rendering.
func (o Option[T]) WithFieldDebug(key string, val any) (T, error) {
	if o.ok {
		return o.val, nil
	}
	return o.val, Msg(absentMsg).WithFieldDebug(key, val)
}
