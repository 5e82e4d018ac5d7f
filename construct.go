// construct.go — concrete error value & constructors for anyhow-tracing.
//
// Scope (tiny core):
//   - One concrete value type (fieldErr) implementing the Error interface
//     with NON-MUTATING fluent methods.
//   - One internal chain-layer type (contextErr) for context wrapping.
//   - Constructors: Msg (fresh message), From (adopt an arbitrary cause).
//
// Interop:
//   - errors.Is/As work via Unwrap chains; fieldErr unwraps to its chain head.
//   - Fresh messages are pkg/errors leaves, so the construction site's stack
//     rides along for %+v without any capture machinery here.
//
// Notes:
//   - Copy-on-write everywhere: each fluent method returns a fresh value.
//   - Fields use the internal []Field representation from field.go.
//   - Chain layers stringify as their own message only; the outermost
//     message is the error's display message. Foreign causes keep whatever
//     Error() text they came with.
package anyhow

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// contextErr is one added layer of the cause chain.
type contextErr struct {
	msg   string
	cause error // never nil
}

func (c *contextErr) Error() string { return c.msg }
func (c *contextErr) Unwrap() error { return c.cause }

// fieldErr is the concrete Error value: an owned cause chain plus ordered,
// pre-rendered diagnostic fields.
type fieldErr struct {
	head   error // outermost chain element; never nil
	fields fields
}

// newMsgErr builds the canonical fresh value: a single-element chain whose
// leaf carries the message and a stack from this construction site.
func newMsgErr(msg string) *fieldErr {
	return &fieldErr{head: pkgerrors.New(msg), fields: emptyFields}
}

// Error renders the display form: the outermost message, then a bracketed
// key=value suffix in field attach order when any fields exist.
func (e *fieldErr) Error() string {
	if len(e.fields) == 0 {
		return e.head.Error()
	}
	var sb strings.Builder
	sb.WriteString(e.head.Error())
	sb.WriteString(" [")
	for i, f := range e.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Key)
		sb.WriteByte('=')
		sb.WriteString(f.Val)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (e *fieldErr) Unwrap() error { return e.head }

func (e *fieldErr) WithField(key string, val any) Error {
	n := e.clone()
	n.fields = cloneAppend(n.fields, Field{Key: key, Val: modeDisplay.render(val)})
	return n
}

func (e *fieldErr) WithFieldDebug(key string, val any) Error {
	n := e.clone()
	n.fields = cloneAppend(n.fields, Field{Key: key, Val: modeDebug.render(val)})
	return n
}

// Context pushes msg as the new outermost chain layer. Fields stay put.
func (e *fieldErr) Context(msg string) Error {
	n := e.clone()
	n.head = &contextErr{msg: msg, cause: e.head}
	return n
}

// WithContext evaluates f exactly once, here and now, then wraps like
// Context. A nil f degrades to an empty message rather than panicking.
func (e *fieldErr) WithContext(f func() string) Error {
	var msg string
	if f != nil {
		msg = f()
	}
	return e.Context(msg)
}

// Fields returns a copy of the field list (copy-on-read); callers may keep
// or mutate it freely.
func (e *fieldErr) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

func (e *fieldErr) GetField(key string) (string, bool) {
	return firstMatch(e.fields, key)
}

func (e *fieldErr) clone() *fieldErr {
	n := *e
	// the copy must not share a backing array with the source
	if len(e.fields) > 0 {
		copied := make(fields, len(e.fields))
		copy(copied, e.fields)
		n.fields = copied
	} else {
		n.fields = emptyFields
	}
	return &n
}

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

// Msg builds a fresh error value from a verbatim message: empty field list,
// single-element cause chain. Never fails. Msg does not parse msg; it is the
// escape hatch for text that the New directive grammar would misread.
func Msg(msg string) Error {
	return newMsgErr(msg)
}

// From adopts an arbitrary error as the chain root without adding anything.
//   - nil → nil
//   - an existing Error → returned as-is
//   - any other error → wrapped with an empty field list
func From(err error) Error {
	if err == nil {
		return nil
	}
	if fe, ok := err.(Error); ok {
		return fe
	}
	return &fieldErr{head: err, fields: emptyFields}
}

// -----------------------------------------------------------------------------
// Interface conformance guards (keep in the file that defines the types)
// -----------------------------------------------------------------------------
var _ Error = (*fieldErr)(nil)
