// field.go — ordered, pre-rendered diagnostic fields for anyhow-tracing.
//
// Design:
//   • Internal representation: append-only []Field (deterministic order).
//   • Values are rendered to text at attach time (display or debug form);
//     a stored field never changes when the source value later does.
//   • Builders are non-mutating: append returns a NEW slice (no aliasing).
//
// Rationale:
//   • Insertion order is semantically meaningful: Fields() lists fields
//     left-to-right in attach order and GetField is first-match-wins.
//     Duplicate keys are legal, so a map cannot be the representation.
//   • Slice append may re-use capacity; we always allocate a fresh slice when
//     “mutating” to ensure copy-on-write semantics for safety.
package anyhow

import "fmt"

// Field is a single named diagnostic attached to an error. Val holds the
// textual form chosen at attach time; duplicates of a Key are allowed and
// all of them are preserved.
type Field struct {
	Key string
	Val string
}

// fields is the internal immutable field list.
// Treat it as append-only; never modify elements in place once published.
type fields []Field

// emptyFields is a canonical empty list.
var emptyFields = make(fields, 0)

// renderMode selects how a field value is converted to its stored text.
type renderMode uint8

const (
	// modeDisplay renders via %v: the value's human-readable form.
	// Strings are stored verbatim, byte for byte.
	modeDisplay renderMode = iota
	// modeDebug renders via %#v: the structural form. Strings come out
	// quoted, slices and maps show their contents.
	modeDebug
)

// render converts v to text per the mode. It never fails; whatever fmt
// produces is stored verbatim.
func (m renderMode) render(v any) string {
	if m == modeDebug {
		return fmt.Sprintf("%#v", v)
	}
	return fmt.Sprintf("%v", v)
}

// cloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array to avoid aliasing via append.
func cloneAppend(dst fields, add ...Field) fields {
	n := len(dst)
	m := len(add)
	if m == 0 {
		if n == 0 {
			return emptyFields
		}
		// Deep copy so callers that retain references stay isolated.
		out := make(fields, n)
		copy(out, dst)
		return out
	}
	out := make(fields, n+m)
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// firstMatch scans fs in order and returns the value of the first field
// named key.
func firstMatch(fs fields, key string) (string, bool) {
	for _, f := range fs {
		if f.Key == key {
			return f.Val, true
		}
	}
	return "", false
}
