// chain.go — cause-chain traversal for anyhow-tracing.
//
// Scope (tiny core):
//   - Chain/RootCause over the linear wrap order of a single value.
//   - Generic DFS over arbitrary error graphs that cooperates with both
//     wrap forms: Unwrap() error and Unwrap() []error (errors.Join).
//   - No policy, no logging — just correct, minimal traversal.
//
// Design notes (Go ≥1.20):
//   - We must NOT use map[error] as a blanket “seen” set: interface values
//     whose dynamic type is not comparable panic as map keys. seenSet keeps
//     a dual guard: map[error] for comparable dynamics, pointer identity for
//     pointer-typed non-comparables. Anything else is treated as acyclic and
//     bounded by the depth cap.
//   - Chain follows single unwraps only: that IS the wrap order of one
//     value. Joined trees are a different shape; use Flatten/Walk for those.
package anyhow

import (
	"errors"
	"reflect"
)

// single/multi unwrap interfaces (stdlib-compatible)
type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// maxChainDepth bounds every traversal against runaway or cyclic graphs.
const maxChainDepth = 1 << 12

// seenSet guards traversal against cycles without panicking on
// non-comparable dynamic types.
type seenSet struct {
	byVal map[error]struct{}
	byPtr map[uintptr]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{
		byVal: make(map[error]struct{}, 8),
		byPtr: make(map[uintptr]struct{}, 8),
	}
}

// add marks err and reports whether it was newly seen.
func (s *seenSet) add(err error) bool {
	if err == nil {
		return false
	}
	if reflect.TypeOf(err).Comparable() {
		if _, dup := s.byVal[err]; dup {
			return false
		}
		s.byVal[err] = struct{}{}
		return true
	}
	if rv := reflect.ValueOf(err); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := s.byPtr[id]; dup {
			return false
		}
		s.byPtr[id] = struct{}{}
		return true
	}
	// Non-comparable, non-pointer: allow; bounded by the depth cap.
	return true
}

// Chain returns the cause chain outermost-first: the head layer, each wrap
// beneath it, the root last. Always at least one element. Fresh slice per
// call, safe for callers to keep.
func (e *fieldErr) Chain() []error {
	out := make([]error, 0, 4)
	cur := e.head
	for cur != nil && len(out) < maxChainDepth {
		out = append(out, cur)
		s, ok := cur.(singleUnwrapper)
		if !ok {
			break
		}
		cur = s.Unwrap()
	}
	return out
}

// RootCause returns the innermost chain element.
func (e *fieldErr) RootCause() error {
	chain := e.Chain()
	return chain[len(chain)-1]
}

// Flatten walks an error graph and returns its leaf errors (nodes with no
// children) in depth-first order, exploring both single- and multi-unwrap
// paths. Nil in, nil out.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	// Fast path: not a wrapper at all → single leaf.
	switch err.(type) {
	case multiUnwrapper, singleUnwrapper:
	default:
		return []error{err}
	}

	out := make([]error, 0, 4)
	seen := newSeenSet()
	seen.add(err)

	var visit func(e error, depth int)
	visit = func(e error, depth int) {
		if depth > maxChainDepth {
			return
		}
		switch u := e.(type) {
		case multiUnwrapper:
			// Containers are never leaves, even when emptied of children.
			for _, c := range u.Unwrap() {
				if c != nil && seen.add(c) {
					visit(c, depth+1)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil {
				if seen.add(c) {
					visit(c, depth+1)
				}
				return
			}
			out = append(out, e)
		default:
			out = append(out, e)
		}
	}
	visit(err, 0)
	return out
}

// Walk traverses an error graph depth-first and calls visit for each
// DISTINCT node in pre-order (visit before expanding children). If visit
// returns false, traversal stops early. Safe on cycles; nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	seen := newSeenSet()
	seen.add(err)
	stopped := false

	var walk func(e error, depth int)
	walk = func(e error, depth int) {
		if stopped || depth > maxChainDepth {
			return
		}
		if !visit(e) {
			stopped = true
			return
		}
		switch u := e.(type) {
		case multiUnwrapper:
			for _, c := range u.Unwrap() {
				if stopped {
					return
				}
				if c != nil && seen.add(c) {
					walk(c, depth+1)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil && seen.add(c) {
				walk(c, depth+1)
			}
		}
	}
	walk(err, 0)
}

// Has reports whether target appears anywhere in err's unwrap graph.
// It wraps errors.Is with nil-safety.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
