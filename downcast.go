// downcast.go — typed access to the cause chain.
//
// Scope:
//   • Zero-policy helpers answering "is this concrete cause in there, and
//     may I have it".
//   • Interop-first: errors.As drives the search, so traversal covers both
//     Unwrap() error and Unwrap() []error shapes, and foreign wrappers
//     around our values are looked through for free.
//
// Notes:
//   • Go extraction does not consume: the input error stays fully usable
//     (fields and chain intact) whether or not the downcast hits.
//   • A pointer-typed T covers by-reference and by-mutation access in one:
//     mutating the returned target mutates the cause in place.
package anyhow

import "errors"

// Downcast returns the outermost cause of concrete type T, searching the
// wrap graph in errors.As order. The miss branch is a normal negative
// result, not a failure.
//
//	if pe, ok := anyhow.Downcast[*fs.PathError](err); ok {
//		return pe.Path
//	}
func Downcast[T error](err error) (T, bool) {
	var target T
	if err == nil {
		return target, false
	}
	ok := errors.As(err, &target)
	return target, ok
}

// IsType reports whether a cause of concrete type T is present, without
// extracting it.
func IsType[T error](err error) bool {
	if err == nil {
		return false
	}
	var target T
	return errors.As(err, &target)
}
