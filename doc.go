// doc.go — package documentation for anyhow-tracing
//
// Package anyhow provides error values that carry ordered, pre-rendered
// diagnostic fields alongside a conventional cause chain, plus a compact
// directive syntax for attaching those fields while building or propagating
// an error. It is designed to be:
//   - Ergonomic at call sites (one string describes the fields, args carry
//     the values)
//   - Interoperable with the stdlib (errors.Is/As/Join, fmt.Formatter)
//   - Policy-free (no logging/HTTP/retry rules in core; the tracing
//     subpackage adapts fields for zap)
//
// # Building Errors
//
// New takes a directive string and arguments. Comma-separated field specs
// come first and consume one argument each; the rest of the directive is the
// message, formatted with whatever arguments remain:
//
//	err := anyhow.New("value, operation = %, debug_data = ?; User '%s' failed to log in",
//		42, "login", []string{"a", "b"}, "alice")
//
//	err.Error()
//	// User 'alice' failed to log in [value=42, operation=login, debug_data=[]string{"a", "b"}]
//
// Spec forms: a bare identifier (display field named after itself), name =
// or name = % (display field, explicit name), name = ? (debug field), and a
// single leading %x / ?x / % / ? positional. A semicolon may close the spec
// list; otherwise the message begins at the first segment that is not a
// spec, and the final segment is always the message. Msg builds from
// verbatim text when the directive grammar would get in the way; From
// adopts an existing error unchanged.
//
// # Fields
//
// Fields are (name, text) pairs: the value is rendered once, at attach time,
// either via %v (display: WithField and unmarked specs) or %#v (debug:
// WithFieldDebug and ?-marked specs). Order is attach order, duplicates are
// kept, GetField returns the first match. Later changes to the source value
// never affect a stored field.
//
// # Context and the Chain
//
// Context pushes a new outermost message layer; WithContext computes it
// lazily (exactly once). Neither touches fields: wrapping only extends the
// chain, and nothing in the package ever drops a cause. Chain lists the
// layers outermost-first; RootCause returns the innermost. Downcast and
// IsType pull concrete cause types back out, via errors.As order, with the
// input untouched either way.
//
// # Formatting
//
// anyhow errors implement fmt.Formatter:
//   - %v, %s → concise single line: message plus [key=value, ...] suffix
//   - %+v    → verbose: the chain under "Caused by:", the field listing
//     under "Fields:", and a "Stack backtrace:" section when the root was
//     built here (Msg/New leaves carry pkg/errors stacks)
//   - %q     → quoted concise form
//
// Join aggregates multiple errors with %+v-aware recursion; Flatten and
// Walk traverse arbitrary single/multi unwrap graphs.
//
// # Consuming Results and Options
//
// The package-level Context/WithContext/WithField/WithFieldDebug helpers
// apply any of the four operations to an arbitrary error and map nil to
// nil, so they sit directly on return paths. Res and Opt adapt the two
// conventional Go pair shapes when the chainable form reads better:
//
//	data, err := anyhow.Res(os.ReadFile(path)).Context("read config")
//
//	v, ok := cache[key]
//	val, err := anyhow.Opt(v, ok).WithField("key", key)
//
// Ensure and Bail wrap the resolver for guard clauses: Ensure returns nil
// unless the condition fails; Bail always builds.
//
// # Performance Notes
//
//   - Copy-on-write: all fluent methods return new values; a shared base
//     error can be branched from concurrently without synchronization.
//   - Field appends allocate exactly one fresh slice per operation.
//   - Rendering is eager for field values (that is the contract) and lazy
//     for %+v output; Error() costs one pass over the fields.
//   - GetField is a linear scan; field counts are diagnostic-scale.
//
// # Interop
//
//   - errors.Is/As/Join work as expected; Unwrap exposes the chain head.
//   - Values built from foreign errors keep them reachable: From, Context
//     and the field helpers never hide the original from sentinel checks.
//   - fmt's %w composes: an anyhow error wrapped by fmt.Errorf stays
//     findable with errors.As, fields intact.
package anyhow
