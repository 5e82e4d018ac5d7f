// format.go — fmt.Formatter implementations for anyhow-tracing.
//
// Behavior:
//
//   %s, %v   → concise display string (Error()).
//   %q       → quoted display string.
//   %+v      → verbose diagnostic dump:
//                outermost message
//
//                Caused by:
//                    0: next layer
//                    1: root cause
//
//                Fields:
//                	key1: "value1",
//                	key2: "[]int{10, 20}"
//
//                Stack backtrace:
//                	(pkg/errors frame rendering)
//
// Layout notes:
//   - "Caused by:" appears only when the chain has more than one element,
//     and drops the index numbers when there is exactly one cause.
//   - "Fields:" lines are tab-indented, comma-terminated except the last;
//     the stored text is quoted so whitespace-only values stay visible.
//   - The stack section renders the innermost stack-carrying cause via
//     pkg/errors' own %+v frame formatting. Values built by Msg/New always
//     have one; values adopted via From usually do not.
package anyhow

import (
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
)

// stackTracer is the capability pkg/errors attaches to its leaves.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func (e *fieldErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

// formatConcise writes the one-line display form (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the multi-section diagnostic dump.
func formatVerbose(w io.Writer, e *fieldErr) {
	chain := e.Chain()

	_, _ = io.WriteString(w, chain[0].Error())

	if len(chain) > 1 {
		_, _ = io.WriteString(w, "\n\nCaused by:")
		if len(chain) == 2 {
			_, _ = fmt.Fprintf(w, "\n    %s", chain[1].Error())
		} else {
			for i, c := range chain[1:] {
				_, _ = fmt.Fprintf(w, "\n    %d: %s", i, c.Error())
			}
		}
	}

	if len(e.fields) > 0 {
		_, _ = io.WriteString(w, "\n\nFields:")
		last := len(e.fields) - 1
		for i, f := range e.fields {
			_, _ = fmt.Fprintf(w, "\n\t%s: %q", f.Key, f.Val)
			if i < last {
				_, _ = io.WriteString(w, ",")
			}
		}
	}

	if st, ok := deepestStack(chain); ok {
		_, _ = io.WriteString(w, "\n\nStack backtrace:")
		// StackTrace formats itself: one "\nfunc\n\tfile:line" per frame.
		_, _ = fmt.Fprintf(w, "%+v", st)
	}
}

// deepestStack returns the stack of the innermost chain element carrying
// one: the closest capture to where the error actually began.
func deepestStack(chain []error) (pkgerrors.StackTrace, bool) {
	for i := len(chain) - 1; i >= 0; i-- {
		if st, ok := chain[i].(stackTracer); ok {
			return st.StackTrace(), true
		}
	}
	return nil, false
}
