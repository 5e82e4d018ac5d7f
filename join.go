// join.go — formatting-aware multi-error join.
//
// Stdlib shape, richer rendering:
//   • Unwrap() []error and a newline-joined Error(), matching errors.Join,
//     so errors.Is/As traverse the tree exactly as they would stdlib joins.
//   • "%+v" renders each child with its own "%+v" recursively; field
//     listings and chain dumps survive aggregation instead of collapsing
//     to one-line strings.
package anyhow

import (
	"fmt"
	"io"
	"strings"
)

// multi mirrors errors.Join for Error()/Unwrap() but implements
// fmt.Formatter so "%+v" recurses into children.
type multi struct {
	errs []error // two or more, non-nil
}

// Error newline-joins child Error() strings, identical to errors.Join.
func (m *multi) Error() string {
	var sb strings.Builder
	for i, e := range m.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap exposes the children to stdlib traversal.
func (m *multi) Unwrap() []error { return m.errs }

// Format renders %v/%s like Error(), %q quoted, and %+v recursively.
func (m *multi) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, e := range m.errs {
				if i > 0 {
					_, _ = io.WriteString(s, "\n")
				}
				// Children may implement fmt.Formatter themselves.
				_, _ = fmt.Fprintf(s, "%+v", e)
			}
			return
		}
		_, _ = io.WriteString(s, m.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", m.Error())
	default:
		_, _ = io.WriteString(s, m.Error())
	}
}

// Join aggregates errs, dropping nils.
//   • all nil → nil
//   • one non-nil → that error (identity preserved)
//   • 2+ non-nil → a container with Unwrap() []error and recursive %+v
func Join(errs ...error) error {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	default:
		return &multi{errs: nz}
	}
}

// Append extends head with more errors, keeping Join semantics while
// skipping allocation on the common nil paths.
func Append(head error, more ...error) error {
	if head == nil {
		return Join(more...)
	}
	nonNil := false
	for _, e := range more {
		if e != nil {
			nonNil = true
			break
		}
	}
	if !nonNil {
		return head
	}
	combined := make([]error, 0, 1+len(more))
	combined = append(combined, head)
	combined = append(combined, more...)
	return Join(combined...)
}
