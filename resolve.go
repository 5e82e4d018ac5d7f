// resolve.go — the construction directive resolver.
//
// New builds an error value from one directive string plus variadic
// arguments. The directive carries zero or more field specs followed by a
// format string; the arguments feed the specs first (one each, left to
// right), then the format string. Values never appear inside the directive.
//
// Field spec forms, one per comma-separated segment:
//
//	user_id          display field named user_id
//	attempt =        display field named attempt
//	attempt = %      display field named attempt (explicit marker)
//	payload = ?      debug field named payload
//	?user_id         debug field named user_id    (first spec only)
//	%user_id         display field named user_id  (first spec only)
//	?                debug field named value      (first spec only)
//	%                display field named value    (first spec only)
//
// The message is the remainder of the directive: everything after a
// semicolon, or, in the all-comma form, the first segment that does not
// parse as a field spec (taken verbatim to the end, embedded separators and
// all). The FINAL segment is always the message even when it looks like a
// spec, so a one-word directive is a plain message. Whatever arguments the
// specs did not consume interpolate into the message with fmt.Sprintf
// semantics, including fmt's %! notation for arity or verb trouble.
//
// Resolution is total: every directive/argument combination yields a value,
// never a panic. A spec with no argument left stores %!(MISSING). Messages
// that happen to open with an identifier followed by a comma or semicolon
// parse as field specs; Msg is the verbatim escape hatch.
package anyhow

import (
	"fmt"
	"strings"
	"unicode"
)

// fallbackFieldName names anonymous positional values (a bare % or ?).
const fallbackFieldName = "value"

// missingArg is stored when a field spec has no argument to consume,
// mirroring fmt's notation for absent operands.
const missingArg = "%!(MISSING)"

// specKind discriminates the two resolved spec shapes.
type specKind uint8

const (
	// specNamed is the name-then-assignment family: the field name was
	// written explicitly and wins verbatim.
	specNamed specKind = iota
	// specPositional is the inference family: bare identifiers and
	// marker-led forms, where the name comes from the identifier itself
	// or falls back to "value".
	specPositional
)

// fieldSpec is one parsed field directive: a resolved name plus render mode.
type fieldSpec struct {
	kind specKind
	name string
	mode renderMode
}

// New resolves a directive and arguments into one Error value.
//
//	err := anyhow.New("value, operation = %, debug_data = ?; User '%s' failed to log in",
//		42, "login", data, "alice")
//
// Plain messages pass straight through: New("connection refused") builds a
// message-only error. See the file comment for the full directive grammar.
func New(directive string, args ...any) Error {
	return resolve(directive, args)
}

// resolve implements the one-pass resolution shared by New, Ensure and Bail.
func resolve(directive string, args []any) Error {
	specs, format := splitDirective(directive)

	msg := fmt.Sprintf(format, args[min(len(specs), len(args)):]...)

	e := newMsgErr(msg)
	if len(specs) > 0 {
		out := make(fields, 0, len(specs))
		for i, sp := range specs {
			val := missingArg
			if i < len(args) {
				val = sp.mode.render(args[i])
			}
			out = append(out, Field{Key: sp.name, Val: val})
		}
		e.fields = out
	}
	return e
}

// splitDirective performs the single left-to-right pass: delimited segments
// that parse as field specs are consumed until the message begins. No
// backtracking; the first non-spec segment (or the final segment, or a
// semicolon) settles everything that follows.
func splitDirective(directive string) ([]fieldSpec, string) {
	var specs []fieldSpec
	rest := directive
	for {
		i := strings.IndexAny(rest, ",;")
		if i < 0 {
			// Final segment: always the message.
			return specs, rest
		}
		sp, ok := parseSpec(strings.TrimSpace(rest[:i]), len(specs) == 0)
		if !ok {
			// Message starts at this segment, verbatim to the end.
			return specs, rest
		}
		specs = append(specs, sp)
		tail := strings.TrimLeft(rest[i+1:], " \t")
		if rest[i] == ';' {
			// Explicit spec-list terminator: the rest is the message.
			return specs, tail
		}
		rest = tail
	}
}

// parseSpec reports whether seg (already trimmed) is a field spec. leading
// marks the first spec position, the only place the marker-led positional
// forms are recognized.
func parseSpec(seg string, leading bool) (fieldSpec, bool) {
	if seg == "" {
		return fieldSpec{}, false
	}
	if seg[0] == '%' || seg[0] == '?' {
		if !leading {
			return fieldSpec{}, false
		}
		mode := modeDisplay
		if seg[0] == '?' {
			mode = modeDebug
		}
		rest := strings.TrimSpace(seg[1:])
		if rest == "" {
			return fieldSpec{kind: specPositional, name: fallbackFieldName, mode: mode}, true
		}
		if isIdent(rest) {
			return fieldSpec{kind: specPositional, name: rest, mode: mode}, true
		}
		return fieldSpec{}, false
	}
	if i := strings.IndexByte(seg, '='); i >= 0 {
		name := strings.TrimSpace(seg[:i])
		if !isIdent(name) {
			return fieldSpec{}, false
		}
		switch strings.TrimSpace(seg[i+1:]) {
		case "", "%":
			return fieldSpec{kind: specNamed, name: name, mode: modeDisplay}, true
		case "?":
			return fieldSpec{kind: specNamed, name: name, mode: modeDebug}, true
		}
		return fieldSpec{}, false
	}
	if isIdent(seg) {
		return fieldSpec{kind: specPositional, name: seg, mode: modeDisplay}, true
	}
	return fieldSpec{}, false
}

// isIdent reports whether s is a Go-style identifier: a letter or underscore
// followed by letters, digits, or underscores. Unicode letters count.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
