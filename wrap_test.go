// wrap_test.go — package-level context/field operations on arbitrary errors.
package anyhow

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestWrapHelpers_NilPassThrough(t *testing.T) {
	t.Parallel()

	if Context(nil, "m") != nil {
		t.Fatalf("Context(nil) must be nil")
	}
	if WithContext(nil, func() string { return "m" }) != nil {
		t.Fatalf("WithContext(nil) must be nil")
	}
	if WithField(nil, "k", 1) != nil {
		t.Fatalf("WithField(nil) must be nil")
	}
	if WithFieldDebug(nil, "k", 1) != nil {
		t.Fatalf("WithFieldDebug(nil) must be nil")
	}
}

func TestWrapHelpers_ForeignErrorAdopted(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("db down")

	e := Context(sentinel, "query users")
	if got, want := e.Error(), "query users"; got != want {
		t.Fatalf("Error(): want=%q got=%q", want, got)
	}
	if !errors.Is(e, sentinel) {
		t.Fatalf("adopted cause must stay reachable for errors.Is")
	}
	if e.RootCause() != sentinel {
		t.Fatalf("root cause must be the original error")
	}

	e2 := WithField(sentinel, "table", "users")
	if got, want := e2.Error(), "db down [table=users]"; got != want {
		t.Fatalf("Error(): want=%q got=%q", want, got)
	}
}

func TestWrapHelpers_AugmentExistingValue(t *testing.T) {
	t.Parallel()

	base := New("op; base failed", "read")
	e := WithFieldDebug(base, "payload", []byte{1})

	fs := e.Fields()
	if len(fs) != 2 || fs[0].Key != "op" || fs[1].Key != "payload" {
		t.Fatalf("augmented fields wrong: %v", fs)
	}
	// Base untouched.
	if len(base.Fields()) != 1 {
		t.Fatalf("base mutated: %v", base.Fields())
	}
}

func TestWithContext_PackageLevel_LazyOnlyOnFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	f := func() string { calls++; return "computed" }

	_ = WithContext(nil, f)
	if calls != 0 {
		t.Fatalf("closure must not run for nil error")
	}

	e := WithContext(errors.New("x"), f)
	if calls != 1 {
		t.Fatalf("closure must run exactly once; ran %d", calls)
	}
	if e.Error() != "computed" {
		t.Fatalf("Error(): want=%q got=%q", "computed", e.Error())
	}
}

func TestWrapHelpers_ComposeOnReturnPath(t *testing.T) {
	t.Parallel()

	open := func(path string) error {
		return WithField(&fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}, "path", path)
	}

	err := open("/etc/missing")
	if err == nil {
		t.Fatalf("want error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("sentinel lost through wrapping")
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) || pe.Path != "/etc/missing" {
		t.Fatalf("concrete cause lost through wrapping: %v", pe)
	}
}

func TestWrapHelpers_InteropWithFmtErrorf(t *testing.T) {
	t.Parallel()

	inner := New("k; inner", 1)
	outer := fmt.Errorf("outer: %w", inner)

	// Our value stays findable under a stdlib wrapper, fields intact.
	var fe Error
	if !errors.As(outer, &fe) {
		t.Fatalf("Error lost under fmt.Errorf wrapper")
	}
	if v, ok := fe.GetField("k"); !ok || v != "1" {
		t.Fatalf("fields lost under wrapper: %q %v", v, ok)
	}
}
