// chain_test.go — chain enumeration and graph traversal.
package anyhow

import (
	"errors"
	"fmt"
	"testing"
)

func TestChain_OutermostFirst(t *testing.T) {
	t.Parallel()

	e := Msg("base error").
		Context("eager context").
		WithContext(func() string { return "lazy context" })

	chain := e.Chain()
	want := []string{"lazy context", "eager context", "base error"}
	if len(chain) != len(want) {
		t.Fatalf("chain length: want=%d got=%d", len(want), len(chain))
	}
	for i, w := range want {
		if got := chain[i].Error(); got != w {
			t.Fatalf("chain[%d]: want=%q got=%q", i, w, got)
		}
	}
}

func TestChain_FreshSlicePerCall(t *testing.T) {
	t.Parallel()

	e := Msg("m").Context("c")
	a := e.Chain()
	b := e.Chain()
	if &a[0] == &b[0] {
		t.Fatalf("Chain must rebuild a fresh slice per call")
	}
	a[0] = nil
	if b2 := e.Chain(); b2[0] == nil {
		t.Fatalf("caller mutation leaked into later traversals")
	}
}

func TestChain_ForeignChainsAreFollowed(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	mid := fmt.Errorf("mid: %w", root)
	e := From(mid).Context("top")

	chain := e.Chain()
	if len(chain) != 3 {
		t.Fatalf("chain length: want=3 got=%d (%v)", len(chain), chain)
	}
	if chain[2] != root {
		t.Fatalf("innermost must be the foreign root")
	}
	if e.RootCause() != root {
		t.Fatalf("RootCause: want foreign root, got %v", e.RootCause())
	}
}

func TestRootCause_SingleElementChain(t *testing.T) {
	t.Parallel()

	e := Msg("only")
	if e.RootCause().Error() != "only" {
		t.Fatalf("root of a fresh value is its own leaf")
	}
}

func TestFlatten_LeavesOnly(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		if Flatten(nil) != nil {
			t.Fatalf("Flatten(nil) must be nil")
		}
	})

	t.Run("plain error is its own leaf", func(t *testing.T) {
		e := errors.New("leaf")
		got := Flatten(e)
		if len(got) != 1 || got[0] != e {
			t.Fatalf("want [leaf], got %v", got)
		}
	})

	t.Run("single-wrapped yields the root leaf", func(t *testing.T) {
		root := errors.New("root")
		got := Flatten(Context(root, "outer"))
		if len(got) != 1 || got[0] != root {
			t.Fatalf("want [root], got %v", got)
		}
	})

	t.Run("joined tree yields all leaves in DFS order", func(t *testing.T) {
		a := errors.New("a")
		b := errors.New("b")
		c := errors.New("c")
		err := Join(Context(a, "wrap-a"), Join(b, c))

		got := Flatten(err)
		if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
			t.Fatalf("want [a b c], got %v", got)
		}
	})
}

func TestFlatten_SharedNodeVisitedOnce(t *testing.T) {
	t.Parallel()

	shared := errors.New("shared")
	err := Join(Context(shared, "x"), Context(shared, "y"))

	got := Flatten(err)
	if len(got) != 1 || got[0] != shared {
		t.Fatalf("shared leaf must be reported once; got %v", got)
	}
}

func TestWalk_PreOrderAndEarlyStop(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	e := From(root).Context("mid").Context("top")

	t.Run("pre-order covers every node", func(t *testing.T) {
		var msgs []string
		Walk(e, func(err error) bool {
			msgs = append(msgs, err.Error())
			return true
		})
		// The value itself renders first, then each chain layer.
		want := []string{"top", "top", "mid", "root"}
		if len(msgs) != len(want) {
			t.Fatalf("visit count: want=%d got=%d (%v)", len(want), len(msgs), msgs)
		}
		for i, w := range want {
			if msgs[i] != w {
				t.Fatalf("visit[%d]: want=%q got=%q", i, w, msgs[i])
			}
		}
	})

	t.Run("false stops traversal", func(t *testing.T) {
		count := 0
		Walk(e, func(error) bool {
			count++
			return count < 2
		})
		if count != 2 {
			t.Fatalf("want exactly 2 visits, got %d", count)
		}
	})

	t.Run("nil inputs are no-ops", func(t *testing.T) {
		Walk(nil, func(error) bool { t.Fatal("must not visit"); return true })
		Walk(errors.New("x"), nil)
	})
}

func TestWalk_JoinedTreeLeftToRight(t *testing.T) {
	t.Parallel()

	a := errors.New("a")
	b := errors.New("b")
	err := Join(a, b)

	var seen []string
	Walk(err, func(e error) bool {
		seen = append(seen, e.Error())
		return true
	})
	if len(seen) != 3 || seen[1] != "a" || seen[2] != "b" {
		t.Fatalf("want container then [a b], got %v", seen)
	}
}

func TestChain_DepthCapStopsRunawayGraphs(t *testing.T) {
	t.Parallel()

	// A self-referential wrapper would loop forever without the cap.
	var loop selfWrapped
	loop.inner = &loop

	e := From(&loop)
	chain := e.Chain()
	if len(chain) != maxChainDepth {
		t.Fatalf("runaway chain must stop at the cap; got %d", len(chain))
	}
}

type selfWrapped struct{ inner error }

func (s *selfWrapped) Error() string { return "loop" }
func (s *selfWrapped) Unwrap() error { return s.inner }
