package combx

import "testing"

func TestDelayedUnboundFails(t *testing.T) {
	d := NewDelayed()
	_, err := Parse(d, "anything")
	if err == nil {
		t.Fatal("expected an error from an unbound Delayed")
	}
	if perr, ok := err.(*Error); !ok || perr.Kind != UnboundReferenceError {
		t.Errorf("err = %v, want UnboundReferenceError", err)
	}
}

func TestDelayedDoubleBindPanics(t *testing.T) {
	d := NewDelayed()
	d.Bind(Literal("a"))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second Bind")
		}
	}()
	d.Bind(Literal("b"))
}

// balanced matches zero or more nested parens, recursively:
// "(" balanced? ")" | "".
func TestDelayedRecursiveGrammar(t *testing.T) {
	balanced := NewDelayed()
	balanced.Bind(Or(
		And(Literal("("), Optional(balanced), Literal(")")),
		Empty(),
	))

	ok := func(text string) bool {
		results, err := Parse(balanced, text)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", text, err)
		}
		for _, r := range results {
			_ = r
		}
		return len(results) > 0
	}

	if !ok("") {
		t.Error("expected empty string to match")
	}
	if !ok("()") {
		t.Error("expected () to match")
	}
	if !ok("(())") {
		t.Error("expected (()) to match")
	}
}
