package combx

import "testing"

func TestLetAndRefMutualRecursion(t *testing.T) {
	// balanced := "(" balanced ")" | ""
	m := Let(map[string]Matcher{
		"balanced": Or(And(Literal("("), Ref("balanced"), Literal(")")), Empty()),
	}, Ref("balanced"))

	for _, text := range []string{"", "()", "(())", "((()))"} {
		results, err := Parse(m, text)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", text, err)
		}
		if len(results) == 0 {
			t.Errorf("Parse(%q) matched nothing, want at least one attempt", text)
		}
	}
}

func TestRefRequiresManagedStream(t *testing.T) {
	bare := NewStream("x")
	seq := Ref("missing").Match(bare)
	defer seq.Close()
	_, _, err := seq.Next()
	if err == nil {
		t.Fatal("expected MissingContextError on a bare stream")
	}
}

func TestRefUnknownNameFails(t *testing.T) {
	m := Let(map[string]Matcher{"a": Literal("a")}, Ref("b"))
	_, err := Parse(m, "a")
	if err == nil {
		t.Fatal("expected UnboundReferenceError for an unknown name")
	}
	if perr, ok := err.(*Error); !ok || perr.Kind != UnboundReferenceError {
		t.Errorf("err = %v, want UnboundReferenceError", err)
	}
}
