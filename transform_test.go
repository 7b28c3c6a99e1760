package combx

import (
	"fmt"
	"reflect"
	"testing"
)

func TestMapRewritesResult(t *testing.T) {
	m := Map(Literal("a"), func(r Result) Result { return Result{"mapped"} })
	runMatchTestData(t, matchTestData{"a", true, []Result{{"mapped"}}, m})
}

func TestDropDiscardsResult(t *testing.T) {
	m := Drop(Literal("a"))
	runMatchTestData(t, matchTestData{"a", true, []Result{nil}, m})
}

func TestSubstitute(t *testing.T) {
	m := Substitute(Digit(), 0)
	runMatchTestData(t, matchTestData{"7", true, []Result{{0}}, m})
}

func TestAddConcatenatesStrings(t *testing.T) {
	m := Add(And(Literal("foo"), Literal("bar")))
	runMatchTestData(t, matchTestData{"foobar", true, []Result{{"foobar"}}, m})
}

func TestApplyPropagatesFunctionErrors(t *testing.T) {
	boom := errConstruction("boom")
	m := Apply(Literal("a"), func(r Result) (interface{}, error) { return nil, boom })
	_, err := Parse(m, "a")
	if err != boom {
		t.Errorf("Parse error = %v, want %v", err, boom)
	}
}

func TestApplyArgsSpreadsResultElements(t *testing.T) {
	m := ApplyArgs(And(Digit(), Digit()), func(args ...interface{}) (interface{}, error) {
		return fmt.Sprintf("%v-%v", args[0], args[1]), nil
	})
	runMatchTestData(t, matchTestData{"42", true, []Result{{"4-2"}}, m})
}

func TestApplyArgsPropagatesFunctionErrors(t *testing.T) {
	boom := errConstruction("boom")
	m := ApplyArgs(Literal("a"), func(args ...interface{}) (interface{}, error) { return nil, boom })
	_, err := Parse(m, "a")
	if err != boom {
		t.Errorf("Parse error = %v, want %v", err, boom)
	}
}

func TestApplyRawReplacesWholeResult(t *testing.T) {
	m := ApplyRaw(And(Digit(), Digit()), func(r Result) (Result, error) {
		return Result{r[1], r[0]}, nil
	})
	runMatchTestData(t, matchTestData{"42", true, []Result{{"2", "4"}}, m})
}

func TestApplyRawCanEmitEmptyResult(t *testing.T) {
	m := ApplyRaw(Literal("a"), func(r Result) (Result, error) { return nil, nil })
	runMatchTestData(t, matchTestData{"a", true, []Result{nil}, m})
}

func TestApplyRawPropagatesFunctionErrors(t *testing.T) {
	boom := errConstruction("boom")
	m := ApplyRaw(Literal("a"), func(r Result) (Result, error) { return nil, boom })
	_, err := Parse(m, "a")
	if err != boom {
		t.Errorf("Parse error = %v, want %v", err, boom)
	}
}

func TestNameTagsTheCapture(t *testing.T) {
	m := Name(UnsignedInteger(), "count")
	results, err := Parse(m, "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// UnsignedInteger's greedy repetition yields "42" first, then backs
	// off to "4".
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	named, ok := results[0][0].(Named)
	if !ok || named.Label != "count" || named.Value != "42" {
		t.Errorf("result = %#v, want Named{count, 42}", results[0][0])
	}
}

func TestNameTagsEveryElement(t *testing.T) {
	m := Name(And(Literal("a"), Literal("b")), "pair")
	results, err := Parse(m, "ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	want := Result{Named{Label: "pair", Value: "a"}, Named{Label: "pair", Value: "b"}}
	if !reflect.DeepEqual(results[0], want) {
		t.Errorf("result = %#v, want %#v", results[0], want)
	}
}

func TestKApplySeesConsumedSpan(t *testing.T) {
	m := KApply(Literal("abc"), func(kc KContext) (interface{}, error) {
		return kc.StreamOut.Offset() - kc.StreamIn.Offset(), nil
	})
	runMatchTestData(t, matchTestData{"abc", true, []Result{{3}}, m})
}

func TestRaiseInterruptsWithSyntaxError(t *testing.T) {
	m := Or(Literal("ok"), Raise("expected ok"))
	_, err := Parse(m, "nope")
	if err == nil {
		t.Fatal("expected a UserRaisedSyntaxError")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != UserRaisedSyntaxError {
		t.Errorf("err = %v, want UserRaisedSyntaxError", err)
	}
}
