package combx

import (
	"reflect"
	"testing"
)

func TestAndEmpty(t *testing.T) {
	runMatchTestData(t, matchTestData{"anything", true, []Result{nil}, And()})
}

func TestAndConcatenatesResults(t *testing.T) {
	m := And(Literal("foo"), Literal("bar"))
	runMatchTestData(t, matchTestData{"foobar", true, []Result{{"foo", "bar"}}, m})
	runMatchTestData(t, matchTestData{"foobaz", false, nil, m})
}

func TestAndEnumeratesCrossProduct(t *testing.T) {
	m := And(Or(Literal("a"), Literal("aa")), Literal("a"))
	results, err := Parse(m, "aaa")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := []Result{{"a", "a"}, {"aa", "a"}}
	if !reflect.DeepEqual(results, want) {
		t.Errorf("Parse(%v, %q) = %v, want %v", m, "aaa", results, want)
	}
}

func TestAndClosesAbandonedChildrenInReverseOrder(t *testing.T) {
	var order []int
	tracking := func(id int, m Matcher) Matcher {
		return trackingMatcher{id: id, inner: m, order: &order}
	}
	m := And(
		tracking(0, Literal("a")),
		tracking(1, Literal("zzz")),
	)
	_, _ = Parse(m, "ab")
	if len(order) != 2 || order[0] != 1 || order[1] != 0 {
		t.Errorf("close order = %v, want [1 0] (inner-to-outer)", order)
	}
}

// trackingMatcher records, in *order, the id of each child as its Sequence
// is closed, letting tests assert And tears down right-to-left.
type trackingMatcher struct {
	id    int
	inner Matcher
	order *[]int
}

func (m trackingMatcher) Match(s Stream) Sequence {
	return &trackingSequence{id: m.id, inner: m.inner.Match(s), order: m.order}
}

type trackingSequence struct {
	id    int
	inner Sequence
	order *[]int
}

func (seq *trackingSequence) Next() (Attempt, bool, error) { return seq.inner.Next() }

func (seq *trackingSequence) Close() {
	seq.inner.Close()
	*seq.order = append(*seq.order, seq.id)
}
