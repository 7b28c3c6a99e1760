package combx

import "testing"

func TestKeywordsMatchesLongestAlternative(t *testing.T) {
	m := Keywords("if", "in", "into")
	runMatchTestData(t, matchTestData{"into the woods", true, []Result{{"into"}, {"in"}}, m})
	runMatchTestData(t, matchTestData{"if x", true, []Result{{"if"}}, m})
	runMatchTestData(t, matchTestData{"inside", true, []Result{{"in"}}, m})
	runMatchTestData(t, matchTestData{"else", false, nil, m})
}

// TestKeywordsBacktracksToShorterAlternative checks that Keywords behaves
// like an Or of Literals: when the longest match at the head of the stream
// leaves a tail that the rest of the grammar rejects, a shorter match is
// tried next instead of the whole parse failing outright.
func TestKeywordsBacktracksToShorterAlternative(t *testing.T) {
	m := And(Keywords("in", "int"), Literal("t"))
	runMatchTestData(t, matchTestData{"int", true, []Result{{"in", "t"}}, m})
}
