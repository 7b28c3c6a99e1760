package combx

import "fmt"

// RuneMatching matches a single rune satisfying pred, consuming it.
func RuneMatching(pred func(rune) bool) Matcher {
	return runeMatcher{pred: pred, label: "RuneMatching(...)"}
}

type runeMatcher struct {
	pred  func(rune) bool
	label string
}

func (m runeMatcher) Match(s Stream) Sequence {
	return &singleAttemptSequence{compute: func() (Attempt, bool, error) {
		r, size, ok := s.peekRune()
		if !ok || !m.pred(r) {
			return Attempt{}, false, nil
		}
		return Attempt{Result: Result{string(r)}, Stream: s.advance(size)}, true, nil
	}}
}

func (m runeMatcher) String() string { return m.label }

func labeledRune(label string, pred func(rune) bool) Matcher {
	return runeMatcher{pred: pred, label: label}
}

// AnyOf matches a single rune present in chars.
func AnyOf(chars string) Matcher {
	set := runeSet(chars)
	return labeledRune(fmt.Sprintf("AnyOf(%q)", chars), func(r rune) bool {
		_, ok := set[r]
		return ok
	})
}

// NoneOf matches a single rune that is not present in chars (and not EOF).
func NoneOf(chars string) Matcher {
	set := runeSet(chars)
	return labeledRune(fmt.Sprintf("NoneOf(%q)", chars), func(r rune) bool {
		_, bad := set[r]
		return !bad
	})
}

// AnyInRange matches a single rune in [lo, hi], inclusive.
func AnyInRange(lo, hi rune) Matcher {
	return labeledRune(fmt.Sprintf("AnyInRange(%q,%q)", lo, hi), func(r rune) bool {
		return r >= lo && r <= hi
	})
}

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}
