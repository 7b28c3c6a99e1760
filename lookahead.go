package combx

import "fmt"

// Lookahead matches child without consuming any input: it succeeds
// wherever child would, zero-width. Invert flips it into a negative
// lookahead, matching wherever child would not.
func Lookahead(child interface{}) Matcher {
	return lookaheadMatcher{child: coerce(child)}
}

type lookaheadMatcher struct {
	child   Matcher
	negated bool
}

func (m lookaheadMatcher) Match(s Stream) Sequence {
	return &singleAttemptSequence{compute: func() (Attempt, bool, error) {
		sub := m.child.Match(s)
		defer sub.Close()
		_, matched, err := sub.Next()
		if err != nil {
			return Attempt{}, false, err
		}
		if matched != m.negated {
			return Attempt{Result: nil, Stream: s}, true, nil
		}
		return Attempt{}, false, nil
	}}
}

func (m lookaheadMatcher) String() string {
	if m.negated {
		return fmt.Sprintf("Not(%v)", m.child)
	}
	return fmt.Sprintf("Lookahead(%v)", m.child)
}

// Invert negates a Lookahead in place. Applied to anything else it drops
// the matcher's captured Result instead, so one inversion operation covers
// both meanings.
func Invert(m Matcher) Matcher {
	if la, ok := m.(lookaheadMatcher); ok {
		la.negated = !la.negated
		return la
	}
	return Drop(m)
}
