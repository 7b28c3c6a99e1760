package combx

import "fmt"

// Any matches exactly one rune and consumes it. It fails at end of stream.
func Any() Matcher { return anyMatcher{} }

type anyMatcher struct{}

func (anyMatcher) Match(s Stream) Sequence {
	return &singleAttemptSequence{compute: func() (Attempt, bool, error) {
		r, size, ok := s.peekRune()
		if !ok {
			return Attempt{}, false, nil
		}
		return Attempt{Result: Result{string(r)}, Stream: s.advance(size)}, true, nil
	}}
}

func (anyMatcher) String() string { return "Any()" }

// Literal matches the exact text given, consuming it verbatim.
func Literal(text string) Matcher { return literalMatcher{text: text} }

type literalMatcher struct{ text string }

func (m literalMatcher) Match(s Stream) Sequence {
	return &singleAttemptSequence{compute: func() (Attempt, bool, error) {
		if !s.HasPrefix(m.text) {
			return Attempt{}, false, nil
		}
		return Attempt{Result: Result{m.text}, Stream: s.advance(len(m.text))}, true, nil
	}}
}

func (m literalMatcher) String() string { return fmt.Sprintf("Literal(%q)", m.text) }

// Empty always succeeds, consuming nothing and capturing nothing. It is
// the identity element of And.
func Empty() Matcher { return emptyMatcher{} }

type emptyMatcher struct{}

func (emptyMatcher) Match(s Stream) Sequence {
	return &singleAttemptSequence{compute: func() (Attempt, bool, error) {
		return Attempt{Result: nil, Stream: s}, true, nil
	}}
}

func (emptyMatcher) String() string { return "Empty()" }

// Eof matches the empty string only at end of stream, consuming nothing.
func Eof() Matcher { return eofMatcher{} }

type eofMatcher struct{}

func (eofMatcher) Match(s Stream) Sequence {
	return &singleAttemptSequence{compute: func() (Attempt, bool, error) {
		if !s.Empty() {
			return Attempt{}, false, nil
		}
		return Attempt{Result: nil, Stream: s}, true, nil
	}}
}

func (eofMatcher) String() string { return "Eof()" }
