// Package combx implements lazy, backtracking parser combinators: a
// grammar is built out of ordinary Matcher values (And, Or, Repeat,
// Literal and the rest), and applying one to a Stream produces a
// Sequence — an explicit, restartable iterator over every way the
// grammar can match, rather than committing to the first one. Callers
// pull attempts from a Sequence on demand, so a failed attempt downstream
// can ask an upstream Or or Repeat for its next alternative instead of
// re-parsing from scratch.
//
// Composite matchers (And, Or, Repeat) explore the full backtracking tree:
// Or tries every attempt of each child before moving to the next child,
// And enumerates the cross product of its children's attempts right-deep
// depth-first, and Repeat visits occurrence counts in the order its
// RepeatDirection selects. Commit prunes that tree deliberately, erasing
// every alternative queued so far once a grammar is confident it has
// picked the right branch.
package combx

// Parse runs m against text on a fresh managed stream and collects every
// attempt's Result by pulling the Sequence to exhaustion.
func Parse(m Matcher, text string, opts ...ContextOption) ([]Result, error) {
	s := NewManagedStream(text, opts...)
	seq := m.Match(s)
	defer seq.Close()

	var out []Result
	for {
		a, ok, err := seq.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, a.Result)
	}
}

// FirstMatch returns only m's first attempt against text, closing the
// Sequence immediately afterward so it releases anything it held open.
func FirstMatch(m Matcher, text string, opts ...ContextOption) (Result, Stream, bool, error) {
	s := NewManagedStream(text, opts...)
	seq := m.Match(s)
	defer seq.Close()

	a, ok, err := seq.Next()
	if err != nil || !ok {
		return nil, Stream{}, false, err
	}
	return a.Result, a.Stream, true, nil
}

// Match applies m to an already-built Stream, bare or managed.
func Match(m Matcher, s Stream) Sequence {
	return m.Match(s)
}
