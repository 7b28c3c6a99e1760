package combx

// Sequence is an explicit, restartable iterator standing in for a
// suspended generator: each call to
// Next produces the next backtracking alternative, lazily, until it
// reports ok=false (a clean "no further parse", never an error) or a
// non-nil error (a genuine programming error that must propagate
// unconditionally). Close releases whatever the Sequence is still
// holding open — an abandoned child Sequence, a registered choicepoint —
// without enumerating the rest of it.
type Sequence interface {
	Next() (Attempt, bool, error)
	Close()
}

// Matcher is a lazy, backtracking grammar node: applying it to a Stream
// produces a Sequence of attempts rather than committing to a single
// result.
type Matcher interface {
	Match(s Stream) Sequence
}

// coerce lets combinator constructors accept a bare string or rune
// anywhere a Matcher is expected, turning it into Literal(s), so grammars
// can write string literals directly.
func coerce(v interface{}) Matcher {
	switch m := v.(type) {
	case Matcher:
		return m
	case string:
		return Literal(m)
	case rune:
		return Literal(string(m))
	default:
		panic(errConstruction("cannot coerce %T to a Matcher", v))
	}
}

func coerceAll(vs []interface{}) []Matcher {
	out := make([]Matcher, len(vs))
	for i, v := range vs {
		out[i] = coerce(v)
	}
	return out
}

// singleAttemptSequence adapts a single lazily-computed attempt to the
// Sequence protocol. Every terminal matcher (Any, Literal, Regexp, the
// rune classes, Lookahead) has at most one attempt to give, so they all
// share this.
type singleAttemptSequence struct {
	compute func() (Attempt, bool, error)
	done    bool
}

func (seq *singleAttemptSequence) Next() (Attempt, bool, error) {
	if seq.done {
		return Attempt{}, false, nil
	}
	seq.done = true
	return seq.compute()
}

func (seq *singleAttemptSequence) Close() {
	seq.done = true
}

// errorSequence reports a single error and is exhausted thereafter. It
// backs matchers that fail at construction-adjacent times they could not
// detect until actually applied to a stream: an unbound Delayed, a Ref to
// an unknown name, Let or Ref on a bare stream, and Raise.
type errorSequence struct {
	err  error
	done bool
}

func (seq *errorSequence) Next() (Attempt, bool, error) {
	if seq.done {
		return Attempt{}, false, nil
	}
	seq.done = true
	return Attempt{}, false, seq.err
}

func (seq *errorSequence) Close() {
	seq.done = true
}
