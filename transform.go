package combx

import (
	"fmt"
	"strings"
)

// Map rewrites each attempt's Result through fn, keeping the consumed
// stream position unchanged.
func Map(child interface{}, fn func(Result) Result) Matcher {
	return mapMatcher{child: coerce(child), fn: fn}
}

type mapMatcher struct {
	child Matcher
	fn    func(Result) Result
}

func (m mapMatcher) Match(s Stream) Sequence {
	return &mapSequence{inner: m.child.Match(s), fn: m.fn}
}

func (m mapMatcher) String() string { return fmt.Sprintf("Map(%v)", m.child) }

type mapSequence struct {
	inner Sequence
	fn    func(Result) Result
}

func (seq *mapSequence) Next() (Attempt, bool, error) {
	a, ok, err := seq.inner.Next()
	if !ok || err != nil {
		return Attempt{}, ok, err
	}
	return Attempt{Result: seq.fn(a.Result), Stream: a.Stream}, true, nil
}

func (seq *mapSequence) Close() { seq.inner.Close() }

// Drop matches child but discards whatever it captured.
func Drop(child interface{}) Matcher {
	return Map(child, func(Result) Result { return nil })
}

// Substitute matches child but replaces its Result with a single fixed
// value, regardless of what child actually captured.
func Substitute(child interface{}, value interface{}) Matcher {
	return Map(child, func(Result) Result { return Result{value} })
}

// Add folds a matched Result into one string by concatenating every
// string element, discarding anything else. It is the usual way to turn
// a Repeat of single-rune matchers back into a token.
func Add(child interface{}) Matcher {
	return AddWith(child, func(acc Result) Result {
		var b strings.Builder
		for _, v := range acc {
			if s, ok := v.(string); ok {
				b.WriteString(s)
			}
		}
		return Result{b.String()}
	})
}

// AddWith folds a matched Result through an arbitrary combiner.
func AddWith(child interface{}, combine func(Result) Result) Matcher {
	return Map(child, combine)
}

// Named is one tagged capture: a label paired with a single element of a
// matched Result.
type Named struct {
	Label string
	Value interface{}
}

// Name tags every element of a matched Result with label, one Named pair
// per element, letting a grammar mark captures by role. A zero-width
// match stays an empty Result.
func Name(child interface{}, label string) Matcher {
	return ApplyRaw(child, func(r Result) (Result, error) {
		out := make(Result, len(r))
		for i, v := range r {
			out[i] = Named{Label: label, Value: v}
		}
		return out, nil
	})
}

// Apply reduces a matched Result to a single value via fn. An error from
// fn is a genuine failure and propagates unconditionally; it is never
// treated as "no parse".
func Apply(child interface{}, fn func(Result) (interface{}, error)) Matcher {
	return applyMatcher{child: coerce(child), fn: fn}
}

type applyMatcher struct {
	child Matcher
	fn    func(Result) (interface{}, error)
}

func (m applyMatcher) Match(s Stream) Sequence {
	return &applySequence{inner: m.child.Match(s), fn: m.fn}
}

func (m applyMatcher) String() string { return fmt.Sprintf("Apply(%v)", m.child) }

type applySequence struct {
	inner Sequence
	fn    func(Result) (interface{}, error)
}

func (seq *applySequence) Next() (Attempt, bool, error) {
	a, ok, err := seq.inner.Next()
	if !ok || err != nil {
		return Attempt{}, ok, err
	}
	v, ferr := seq.fn(a.Result)
	if ferr != nil {
		return Attempt{}, false, ferr
	}
	return Attempt{Result: Result{v}, Stream: a.Stream}, true, nil
}

func (seq *applySequence) Close() { seq.inner.Close() }

// ApplyArgs is Apply with the matched Result spread across fn's arguments
// instead of passed as a single list, for transforms that read more
// naturally as fn(a, b, c) than fn([a, b, c]).
func ApplyArgs(child interface{}, fn func(args ...interface{}) (interface{}, error)) Matcher {
	return applyArgsMatcher{child: coerce(child), fn: fn}
}

type applyArgsMatcher struct {
	child Matcher
	fn    func(args ...interface{}) (interface{}, error)
}

func (m applyArgsMatcher) Match(s Stream) Sequence {
	return &applyArgsSequence{inner: m.child.Match(s), fn: m.fn}
}

func (m applyArgsMatcher) String() string { return fmt.Sprintf("ApplyArgs(%v)", m.child) }

type applyArgsSequence struct {
	inner Sequence
	fn    func(args ...interface{}) (interface{}, error)
}

func (seq *applyArgsSequence) Next() (Attempt, bool, error) {
	a, ok, err := seq.inner.Next()
	if !ok || err != nil {
		return Attempt{}, ok, err
	}
	v, ferr := seq.fn(a.Result...)
	if ferr != nil {
		return Attempt{}, false, ferr
	}
	return Attempt{Result: Result{v}, Stream: a.Stream}, true, nil
}

func (seq *applyArgsSequence) Close() { seq.inner.Close() }

// ApplyRaw is Apply with fn producing the whole replacement Result instead
// of a single value that gets list-wrapped, for transforms that need to
// emit zero, one or several elements from one matched attempt.
func ApplyRaw(child interface{}, fn func(Result) (Result, error)) Matcher {
	return applyRawMatcher{child: coerce(child), fn: fn}
}

type applyRawMatcher struct {
	child Matcher
	fn    func(Result) (Result, error)
}

func (m applyRawMatcher) Match(s Stream) Sequence {
	return &applyRawSequence{inner: m.child.Match(s), fn: m.fn}
}

func (m applyRawMatcher) String() string { return fmt.Sprintf("ApplyRaw(%v)", m.child) }

type applyRawSequence struct {
	inner Sequence
	fn    func(Result) (Result, error)
}

func (seq *applyRawSequence) Next() (Attempt, bool, error) {
	a, ok, err := seq.inner.Next()
	if !ok || err != nil {
		return Attempt{}, ok, err
	}
	r, ferr := seq.fn(a.Result)
	if ferr != nil {
		return Attempt{}, false, ferr
	}
	return Attempt{Result: r, Stream: a.Stream}, true, nil
}

func (seq *applyRawSequence) Close() { seq.inner.Close() }

// KContext is what KApply's function receives: the stream on both sides
// of the match plus the raw Result, for transforms that need to know how
// much input a capture actually spanned.
type KContext struct {
	StreamIn  Stream
	StreamOut Stream
	Results   Result
}

// KApply is Apply with access to the consumed span via KContext.
func KApply(child interface{}, fn func(KContext) (interface{}, error)) Matcher {
	return kapplyMatcher{child: coerce(child), fn: fn}
}

type kapplyMatcher struct {
	child Matcher
	fn    func(KContext) (interface{}, error)
}

func (m kapplyMatcher) Match(s Stream) Sequence {
	return &kapplySequence{inner: m.child.Match(s), fn: m.fn, in: s}
}

func (m kapplyMatcher) String() string { return fmt.Sprintf("KApply(%v)", m.child) }

type kapplySequence struct {
	inner Sequence
	fn    func(KContext) (interface{}, error)
	in    Stream
}

func (seq *kapplySequence) Next() (Attempt, bool, error) {
	a, ok, err := seq.inner.Next()
	if !ok || err != nil {
		return Attempt{}, ok, err
	}
	v, ferr := seq.fn(KContext{StreamIn: seq.in, StreamOut: a.Stream, Results: a.Result})
	if ferr != nil {
		return Attempt{}, false, ferr
	}
	return Attempt{Result: Result{v}, Stream: a.Stream}, true, nil
}

func (seq *kapplySequence) Close() { seq.inner.Close() }

// Raise always fails with a UserRaisedSyntaxError carrying message and the
// stream's current position, interrupting enumeration outright rather
// than reporting an ordinary "no parse". Typically the last alternative
// of an Or, to turn "nothing matched" into a reported syntax error.
func Raise(message string) Matcher {
	return raiseMatcher{message: message}
}

type raiseMatcher struct{ message string }

func (m raiseMatcher) Match(s Stream) Sequence {
	return &errorSequence{err: errSyntax(s.Position(), m.message)}
}

func (m raiseMatcher) String() string { return fmt.Sprintf("Raise(%q)", m.message) }
