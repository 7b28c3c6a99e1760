package combx

import (
	"fmt"

	"go.uber.org/zap"
)

// RepeatDirection selects the search discipline Repeat explores the
// occurrence tree with. The three directions are observably distinct:
// over a child with several attempts they can yield different attempt
// orders, not just the same order consumed differently. With a
// single-attempt child, Greedy and Exhaustive yield the same order.
type RepeatDirection int

const (
	// Lazy tries the fewest occurrences first, increasing monotonically:
	// breadth-first, non-greedy. Successive attempts never have fewer
	// occurrences than their predecessors.
	Lazy RepeatDirection = -1
	// Exhaustive materializes every attempt via the breadth-first
	// enumeration, then yields them grouped by occurrence count from the
	// highest count downward. Successive attempts never have more
	// occurrences than their predecessors.
	Exhaustive RepeatDirection = 0
	// Greedy searches depth-first: first the longest chain reachable by
	// always taking each occurrence's first attempt, then backing off by
	// advancing the deepest occurrence to its next attempt and
	// re-descending, yielding each shorter chain only once everything
	// reachable beyond it has been enumerated. With a backtracking child
	// the occurrence counts need not be monotonic.
	Greedy RepeatDirection = 1
)

type repeatMatcher struct {
	child     Matcher
	sep       Matcher
	min       int
	max       int // negative means unbounded, subject to the context's loop limit
	direction RepeatDirection
}

// RepeatOption configures an optional feature of Repeat at construction.
type RepeatOption func(*repeatMatcher)

// WithSeparator requires sep between consecutive occurrences of the
// repeated child; sep's own captures are discarded.
func WithSeparator(sep interface{}) RepeatOption {
	return func(rm *repeatMatcher) { rm.sep = coerce(sep) }
}

// Repeat matches child between min and max times (max < 0 means
// unbounded, capped by the ambient Context's loop limit), enumerating
// attempts in the order direction selects and, within an occurrence
// count, every arrangement the child's own backtracking can produce.
func Repeat(child interface{}, min, max int, direction RepeatDirection, opts ...RepeatOption) Matcher {
	if min < 0 {
		panic(errConstruction("Repeat: min must be >= 0, got %d", min))
	}
	if max >= 0 && max < min {
		panic(errConstruction("Repeat: max must be >= min, got max=%d min=%d", max, min))
	}
	if direction < -1 || direction > 1 {
		panic(errConstruction("Repeat: direction must be one of Lazy, Exhaustive, Greedy, got %d", direction))
	}
	rm := repeatMatcher{child: coerce(child), min: min, max: max, direction: direction}
	for _, opt := range opts {
		opt(&rm)
	}
	return rm
}

// ZeroOrMore matches child zero or more times, greedily.
func ZeroOrMore(child interface{}) Matcher { return Repeat(child, 0, -1, Greedy) }

// OneOrMore matches child one or more times, greedily.
func OneOrMore(child interface{}) Matcher { return Repeat(child, 1, -1, Greedy) }

// Optional matches child zero or one time, preferring one.
func Optional(child interface{}) Matcher { return Repeat(child, 0, 1, Greedy) }

// Times matches child exactly n times.
func Times(child interface{}, n int) Matcher { return Repeat(child, n, n, Greedy) }

// Between matches child between min and max times, greedily.
func Between(child interface{}, min, max int) Matcher { return Repeat(child, min, max, Greedy) }

func (m repeatMatcher) String() string {
	return fmt.Sprintf("Repeat(%v, %d, %d, %d)", m.child, m.min, m.max, m.direction)
}

func (m repeatMatcher) Match(s Stream) Sequence {
	limit := DefaultLoopLimit
	if s.ctx != nil {
		limit = s.ctx.loopLimit()
	}
	effMax := m.max
	if effMax < 0 || effMax > limit {
		effMax = limit
	}
	if effMax < m.min {
		return &singleAttemptSequence{compute: func() (Attempt, bool, error) {
			return Attempt{}, false, nil
		}}
	}

	s.ctx.tracef("repeat", zap.Int("min", m.min), zap.Int("max", effMax), zap.Int("direction", int(m.direction)))

	switch m.direction {
	case Lazy:
		// Or's left-to-right lazy child construction (only the current
		// alternative's Match is called) already gives the ascending
		// count order its per-request laziness for free.
		alternatives := make([]Matcher, 0, effMax-m.min+1)
		for k := m.min; k <= effMax; k++ {
			alternatives = append(alternatives, exactlyMatcher(m.child, m.sep, k))
		}
		return orMatcher{children: alternatives}.Match(s)
	case Exhaustive:
		seq := &exhaustiveRepeatSequence{
			child:  m.child,
			sep:    m.sep,
			min:    m.min,
			effMax: effMax,
			stream: s,
			ctx:    s.ctx,
		}
		if s.ctx != nil {
			seq.cp = s.ctx.gc.register(seq.erase)
		}
		return seq
	}

	seq := &greedyRepeatSequence{
		child:  m.child,
		sep:    m.sep,
		min:    m.min,
		effMax: effMax,
		start:  s,
		ctx:    s.ctx,
	}
	if s.ctx != nil {
		seq.cp = s.ctx.gc.register(seq.erase)
	}
	return seq
}

// exactlyMatcher builds the And of k copies of child, separated by sep if
// given, with sep's own Result discarded.
func exactlyMatcher(child, sep Matcher, k int) Matcher {
	if k <= 0 {
		return Empty()
	}
	children := make([]Matcher, 0, 2*k-1)
	for i := 0; i < k; i++ {
		if i > 0 && sep != nil {
			children = append(children, dropResultMatcher{sep})
		}
		children = append(children, child)
	}
	return andMatcher{children: children}
}

// greedyFrame holds one in-flight occurrence of the repeated child: its
// Sequence, the Result accumulated before it, and its current attempt.
type greedyFrame struct {
	seq    Sequence
	prefix Result
	cur    Attempt
}

// greedyRepeatSequence is the explicit stack machine behind the Greedy
// direction: frames is the current chain of occurrences, each holding its
// own still-open Sequence so backing off can resume it where it left off.
type greedyRepeatSequence struct {
	child  Matcher
	sep    Matcher
	min    int
	effMax int
	start  Stream
	ctx    *Context

	frames   []*greedyFrame
	cp       *choicepoint
	closed   bool
	started  bool
	finished bool
}

func (seq *greedyRepeatSequence) erase() { seq.closed = true }

// occurrence is the matcher for one more repetition: the child itself for
// the first occurrence, separator-then-child after that.
func (seq *greedyRepeatSequence) occurrence() Matcher {
	if len(seq.frames) > 0 && seq.sep != nil {
		return andMatcher{children: []Matcher{dropResultMatcher{seq.sep}, seq.child}}
	}
	return seq.child
}

// tip returns the stream position and accumulated Result at the end of
// the current chain.
func (seq *greedyRepeatSequence) tip() (Stream, Result) {
	if len(seq.frames) == 0 {
		return seq.start, nil
	}
	top := seq.frames[len(seq.frames)-1]
	return top.cur.Stream, concatResults(top.prefix, top.cur.Result)
}

// descend extends the chain with first attempts until the child stops
// matching or effMax is reached. It reports ok=false when Commit fired
// inside the very occurrence that then failed to match: settling for the
// shorter chain would be backtracking past the commit point.
func (seq *greedyRepeatSequence) descend() (bool, error) {
	for len(seq.frames) < seq.effMax {
		stream, prefix := seq.tip()
		closedBefore := seq.closed
		sub := seq.occurrence().Match(stream)
		a, ok, err := sub.Next()
		if err != nil {
			sub.Close()
			return false, err
		}
		if !ok {
			sub.Close()
			if seq.closed && !closedBefore {
				return false, nil
			}
			return true, nil
		}
		seq.frames = append(seq.frames, &greedyFrame{seq: sub, prefix: prefix, cur: a})
	}
	return true, nil
}

func (seq *greedyRepeatSequence) Next() (Attempt, bool, error) {
	if seq.finished {
		return Attempt{}, false, nil
	}

	for {
		if !seq.started {
			seq.started = true
			ok, err := seq.descend()
			if err != nil {
				return seq.stop(err)
			}
			if !ok {
				return seq.stop(nil)
			}
		} else {
			if seq.closed || len(seq.frames) == 0 {
				// Asking for another alternative means backing off; a
				// commit forbids that, and an empty chain has nothing
				// left to back off into.
				return seq.stop(nil)
			}
			top := seq.frames[len(seq.frames)-1]
			a, ok, err := top.seq.Next()
			if err != nil {
				return seq.stop(err)
			}
			if ok {
				top.cur = a
				dok, derr := seq.descend()
				if derr != nil {
					return seq.stop(derr)
				}
				if !dok {
					return seq.stop(nil)
				}
			} else {
				top.seq.Close()
				seq.frames = seq.frames[:len(seq.frames)-1]
				if seq.closed {
					return seq.stop(nil)
				}
			}
		}

		if len(seq.frames) >= seq.min {
			stream, result := seq.tip()
			return Attempt{Result: result, Stream: stream}, true, nil
		}
	}
}

func (seq *greedyRepeatSequence) stop(err error) (Attempt, bool, error) {
	seq.finished = true
	seq.closeFrames()
	seq.deregister()
	return Attempt{}, false, err
}

func (seq *greedyRepeatSequence) closeFrames() {
	for i := len(seq.frames) - 1; i >= 0; i-- {
		seq.frames[i].seq.Close()
	}
	seq.frames = nil
}

func (seq *greedyRepeatSequence) deregister() {
	if seq.ctx != nil && seq.cp != nil {
		seq.ctx.gc.deregister(seq.cp)
		seq.cp = nil
	}
}

func (seq *greedyRepeatSequence) Close() {
	seq.finished = true
	seq.closeFrames()
	seq.deregister()
}

// exhaustiveRepeatSequence realizes the Exhaustive direction: on the
// first Next it enumerates occurrence counts breadth-first, fewest first,
// collecting every arrangement at every count, then replays the buffer
// regrouped from the highest count downward. The ambient loop limit
// bounds the effective max, so materialization terminates even for a
// zero-width child under an unbounded repetition.
type exhaustiveRepeatSequence struct {
	child  Matcher
	sep    Matcher
	min    int
	effMax int
	stream Stream
	ctx    *Context

	buffered []Attempt
	idx      int
	err      error
	cp       *choicepoint
	closed   bool
	started  bool
	finished bool
}

func (seq *exhaustiveRepeatSequence) erase() { seq.closed = true }

func (seq *exhaustiveRepeatSequence) materialize() {
	groups := make([][]Attempt, 0, seq.effMax-seq.min+1)
	for k := seq.min; k <= seq.effMax; k++ {
		sub := exactlyMatcher(seq.child, seq.sep, k).Match(seq.stream)
		var group []Attempt
		for {
			a, ok, err := sub.Next()
			if err != nil {
				sub.Close()
				seq.err = err
				return
			}
			if !ok {
				break
			}
			group = append(group, a)
		}
		sub.Close()
		groups = append(groups, group)
	}
	for i := len(groups) - 1; i >= 0; i-- {
		seq.buffered = append(seq.buffered, groups[i]...)
	}
}

func (seq *exhaustiveRepeatSequence) Next() (Attempt, bool, error) {
	if seq.finished {
		return Attempt{}, false, nil
	}
	if !seq.started {
		seq.started = true
		seq.materialize()
	}
	if seq.err != nil {
		err := seq.err
		seq.stop()
		return Attempt{}, false, err
	}
	if seq.idx >= len(seq.buffered) || (seq.idx > 0 && seq.closed) {
		seq.stop()
		return Attempt{}, false, nil
	}
	a := seq.buffered[seq.idx]
	seq.idx++
	return a, true, nil
}

func (seq *exhaustiveRepeatSequence) stop() {
	seq.finished = true
	seq.buffered = nil
	seq.deregister()
}

func (seq *exhaustiveRepeatSequence) deregister() {
	if seq.ctx != nil && seq.cp != nil {
		seq.ctx.gc.deregister(seq.cp)
		seq.cp = nil
	}
}

func (seq *exhaustiveRepeatSequence) Close() { seq.stop() }

// dropResultMatcher matches m but discards its captured Result, keeping
// only the stream advance. It backs Repeat's separator handling.
type dropResultMatcher struct{ m Matcher }

func (d dropResultMatcher) Match(s Stream) Sequence {
	return &dropResultSequence{inner: d.m.Match(s)}
}

func (d dropResultMatcher) String() string { return fmt.Sprintf("Drop(%v)", d.m) }

type dropResultSequence struct{ inner Sequence }

func (seq *dropResultSequence) Next() (Attempt, bool, error) {
	a, ok, err := seq.inner.Next()
	if !ok || err != nil {
		return Attempt{}, ok, err
	}
	return Attempt{Result: nil, Stream: a.Stream}, true, nil
}

func (seq *dropResultSequence) Close() { seq.inner.Close() }
