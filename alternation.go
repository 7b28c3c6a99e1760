package combx

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Or tries its children left to right, yielding every attempt of one
// child before moving on to the next: a stable, exhaustive ordered
// choice, never the PEG "commit to the first child that matches at all"
// rule.
func Or(matchers ...interface{}) Matcher {
	return orMatcher{children: coerceAll(matchers)}
}

type orMatcher struct{ children []Matcher }

func (m orMatcher) String() string {
	parts := make([]string, len(m.children))
	for i, c := range m.children {
		parts[i] = fmt.Sprint(c)
	}
	return "Or(" + strings.Join(parts, ", ") + ")"
}

func (m orMatcher) Match(s Stream) Sequence {
	seq := &orSequence{children: m.children, stream: s, ctx: s.ctx}
	if s.ctx != nil {
		seq.cp = s.ctx.gc.register(seq.erase)
	}
	return seq
}

type orSequence struct {
	children []Matcher
	stream   Stream
	ctx      *Context
	idx      int
	cur      Sequence
	cp       *choicepoint
	closed   bool
	finished bool
	attempts int
}

func (seq *orSequence) erase() { seq.closed = true }

func (seq *orSequence) Next() (Attempt, bool, error) {
	if seq.finished {
		return Attempt{}, false, nil
	}

	for {
		if seq.cur == nil {
			if seq.idx >= len(seq.children) {
				seq.finished = true
				seq.deregister()
				return Attempt{}, false, nil
			}
			seq.cur = seq.children[seq.idx].Match(seq.stream)
		}

		attempt, ok, err := seq.cur.Next()
		if err != nil {
			seq.finished = true
			seq.cur.Close()
			seq.deregister()
			return Attempt{}, false, err
		}
		if !ok {
			seq.cur.Close()
			seq.cur = nil
			if seq.closed {
				// Commit fired inside the alternative that just
				// exhausted: no sibling alternative may be tried.
				seq.finished = true
				seq.deregister()
				return Attempt{}, false, nil
			}
			seq.idx++
			continue
		}
		seq.attempts++
		seq.ctx.tracef("or", zap.Int("alternative", seq.idx), zap.Int("attempt", seq.attempts))
		return attempt, true, nil
	}
}

func (seq *orSequence) deregister() {
	if seq.ctx != nil && seq.cp != nil {
		seq.ctx.gc.deregister(seq.cp)
		seq.cp = nil
	}
}

func (seq *orSequence) Close() {
	seq.finished = true
	if seq.cur != nil {
		seq.cur.Close()
		seq.cur = nil
	}
	seq.deregister()
}
