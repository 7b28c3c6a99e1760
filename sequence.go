package combx

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// And matches its children left to right and reports every combination of
// their attempts, explored right-deep depth-first: the last child is
// re-asked for its next alternative before any earlier child is. An empty
// And always succeeds once, consuming nothing.
func And(matchers ...interface{}) Matcher {
	return andMatcher{children: coerceAll(matchers)}
}

type andMatcher struct{ children []Matcher }

func (m andMatcher) String() string {
	parts := make([]string, len(m.children))
	for i, c := range m.children {
		parts[i] = fmt.Sprint(c)
	}
	return "And(" + strings.Join(parts, ", ") + ")"
}

func (m andMatcher) Match(s Stream) Sequence {
	seq := &andSequence{children: m.children, ctx: s.ctx}
	if len(m.children) == 0 {
		seq.zeroStream = s
		seq.zeroChild = true
		return seq
	}
	seq.frames = []*andFrame{{seq: m.children[0].Match(s), prefix: nil}}
	if s.ctx != nil {
		seq.cp = s.ctx.gc.register(seq.erase)
	}
	return seq
}

type andFrame struct {
	seq    Sequence
	prefix Result
}

// andSequence is the explicit stack machine implementing And's
// right-deep depth-first enumeration: frames[i] holds child i's own
// Sequence plus the Result accumulated from children before it. Extending
// pushes a frame; exhausting the top child pops one and resumes the
// previous child for its next alternative.
type andSequence struct {
	children   []Matcher
	frames     []*andFrame
	ctx        *Context
	cp         *choicepoint
	closed     bool
	finished   bool
	zeroChild  bool
	zeroStream Stream
}

func (seq *andSequence) erase() { seq.closed = true }

func (seq *andSequence) Next() (Attempt, bool, error) {
	if seq.finished {
		return Attempt{}, false, nil
	}

	if seq.zeroChild {
		seq.finished = true
		return Attempt{Result: nil, Stream: seq.zeroStream}, true, nil
	}

	for len(seq.frames) > 0 {
		top := seq.frames[len(seq.frames)-1]
		attempt, ok, err := top.seq.Next()
		if err != nil {
			seq.finished = true
			seq.closeAll()
			seq.deregister()
			return Attempt{}, false, err
		}
		if !ok {
			top.seq.Close()
			seq.frames = seq.frames[:len(seq.frames)-1]
			if seq.closed {
				// Commit fired while this child (or one after it) was
				// still in flight: once it exhausts, a prior child must
				// not be asked for another attempt either.
				seq.finished = true
				seq.closeAll()
				seq.deregister()
				return Attempt{}, false, nil
			}
			continue
		}

		idx := len(seq.frames) - 1
		prefix := concatResults(top.prefix, attempt.Result)
		if idx == len(seq.children)-1 {
			seq.ctx.tracef("and", zap.Int("depth", idx))
			return Attempt{Result: prefix, Stream: attempt.Stream}, true, nil
		}
		seq.frames = append(seq.frames, &andFrame{
			seq:    seq.children[idx+1].Match(attempt.Stream),
			prefix: prefix,
		})
	}

	seq.finished = true
	seq.deregister()
	return Attempt{}, false, nil
}

func (seq *andSequence) closeAll() {
	for i := len(seq.frames) - 1; i >= 0; i-- {
		seq.frames[i].seq.Close()
	}
	seq.frames = nil
}

func (seq *andSequence) deregister() {
	if seq.ctx != nil && seq.cp != nil {
		seq.ctx.gc.deregister(seq.cp)
		seq.cp = nil
	}
}

func (seq *andSequence) Close() {
	seq.finished = true
	seq.closeAll()
	seq.deregister()
}
