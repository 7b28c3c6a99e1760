package combx

// gc is the backtracking garbage collector behind Commit: the ambient
// handle, reachable via a Stream's Context, whose erase() drops
// every queued generator continuation currently held open by a composite
// matcher (And/Or/Repeat) or by Keywords. Only those register: the other
// terminals and the transformers never hold more than one pending
// alternative of their own.
type gc struct {
	points []*choicepoint
}

type choicepoint struct {
	closed bool
	onErase func()
}

func newGC() *gc {
	return &gc{}
}

// register records a new live choice point, returning a handle the owner
// must deregister once it is naturally exhausted or explicitly closed.
func (g *gc) register(onErase func()) *choicepoint {
	cp := &choicepoint{onErase: onErase}
	g.points = append(g.points, cp)
	return cp
}

func (g *gc) deregister(cp *choicepoint) {
	for i, p := range g.points {
		if p == cp {
			g.points = append(g.points[:i], g.points[i+1:]...)
			return
		}
	}
}

// erase truncates every pending backtracking alternative currently held
// open anywhere in the parse, on behalf of the Commit primitive.
func (g *gc) erase() {
	points := g.points
	g.points = nil
	for _, p := range points {
		if !p.closed {
			p.closed = true
			if p.onErase != nil {
				p.onErase()
			}
		}
	}
}

// commitMatcher yields exactly one attempt ([], stream) and, as a side
// effect, erases all pending backtracking alternatives captured so far.
type commitMatcher struct{}

// Commit erases queued backtracking alternatives up to this point in the
// match. It requires a managed stream (one carrying a *Context); applying
// it to a bare stream fails with MissingContextError.
func Commit() Matcher {
	return commitMatcher{}
}

func (commitMatcher) Match(s Stream) Sequence {
	return &commitSequence{stream: s}
}

type commitSequence struct {
	stream Stream
	done   bool
	err    error
}

func (seq *commitSequence) Next() (Attempt, bool, error) {
	if seq.done {
		return Attempt{}, false, nil
	}
	seq.done = true

	if seq.err != nil {
		return Attempt{}, false, seq.err
	}

	ctx := seq.stream.ctx
	if ctx == nil {
		seq.err = errMissingContext("Commit requires a managed stream (use NewManagedStream)")
		return Attempt{}, false, seq.err
	}
	ctx.gc.erase()
	return Attempt{Result: nil, Stream: seq.stream}, true, nil
}

func (seq *commitSequence) Close() {
	seq.done = true
}

func (commitMatcher) String() string {
	return "commit!"
}
