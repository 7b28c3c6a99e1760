package combx

import "fmt"

// Let binds a namespace of named matchers around entry so that a Ref
// inside entry (or anything entry delegates to) can resolve those names,
// the mechanism mutually recursive grammars built from Delayed rely on
// for local aliasing. It requires a managed stream.
func Let(vars map[string]Matcher, entry interface{}) Matcher {
	return letMatcher{vars: vars, entry: coerce(entry)}
}

type letMatcher struct {
	vars  map[string]Matcher
	entry Matcher
}

func (m letMatcher) String() string { return fmt.Sprintf("Let(%v)", m.entry) }

func (m letMatcher) Match(s Stream) Sequence {
	if s.ctx == nil {
		return &errorSequence{err: errMissingContext("Let requires a managed stream (use NewManagedStream)")}
	}
	exit := s.ctx.enter(m.vars)
	return &scopedSequence{inner: m.entry.Match(s), exit: exit}
}

// scopedSequence keeps a Let's namespace on the Context's scope stack for
// exactly as long as its entry matcher might still be enumerating
// alternatives, popping it on the first exhaustion, error, or Close.
type scopedSequence struct {
	inner Sequence
	exit  func()
	done  bool
}

func (seq *scopedSequence) Next() (Attempt, bool, error) {
	if seq.done {
		return Attempt{}, false, nil
	}
	a, ok, err := seq.inner.Next()
	if !ok {
		seq.done = true
		seq.exit()
	}
	return a, ok, err
}

func (seq *scopedSequence) Close() {
	if !seq.done {
		seq.done = true
		seq.inner.Close()
		seq.exit()
	}
}

// Ref resolves to the matcher bound to name in the innermost enclosing
// Let. It requires a managed stream and fails with UnboundReferenceError
// if name is not currently in scope.
func Ref(name string) Matcher {
	return refMatcher{name: name}
}

type refMatcher struct{ name string }

func (m refMatcher) String() string { return fmt.Sprintf("Ref(%q)", m.name) }

func (m refMatcher) Match(s Stream) Sequence {
	if s.ctx == nil {
		return &errorSequence{err: errMissingContext("Ref requires a managed stream (use NewManagedStream)")}
	}
	target, ok := s.ctx.lookup(m.name)
	if !ok {
		return &errorSequence{err: errUnbound("Ref(%q): no such name in scope", m.name)}
	}
	return target.Match(s)
}
