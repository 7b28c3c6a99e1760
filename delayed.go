package combx

// Delayed is a forward reference for recursive grammars: construct it
// before the rule it stands for exists, use it freely as a Matcher, then
// Bind it exactly once to the real matcher once the rule is built.
// Evaluating an unbound Delayed, or binding one twice, fails with
// UnboundReferenceError.
type Delayed struct {
	bound Matcher
}

// NewDelayed returns an unbound forward reference.
func NewDelayed() *Delayed {
	return &Delayed{}
}

// Bind fixes the matcher a Delayed stands for. It may be called only
// once; a second call panics, since rebinding a grammar rule mid-parse is
// always a programming error, not a recoverable one.
func (d *Delayed) Bind(m Matcher) {
	if d.bound != nil {
		panic(errUnbound("Delayed already bound"))
	}
	d.bound = m
}

func (d *Delayed) Match(s Stream) Sequence {
	if d.bound == nil {
		return &errorSequence{err: errUnbound("Delayed used before Bind")}
	}
	return d.bound.Match(s)
}

func (d *Delayed) String() string { return "Delayed(...)" }
