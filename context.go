package combx

import "go.uber.org/zap"

// Context is the ambient, per-parse handle carried by a Stream. It is the
// only mutable resource in the library: it owns the commit channel's
// backtracking garbage collector, the tracing switch, and the scope stack
// used by Let/Ref. It is owned by the stream that carries it and mutated
// only by Commit, the trace decorator and Let, single-threaded.
//
// A bare Stream built with NewStream carries no Context at all — Commit and
// Trace fail with MissingContextError on it, matching the stream contract's
// "may be absent for plain string streams".
type Context struct {
	gc     *gc
	trace  *traceSwitch
	scopes []map[string]Matcher
	config Config
}

// Config bounds the one place Repeat can otherwise diverge: a child that
// matches zero-width indefinitely under an unbounded repetition. There is
// no call-stack bound because And/Or/Repeat hold explicit iterator stacks
// on the heap rather than recursing on the Go call stack.
type Config struct {
	// LoopLimit caps the number of occurrences Repeat will accumulate: an
	// unbounded or larger max is silently reduced to it, with no error
	// reported. Zero or negative selects DefaultLoopLimit.
	LoopLimit int
}

// DefaultLoopLimit caps unbounded repetition when no Config overrides it.
const DefaultLoopLimit = 500

// DefaultConfig returns the library's default Config.
func DefaultConfig() Config {
	return Config{LoopLimit: DefaultLoopLimit}
}

// ContextOption configures a managed Context at construction time.
type ContextOption func(*Context)

// WithTrace attaches a zap logger that And/Or/Repeat write debug
// spans to while the ambient tracing switch is on. Purely diagnostic:
// logging never changes which attempts are produced.
func WithTrace(logger *zap.Logger) ContextOption {
	return func(ctx *Context) {
		ctx.trace = newTraceSwitch(logger)
	}
}

// WithConfig overrides the default Config (loop-limit bound) for a Context.
func WithConfig(cfg Config) ContextOption {
	return func(ctx *Context) {
		ctx.config = cfg
	}
}

// newContext builds a managed ambient context with its own backtracking GC.
func newContext(opts ...ContextOption) *Context {
	ctx := &Context{
		gc:     newGC(),
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// enter pushes a namespace for Let, returning a function that restores the
// previous scope stack. Let's scopedSequence calls it on exhaustion, error
// or Close; a panic raised during matching does not call it.
func (ctx *Context) enter(namespace map[string]Matcher) func() {
	ctx.scopes = append(ctx.scopes, namespace)
	depth := len(ctx.scopes)
	return func() {
		ctx.scopes = ctx.scopes[:depth-1]
	}
}

// lookup resolves a Ref by walking the scope stack innermost-first.
func (ctx *Context) lookup(name string) (Matcher, bool) {
	for i := len(ctx.scopes) - 1; i >= 0; i-- {
		if m, ok := ctx.scopes[i][name]; ok {
			return m, true
		}
	}
	return nil, false
}

func (ctx *Context) loopLimit() int {
	if ctx.config.LoopLimit <= 0 {
		return DefaultLoopLimit
	}
	return ctx.config.LoopLimit
}
