package combx

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTraceID() string {
	return uuid.NewString()
}

// traceSwitch is the ambient debug-logging half of Context. It wraps a zap
// logger with a uuid correlation id per parse so And/Or/Repeat spans from a
// single Match call can be grep'd back together, and an on/off flag so the
// logging calls it guards stay off the hot path when tracing is disabled.
type traceSwitch struct {
	logger *zap.Logger
	id     string
	on     bool
}

func newTraceSwitch(logger *zap.Logger) *traceSwitch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &traceSwitch{
		logger: logger,
		id:     newTraceID(),
		on:     true,
	}
}

func (ts *traceSwitch) enabled() bool {
	return ts != nil && ts.on
}

func (ts *traceSwitch) span(kind string, fields ...zap.Field) {
	if !ts.enabled() {
		return
	}
	ts.logger.Debug(kind, append([]zap.Field{zap.String("trace_id", ts.id)}, fields...)...)
}

// trace0 logs a single diagnostic span if the Context's tracing switch is on.
// It is a no-op on a bare, unmanaged stream or when tracing was never
// attached via WithTrace.
func (ctx *Context) trace0(kind string) {
	if ctx == nil {
		return
	}
	ctx.trace.span(kind)
}

func (ctx *Context) tracef(kind string, fields ...zap.Field) {
	if ctx == nil {
		return
	}
	ctx.trace.span(kind, fields...)
}

// Trace toggles this Context's debug logging on or off. It requires a
// managed stream; callers holding only a bare Stream should use WithTrace at
// construction time instead.
func (ctx *Context) Trace(on bool) error {
	if ctx == nil {
		return errMissingContext("Trace requires a managed stream (use NewManagedStream)")
	}
	if ctx.trace == nil {
		ctx.trace = newTraceSwitch(nil)
	}
	ctx.trace.on = on
	return nil
}
