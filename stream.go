package combx

import (
	"strings"
	"unicode/utf8"
)

// Stream is an immutable cursor over the input text. Advancing a Stream
// never mutates it in place; every matcher returns a fresh Stream value
// positioned past whatever it consumed, which is what lets the same
// Stream value be handed to
// multiple children of an And/Or/Repeat concurrently without them
// clobbering each other.
//
// A bare Stream built with NewStream carries no *Context at all. Commit,
// Trace and Let require a managed stream built with NewManagedStream and
// fail with MissingContextError otherwise.
type Stream struct {
	text   string
	offset int
	ctx    *Context
	calc   *positionCalculator
}

// NewStream builds a bare stream over text with no ambient Context.
func NewStream(text string) Stream {
	return Stream{text: text, calc: &positionCalculator{text: text}}
}

// NewManagedStream builds a stream carrying a fresh *Context, so Commit,
// Trace and Let work against it.
func NewManagedStream(text string, opts ...ContextOption) Stream {
	s := NewStream(text)
	s.ctx = newContext(opts...)
	return s
}

// Context returns the stream's ambient Context, or nil for a bare stream.
func (s Stream) Context() *Context {
	return s.ctx
}

// Offset returns the byte offset into the original text.
func (s Stream) Offset() int {
	return s.offset
}

// Position returns the line/column/offset of the stream's current point.
func (s Stream) Position() Position {
	return s.calc.calculate(s.offset)
}

// Remaining returns the unconsumed suffix of the stream's text.
func (s Stream) Remaining() string {
	return s.text[s.offset:]
}

// Empty reports whether the stream has no remaining input.
func (s Stream) Empty() bool {
	return s.offset >= len(s.text)
}

// HasPrefix reports whether the remaining text starts with prefix.
func (s Stream) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.Remaining(), prefix)
}

// advance returns a new Stream n bytes further into the text, sharing this
// stream's Context and position cache.
func (s Stream) advance(n int) Stream {
	s.offset += n
	return s
}

// peekRune decodes the rune at the stream's current position without
// advancing. ok is false at end of stream.
func (s Stream) peekRune() (r rune, size int, ok bool) {
	if s.Empty() {
		return 0, 0, false
	}
	r, size = utf8.DecodeRuneInString(s.Remaining())
	return r, size, true
}
