package combx

import "testing"

func TestStreamAdvanceAndPosition(t *testing.T) {
	s := NewStream("ab\ncd")
	if s.Empty() {
		t.Fatalf("fresh stream reported empty")
	}
	s2 := s.advance(3)
	pos := s2.Position()
	if pos.Line != 1 || pos.Column != 0 {
		t.Errorf("Position after advancing past newline = %+v, want line=1 col=0", pos)
	}
	s3 := s2.advance(2)
	if !s3.Empty() {
		t.Errorf("stream at end of text reported non-empty")
	}
}

func TestStreamHasPrefix(t *testing.T) {
	s := NewStream("hello world")
	if !s.HasPrefix("hello") {
		t.Errorf("HasPrefix(%q) = false, want true", "hello")
	}
	if s.HasPrefix("world") {
		t.Errorf("HasPrefix(%q) = true, want false", "world")
	}
}

func TestManagedStreamHasContext(t *testing.T) {
	bare := NewStream("x")
	if bare.Context() != nil {
		t.Errorf("bare stream has non-nil Context")
	}
	managed := NewManagedStream("x")
	if managed.Context() == nil {
		t.Errorf("managed stream has nil Context")
	}
}
