package combx

import (
	"fmt"
	"sort"
	"strings"

	"github.com/itgcl/ahocorasick"
)

// Keywords matches a fixed set of literal words present as a prefix of the
// stream's remaining input, built on an Aho-Corasick automaton so a grammar
// with dozens of reserved words tests them all in one pass instead of one
// Literal per word inside an Or. Like Or(Literal(w1), Literal(w2), ...), it
// yields one attempt per matching word, longest first, and backtracks into
// shorter matches when what follows rejects the longest one.
func Keywords(words ...string) Matcher {
	dict := make([]string, len(words))
	copy(dict, words)
	return keywordsMatcher{words: dict, machine: ahocorasick.NewStringMatcher(dict)}
}

type keywordsMatcher struct {
	words   []string
	machine *ahocorasick.Matcher
}

func (km keywordsMatcher) Match(s Stream) Sequence {
	remaining := s.Remaining()
	hits := km.machine.MatchString(remaining)

	matches := make([]string, 0, len(hits))
	for _, idx := range hits {
		word := km.words[idx]
		if word == "" || !strings.HasPrefix(remaining, word) {
			continue
		}
		matches = append(matches, word)
	}
	sort.SliceStable(matches, func(i, j int) bool { return len(matches[i]) > len(matches[j]) })

	seq := &keywordsSequence{matches: matches, stream: s, ctx: s.ctx}
	if s.ctx != nil {
		seq.cp = s.ctx.gc.register(seq.erase)
	}
	return seq
}

func (km keywordsMatcher) String() string { return fmt.Sprintf("Keywords(%v)", km.words) }

// keywordsSequence yields the words matched at Match time as successive
// attempts, longest first, the same backtracking contract orSequence gives
// an Or of Literals.
type keywordsSequence struct {
	matches  []string
	stream   Stream
	ctx      *Context
	idx      int
	cp       *choicepoint
	closed   bool
	finished bool
}

func (seq *keywordsSequence) erase() { seq.closed = true }

func (seq *keywordsSequence) Next() (Attempt, bool, error) {
	if seq.finished || seq.closed {
		seq.finished = true
		return Attempt{}, false, nil
	}
	if seq.idx >= len(seq.matches) {
		seq.finished = true
		seq.deregister()
		return Attempt{}, false, nil
	}
	word := seq.matches[seq.idx]
	seq.idx++
	return Attempt{Result: Result{word}, Stream: seq.stream.advance(len(word))}, true, nil
}

func (seq *keywordsSequence) deregister() {
	if seq.ctx != nil && seq.cp != nil {
		seq.ctx.gc.deregister(seq.cp)
		seq.cp = nil
	}
}

func (seq *keywordsSequence) Close() {
	seq.finished = true
	seq.deregister()
}
