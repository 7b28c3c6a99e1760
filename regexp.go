package combx

import (
	"fmt"
	"strings"

	"github.com/coregx/coregex"
)

// Regexp matches the given pattern anchored at the stream's current
// position, via coregex's stdlib-compatible engine. If the pattern has
// capturing groups it captures one string per group; otherwise it captures
// the whole matched text as a single string.
func Regexp(pattern string) Matcher {
	re, err := coregex.Compile("^(?:" + pattern + ")")
	if err != nil {
		panic(errConstruction("Regexp: invalid pattern %q: %v", pattern, err))
	}
	return regexpMatcher{re: re, src: pattern}
}

// LiteralFold matches text case-insensitively, built on Regexp's (?i)
// flag rather than a bespoke fold-length table.
func LiteralFold(text string) Matcher {
	return Regexp("(?i)" + quoteMeta(text))
}

type regexpMatcher struct {
	re  *coregex.Regex
	src string
}

func (m regexpMatcher) Match(s Stream) Sequence {
	return &singleAttemptSequence{compute: func() (Attempt, bool, error) {
		if m.re.NumSubexp() == 0 {
			loc := m.re.FindStringIndex(s.Remaining())
			if loc == nil || loc[0] != 0 {
				return Attempt{}, false, nil
			}
			text := s.Remaining()[:loc[1]]
			return Attempt{Result: Result{text}, Stream: s.advance(loc[1])}, true, nil
		}

		idx := m.re.FindStringSubmatchIndex(s.Remaining())
		if idx == nil || idx[0] != 0 {
			return Attempt{}, false, nil
		}
		groups := m.re.FindStringSubmatch(s.Remaining())
		result := make(Result, 0, len(groups)-1)
		for _, g := range groups[1:] {
			result = append(result, g)
		}
		return Attempt{Result: result, Stream: s.advance(idx[1])}, true, nil
	}}
}

func (m regexpMatcher) String() string { return fmt.Sprintf("Regexp(%q)", m.src) }

func quoteMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isRegexMeta(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isRegexMeta(r rune) bool {
	switch r {
	case '\\', '.', '+', '*', '?', '(', ')', '|', '[', ']', '{', '}', '^', '$':
		return true
	}
	return false
}
