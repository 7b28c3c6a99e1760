package combx

import "unicode"

// Digit matches a single Unicode decimal digit.
func Digit() Matcher { return labeledRune("Digit()", unicode.IsDigit) }

// Letter matches a single Unicode letter.
func Letter() Matcher { return labeledRune("Letter()", unicode.IsLetter) }

// Upper matches a single Unicode uppercase letter.
func Upper() Matcher { return labeledRune("Upper()", unicode.IsUpper) }

// Lower matches a single Unicode lowercase letter.
func Lower() Matcher { return labeledRune("Lower()", unicode.IsLower) }

// Printable matches a single printable Unicode rune; the ASCII space is
// included, other space runes such as tab are not.
func Printable() Matcher { return labeledRune("Printable()", unicode.IsPrint) }

// Punctuation matches a single Unicode punctuation rune.
func Punctuation() Matcher { return labeledRune("Punctuation()", unicode.IsPunct) }

// Whitespace matches a single Unicode whitespace rune.
func Whitespace() Matcher { return labeledRune("Whitespace()", unicode.IsSpace) }

// Space matches a single plain space or tab, excluding newlines.
func Space() Matcher { return AnyOf(" \t") }

// Newline matches a single carriage-return or line-feed rune.
func Newline() Matcher { return AnyOf("\r\n") }

// Word matches one or more letters, folded into a single string token.
func Word() Matcher {
	return Add(OneOrMore(Letter()))
}
