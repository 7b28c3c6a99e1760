package combx

// UnsignedInteger matches one or more decimal digits, folded into a
// single string token.
func UnsignedInteger() Matcher {
	return Add(OneOrMore(Digit()))
}

// SignedInteger matches an optional leading sign followed by one or more
// decimal digits.
func SignedInteger() Matcher {
	return Add(And(Optional(AnyOf("+-")), OneOrMore(Digit())))
}

// UnsignedFloat matches a decimal number with an optional fractional
// part: digits, digits "." digits*, or "." digits.
func UnsignedFloat() Matcher {
	return Add(Or(
		And(OneOrMore(Digit()), Optional(And(Literal("."), ZeroOrMore(Digit())))),
		And(Literal("."), OneOrMore(Digit())),
	))
}

// SignedFloat matches UnsignedFloat with an optional leading sign.
func SignedFloat() Matcher {
	return Add(And(Optional(AnyOf("+-")), UnsignedFloat()))
}

// SignedEFloat matches SignedFloat with an optional exponent marker ("e"
// or "E") followed by a SignedInteger, composing the two rather than a
// bespoke exponent grammar.
func SignedEFloat() Matcher {
	return Add(And(SignedFloat(), Optional(And(AnyOf("eE"), SignedInteger()))))
}
