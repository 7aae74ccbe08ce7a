// Package strjoin provides a string-joining accumulator with conditional
// add operations.
//
// A Joiner collects text fragments and renders them separated by a
// delimiter, optionally framed by a prefix and suffix. On top of the plain
// Add it offers predicate-driven variants (AddIf, AddIfElse) and emptiness
// checks (AddIfNotEmpty, AddIfNotBlank) so callers can build up delimited
// strings without sprinkling conditionals around every append.
//
// A Joiner is a plain mutable value: it is not safe for concurrent use, and
// every mutator returns the receiver so calls can be chained:
//
//	s := strjoin.NewFramed(", ", "[", "]").
//		Add("a").
//		AddIfNotEmpty("b=", b).
//		String()
package strjoin
