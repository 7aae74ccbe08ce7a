package strjoin

import (
	"fmt"
	"strings"
	"unicode"
)

// stringify is the canonical conversion used by every conditional add.
// fmt.Sprint renders a nil value as "<nil>".
func stringify(v any) string {
	return fmt.Sprint(v)
}

// AddConcatenated concatenates the stringified pieces and appends the result
// as a single fragment.
func (j *Joiner) AddConcatenated(pieces ...any) *Joiner {
	var b strings.Builder
	for _, p := range pieces {
		b.WriteString(stringify(p))
	}
	return j.Add(b.String())
}

// AddIf appends prefix followed by the stringified value as one fragment
// when pred(value) is true, and does nothing otherwise.
func AddIf[T any](j *Joiner, prefix string, value T, pred func(T) bool) *Joiner {
	if pred(value) {
		return j.AddConcatenated(prefix, value)
	}
	return j
}

// AddIfElse appends prefix followed by the stringified value when
// pred(value) is true, and prefix followed by fallback otherwise. Exactly
// one fragment is appended either way.
func AddIfElse[T any](j *Joiner, prefix string, value T, fallback string, pred func(T) bool) *Joiner {
	if pred(value) {
		return j.AddConcatenated(prefix, value)
	}
	return j.AddConcatenated(prefix, fallback)
}

// AddIfNotEmpty appends prefix followed by the stringified value as one
// fragment. A nil value, or one whose stringification is empty, is skipped.
func (j *Joiner) AddIfNotEmpty(prefix string, value any) *Joiner {
	if value == nil {
		return j
	}
	s := stringify(value)
	if len(s) == 0 {
		return j
	}
	return j.AddConcatenated(prefix, s)
}

// AddIfNotBlank appends value as a fragment when it contains at least one
// non-whitespace rune, and skips empty or all-whitespace values.
//
// Unlike the other conditional adds, the prefix argument is NOT prepended:
// the raw value is added on its own. Existing callers depend on this, so the
// asymmetry is part of the contract.
func (j *Joiner) AddIfNotBlank(prefix string, value string) *Joiner {
	for _, r := range value {
		if !unicode.IsSpace(r) {
			return j.Add(value)
		}
	}
	return j
}
