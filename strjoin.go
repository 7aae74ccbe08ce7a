package strjoin

import "strings"

// Joiner accumulates text fragments and renders them separated by a
// delimiter, framed by an optional prefix and suffix. Fragments keep their
// insertion order and may repeat. The zero value is not usable; construct
// with New, NewDelimited or NewFramed.
type Joiner struct {
	delimiter string
	prefix    string
	suffix    string

	emptyValue    string
	hasEmptyValue bool

	fragments []string
}

// New returns a Joiner with "," as the delimiter and no prefix or suffix.
func New() *Joiner {
	return NewDelimited(",")
}

// NewDelimited returns a Joiner with the given delimiter and no prefix or
// suffix.
func NewDelimited(delimiter string) *Joiner {
	return NewFramed(delimiter, "", "")
}

// NewFramed returns a Joiner with the given delimiter, prefix and suffix.
// While no fragments have been added, String renders prefix+suffix unless
// SetEmptyValue has been called.
func NewFramed(delimiter, prefix, suffix string) *Joiner {
	return &Joiner{
		delimiter: delimiter,
		prefix:    prefix,
		suffix:    suffix,
	}
}

// SetEmptyValue sets the string rendered while no fragments have been added,
// replacing the prefix+suffix default. Once any add has happened the Joiner
// is no longer empty, even if the added fragment was the empty string, and
// the empty value is never consulted again.
func (j *Joiner) SetEmptyValue(value string) *Joiner {
	j.emptyValue = value
	j.hasEmptyValue = true
	return j
}

// Add appends fragment as the next element of the Joiner.
func (j *Joiner) Add(fragment string) *Joiner {
	j.fragments = append(j.fragments, fragment)
	return j
}

// Merge appends the contents of other, joined by other's delimiter and
// without other's prefix or suffix, as a single fragment. Merging a Joiner
// with no fragments has no effect. Merge panics with ErrNilJoiner when other
// is nil.
func (j *Joiner) Merge(other *Joiner) *Joiner {
	if other == nil {
		panic(ErrNilJoiner)
	}
	if len(other.fragments) == 0 {
		return j
	}
	return j.Add(strings.Join(other.fragments, other.delimiter))
}

// Len returns len(j.String()) without building the rendered string.
func (j *Joiner) Len() int {
	if len(j.fragments) == 0 {
		if j.hasEmptyValue {
			return len(j.emptyValue)
		}
		return len(j.prefix) + len(j.suffix)
	}
	n := len(j.prefix) + len(j.suffix) + (len(j.fragments)-1)*len(j.delimiter)
	for _, f := range j.fragments {
		n += len(f)
	}
	return n
}

// String renders the prefix, the fragments added so far separated by the
// delimiter, and the suffix. With no fragments it renders the empty value if
// one was set, otherwise prefix+suffix.
func (j *Joiner) String() string {
	if len(j.fragments) == 0 {
		if j.hasEmptyValue {
			return j.emptyValue
		}
		return j.prefix + j.suffix
	}

	var b strings.Builder
	b.Grow(j.Len())
	b.WriteString(j.prefix)
	for i, f := range j.fragments {
		if i > 0 {
			b.WriteString(j.delimiter)
		}
		b.WriteString(f)
	}
	b.WriteString(j.suffix)
	return b.String()
}
