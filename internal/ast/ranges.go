package ast

import "fmt"

// Ranges couples a sequence's padded ranges with the literal separator text
// between consecutive ranges. Invariant: len(inter) == len(ranges) - 1
// (both zero for an empty value).
type Ranges struct {
	ranges []*PaddedRange
	inter  []string
}

// NewRanges builds a Ranges value, enforcing the separator-count invariant.
func NewRanges(ranges []*PaddedRange, inter []string) (Ranges, error) {
	if want := max(len(ranges)-1, 0); len(inter) != want {
		return Ranges{}, fmt.Errorf("got %d inter-range separators for %d ranges, want %d", len(inter), len(ranges), want)
	}
	return Ranges{ranges: ranges, inter: inter}, nil
}

// Ranges returns the member padded ranges. The slice must not be mutated.
func (r Ranges) Ranges() []*PaddedRange { return r.ranges }

// Inter returns the inter-range separators. The slice must not be mutated.
func (r Ranges) Inter() []string { return r.inter }

// Len returns the number of padded ranges.
func (r Ranges) Len() int { return len(r.ranges) }

// Equal reports whether two values hold equal ranges and separators.
func (r Ranges) Equal(other Ranges) bool {
	if len(r.ranges) != len(other.ranges) {
		return false
	}
	for i, pr := range r.ranges {
		if !pr.Equal(other.ranges[i]) {
			return false
		}
	}
	for i, sep := range r.inter {
		if sep != other.inter[i] {
			return false
		}
	}
	return true
}

// String renders ranges and separators interleaved, in literal form.
func (r Ranges) String() string {
	return (&Formatter{}).renderRanges(r)
}
