package ast

import (
	"fmt"
	"strings"

	"github.com/jacoelho/pathseq/internal/numrange"
)

// Parsed is the interface shared by the strict sequence and the three loose
// variants, so formatters and the public API can operate on any of them.
type Parsed interface {
	// Stem returns the name portion without separators, ranges, or suffixes.
	Stem() string
	// Suffixes returns the ordered dot-prefixed file extensions.
	Suffixes() []string
	// Ranges returns the padded ranges with their separators.
	Ranges() Ranges
	// WithStem returns a copy with the stem replaced.
	WithStem(stem string) Parsed
	// WithRanges returns a copy with the padded ranges replaced.
	WithRanges(ranges Ranges) Parsed
	// WithSuffix returns a copy with the final suffix replaced; an empty
	// suffix drops it.
	WithSuffix(suffix string) (Parsed, error)
	// Format renders a concrete name with one number per range; nil leaves
	// that range's pad format literal.
	Format(numbers []*numrange.Number) (string, error)
	// Equal reports structural equality with another parsed sequence.
	Equal(other Parsed) bool
	// String renders the original sequence form.
	String() string

	render(f *Formatter) string
}

// Sequence is the strict-dialect parse result: the ranges sit between the
// stem and the suffixes.
type Sequence struct {
	stem     string
	prefix   string
	ranges   Ranges
	suffixes []string
}

// NewSequence builds a strict parsed sequence.
func NewSequence(stem, prefix string, ranges Ranges, suffixes []string) *Sequence {
	return &Sequence{stem: stem, prefix: prefix, ranges: ranges, suffixes: suffixes}
}

// Stem returns the sequence name without separators, ranges, or suffixes.
func (s *Sequence) Stem() string { return s.stem }

// Prefix returns the separator between stem and ranges, or "".
func (s *Sequence) Prefix() string { return s.prefix }

// Ranges returns the padded ranges with their separators.
func (s *Sequence) Ranges() Ranges { return s.ranges }

// Suffixes returns the ordered dot-prefixed file extensions.
func (s *Sequence) Suffixes() []string { return s.suffixes }

// WithStem returns a copy with the stem replaced. Removing the stem also
// removes the prefix separator.
func (s *Sequence) WithStem(stem string) Parsed {
	out := *s
	out.stem = stem
	if stem == "" && s.stem != "" {
		out.prefix = ""
	}
	return &out
}

// WithRanges returns a copy with the padded ranges replaced.
func (s *Sequence) WithRanges(ranges Ranges) Parsed {
	out := *s
	out.ranges = ranges
	return &out
}

// WithSuffix returns a copy with the final suffix replaced. The new suffix
// must start with "."; the empty string drops the final suffix instead.
func (s *Sequence) WithSuffix(suffix string) (Parsed, error) {
	suffixes, err := replaceSuffix(s.suffixes, suffix)
	if err != nil {
		return nil, err
	}
	out := *s
	out.suffixes = suffixes
	return &out, nil
}

// Format renders a concrete file name for the given numbers.
func (s *Sequence) Format(numbers []*numrange.Number) (string, error) {
	return formatWithNumbers(s, numbers)
}

// Equal reports structural equality.
func (s *Sequence) Equal(other Parsed) bool {
	o, ok := other.(*Sequence)
	if !ok {
		return false
	}
	return s.stem == o.stem &&
		s.prefix == o.prefix &&
		s.ranges.Equal(o.ranges) &&
		equalStrings(s.suffixes, o.suffixes)
}

// String renders the original sequence string.
func (s *Sequence) String() string {
	return (&Formatter{}).Format(s)
}

func (s *Sequence) render(f *Formatter) string {
	return f.renderStem(s.stem) +
		f.renderPrefix(s.prefix) +
		f.renderRanges(s.ranges) +
		f.renderSuffixes(s.suffixes)
}

// replaceSuffix swaps the final suffix for the given one, splitting a
// multi-part suffix such as ".tar.gz" into its components. An empty suffix
// drops the final one.
func replaceSuffix(suffixes []string, suffix string) ([]string, error) {
	if suffix == "" {
		if len(suffixes) == 0 {
			return suffixes, nil
		}
		return suffixes[:len(suffixes)-1], nil
	}
	if !strings.HasPrefix(suffix, ".") || suffix == "." {
		return nil, fmt.Errorf("invalid suffix %q", suffix)
	}

	out := append([]string(nil), suffixes[:max(len(suffixes)-1, 0)]...)
	for _, part := range strings.Split(suffix[1:], ".") {
		out = append(out, "."+part)
	}
	return out, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
