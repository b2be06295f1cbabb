package ast

import "github.com/jacoelho/pathseq/internal/numrange"

// The loose dialect yields one of three shapes depending on where the
// ranges sit relative to the stem. All three share the same field set so
// generic code can treat them uniformly through Parsed.

// RangeStartsName is the loose parse result for names that open with the
// ranges, such as "1-10#_file.exr". The prefix separator is always empty.
type RangeStartsName struct {
	ranges   Ranges
	postfix  string
	stem     string
	suffixes []string
}

// NewRangeStartsName builds a loose range-starts-name sequence.
func NewRangeStartsName(ranges Ranges, postfix, stem string, suffixes []string) *RangeStartsName {
	return &RangeStartsName{ranges: ranges, postfix: postfix, stem: stem, suffixes: suffixes}
}

// Stem returns the name portion after the ranges.
func (s *RangeStartsName) Stem() string { return s.stem }

// Postfix returns the separator between ranges and stem, or "".
func (s *RangeStartsName) Postfix() string { return s.postfix }

// Ranges returns the padded ranges with their separators.
func (s *RangeStartsName) Ranges() Ranges { return s.ranges }

// Suffixes returns the ordered dot-prefixed file extensions.
func (s *RangeStartsName) Suffixes() []string { return s.suffixes }

// WithStem returns a copy with the stem replaced. Removing a stem that had
// suffixes also removes the postfix separator.
func (s *RangeStartsName) WithStem(stem string) Parsed {
	out := *s
	out.stem = stem
	if stem == "" && s.stem != "" && len(s.suffixes) > 0 {
		out.postfix = ""
	}
	return &out
}

// WithRanges returns a copy with the padded ranges replaced.
func (s *RangeStartsName) WithRanges(ranges Ranges) Parsed {
	out := *s
	out.ranges = ranges
	return &out
}

// WithSuffix returns a copy with the final suffix replaced.
func (s *RangeStartsName) WithSuffix(suffix string) (Parsed, error) {
	suffixes, err := replaceSuffix(s.suffixes, suffix)
	if err != nil {
		return nil, err
	}
	out := *s
	out.suffixes = suffixes
	return &out, nil
}

// Format renders a concrete file name for the given numbers.
func (s *RangeStartsName) Format(numbers []*numrange.Number) (string, error) {
	return formatWithNumbers(s, numbers)
}

// Equal reports structural equality.
func (s *RangeStartsName) Equal(other Parsed) bool {
	o, ok := other.(*RangeStartsName)
	if !ok {
		return false
	}
	return s.stem == o.stem &&
		s.postfix == o.postfix &&
		s.ranges.Equal(o.ranges) &&
		equalStrings(s.suffixes, o.suffixes)
}

// String renders the original sequence string.
func (s *RangeStartsName) String() string {
	return (&Formatter{}).Format(s)
}

func (s *RangeStartsName) render(f *Formatter) string {
	return f.renderRanges(s.ranges) +
		f.renderPostfix(s.postfix) +
		f.renderStem(s.stem) +
		f.renderSuffixes(s.suffixes)
}

// RangeInName is the loose parse result for names with the ranges between
// stem and suffixes, such as "file.1-10#.exr".
type RangeInName struct {
	stem     string
	prefix   string
	ranges   Ranges
	postfix  string
	suffixes []string
}

// NewRangeInName builds a loose range-in-name sequence.
func NewRangeInName(stem, prefix string, ranges Ranges, postfix string, suffixes []string) *RangeInName {
	return &RangeInName{stem: stem, prefix: prefix, ranges: ranges, postfix: postfix, suffixes: suffixes}
}

// Stem returns the name portion before the ranges.
func (s *RangeInName) Stem() string { return s.stem }

// Prefix returns the separator between stem and ranges, or "".
func (s *RangeInName) Prefix() string { return s.prefix }

// Postfix returns the separator between ranges and suffixes, or "".
func (s *RangeInName) Postfix() string { return s.postfix }

// Ranges returns the padded ranges with their separators.
func (s *RangeInName) Ranges() Ranges { return s.ranges }

// Suffixes returns the ordered dot-prefixed file extensions.
func (s *RangeInName) Suffixes() []string { return s.suffixes }

// WithStem returns a copy with the stem replaced. Removing the stem also
// removes the prefix separator.
func (s *RangeInName) WithStem(stem string) Parsed {
	out := *s
	out.stem = stem
	if stem == "" && s.stem != "" {
		out.prefix = ""
	}
	return &out
}

// WithRanges returns a copy with the padded ranges replaced.
func (s *RangeInName) WithRanges(ranges Ranges) Parsed {
	out := *s
	out.ranges = ranges
	return &out
}

// WithSuffix returns a copy with the final suffix replaced. Dropping the
// last remaining suffix also drops the postfix separator.
func (s *RangeInName) WithSuffix(suffix string) (Parsed, error) {
	suffixes, err := replaceSuffix(s.suffixes, suffix)
	if err != nil {
		return nil, err
	}
	out := *s
	out.suffixes = suffixes
	if len(suffixes) == 0 && len(s.suffixes) > 0 {
		out.postfix = ""
	}
	return &out, nil
}

// Format renders a concrete file name for the given numbers.
func (s *RangeInName) Format(numbers []*numrange.Number) (string, error) {
	return formatWithNumbers(s, numbers)
}

// Equal reports structural equality.
func (s *RangeInName) Equal(other Parsed) bool {
	o, ok := other.(*RangeInName)
	if !ok {
		return false
	}
	return s.stem == o.stem &&
		s.prefix == o.prefix &&
		s.postfix == o.postfix &&
		s.ranges.Equal(o.ranges) &&
		equalStrings(s.suffixes, o.suffixes)
}

// String renders the original sequence string.
func (s *RangeInName) String() string {
	return (&Formatter{}).Format(s)
}

func (s *RangeInName) render(f *Formatter) string {
	return f.renderStem(s.stem) +
		f.renderPrefix(s.prefix) +
		f.renderRanges(s.ranges) +
		f.renderPostfix(s.postfix) +
		f.renderSuffixes(s.suffixes)
}

// RangeEndsName is the loose parse result for names that close with the
// ranges, such as "file.exr.1-10#". The postfix separator is always empty.
type RangeEndsName struct {
	stem     string
	suffixes []string
	prefix   string
	ranges   Ranges
}

// NewRangeEndsName builds a loose range-ends-name sequence.
func NewRangeEndsName(stem string, suffixes []string, prefix string, ranges Ranges) *RangeEndsName {
	return &RangeEndsName{stem: stem, suffixes: suffixes, prefix: prefix, ranges: ranges}
}

// Stem returns the name portion before the suffixes.
func (s *RangeEndsName) Stem() string { return s.stem }

// Prefix returns the separator between suffixes and ranges, or "".
func (s *RangeEndsName) Prefix() string { return s.prefix }

// Ranges returns the padded ranges with their separators.
func (s *RangeEndsName) Ranges() Ranges { return s.ranges }

// Suffixes returns the ordered dot-prefixed file extensions.
func (s *RangeEndsName) Suffixes() []string { return s.suffixes }

// WithStem returns a copy with the stem replaced.
func (s *RangeEndsName) WithStem(stem string) Parsed {
	out := *s
	out.stem = stem
	return &out
}

// WithRanges returns a copy with the padded ranges replaced.
func (s *RangeEndsName) WithRanges(ranges Ranges) Parsed {
	out := *s
	out.ranges = ranges
	return &out
}

// WithSuffix returns a copy with the final suffix replaced.
func (s *RangeEndsName) WithSuffix(suffix string) (Parsed, error) {
	suffixes, err := replaceSuffix(s.suffixes, suffix)
	if err != nil {
		return nil, err
	}
	out := *s
	out.suffixes = suffixes
	return &out, nil
}

// Format renders a concrete file name for the given numbers.
func (s *RangeEndsName) Format(numbers []*numrange.Number) (string, error) {
	return formatWithNumbers(s, numbers)
}

// Equal reports structural equality.
func (s *RangeEndsName) Equal(other Parsed) bool {
	o, ok := other.(*RangeEndsName)
	if !ok {
		return false
	}
	return s.stem == o.stem &&
		s.prefix == o.prefix &&
		s.ranges.Equal(o.ranges) &&
		equalStrings(s.suffixes, o.suffixes)
}

// String renders the original sequence string.
func (s *RangeEndsName) String() string {
	return (&Formatter{}).Format(s)
}

func (s *RangeEndsName) render(f *Formatter) string {
	return f.renderStem(s.stem) +
		f.renderSuffixes(s.suffixes) +
		f.renderPrefix(s.prefix) +
		f.renderRanges(s.ranges)
}
