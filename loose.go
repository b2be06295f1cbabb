package pathseq

import (
	"iter"
	"path"
	"regexp"

	"github.com/jacoelho/pathseq/internal/ast"
	"github.com/jacoelho/pathseq/internal/parser"
)

// Loose is a file-sequence path in the loose format. The ranges may sit at
// the start of the name ("1-10#_plate.exr"), inside it ("plate.1-10#.exr"),
// or at the end ("plate.exr.1-10#"), and suffixes are optional.
type Loose struct {
	dir    string
	parsed ast.Parsed
}

// ParseLoose parses a slash-separated sequence path in the loose format.
// The final path element must contain a range string; paths without one
// fail with a NotASequenceError.
func ParseLoose(p string) (*Loose, error) {
	dir, name := path.Split(p)
	parsed, err := parser.ParseLoose(name)
	if err != nil {
		return nil, err
	}
	return &Loose{dir: dir, parsed: parsed}, nil
}

// Dir returns the directory portion of the path, "." when there is none.
func (s *Loose) Dir() string { return dirString(s.dir) }

// Name returns the final path element.
func (s *Loose) Name() string { return s.parsed.String() }

// Stem returns the name portion without separators, ranges, or suffixes.
func (s *Loose) Stem() string { return s.parsed.Stem() }

// Suffix returns the final file suffix, or "" when there is none.
func (s *Loose) Suffix() string { return lastSuffix(s.parsed) }

// Suffixes returns the ordered dot-prefixed file suffixes.
func (s *Loose) Suffixes() []string { return copySuffixes(s.parsed) }

// String returns the full sequence path.
func (s *Loose) String() string { return s.dir + s.parsed.String() }

// WithName returns a copy with the final path element replaced. The new
// name is parsed, so it must itself be a valid loose sequence name.
func (s *Loose) WithName(name string) (*Loose, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	parsed, err := parser.ParseLoose(name)
	if err != nil {
		return nil, err
	}
	return &Loose{dir: s.dir, parsed: parsed}, nil
}

// WithStem returns a copy with the stem replaced. The modified name is
// re-parsed, so its shape may change; removing the stem from
// "plate.1-10#.exr" yields the bare "1-10#.exr".
func (s *Loose) WithStem(stem string) (*Loose, error) {
	return s.WithName(s.parsed.WithStem(stem).String())
}

// WithSuffix returns a copy with the final suffix replaced. The empty
// string drops the final suffix.
func (s *Loose) WithSuffix(suffix string) (*Loose, error) {
	parsed, err := s.parsed.WithSuffix(suffix)
	if err != nil {
		return nil, err
	}
	return s.WithName(parsed.String())
}

// FileNums returns one file number set per range. It fails when any range
// is a pattern without numbers.
func (s *Loose) FileNums() ([]*FileNums, error) { return fileNums(s.parsed) }

// WithFileNums returns a copy with the file numbers replaced, one set per
// range. Pad formats and separators are kept.
func (s *Loose) WithFileNums(nums ...*FileNums) (*Loose, error) {
	parsed, err := withFileNums(s.parsed, nums)
	if err != nil {
		return nil, err
	}
	return &Loose{dir: s.dir, parsed: parsed}, nil
}

// Format renders the concrete path for the given file numbers, one per
// range.
func (s *Loose) Format(numbers ...Number) (string, error) {
	return formatPath(s.dir, s.parsed, numbers)
}

// Len returns the number of files the sequence stands for, the product of
// the range cardinalities. A sequence with a pattern range has length zero.
func (s *Loose) Len() int { return seqLen(s.parsed) }

// HasSubsamples reports whether any range holds decimal file numbers.
func (s *Loose) HasSubsamples() bool { return hasSubsamples(s.parsed) }

// Contains reports whether name is one of the sequence's file names.
func (s *Loose) Contains(name string) bool { return containsName(s.parsed, name) }

// Names iterates the concrete file names in range order, the cartesian
// product of the ranges.
func (s *Loose) Names() iter.Seq[string] { return names(s.parsed) }

// Paths iterates the concrete file paths in range order.
func (s *Loose) Paths() iter.Seq[string] { return paths(s.dir, s.parsed) }

// Glob returns a glob pattern matching the sequence's file paths.
func (s *Loose) Glob() string { return s.dir + ast.Glob(s.parsed) }

// Regexp returns a compiled expression matching the sequence's file names.
// Each range is a capture group holding the rendered file number.
func (s *Loose) Regexp() *regexp.Regexp { return compileName(s.parsed) }

// Equal reports whether both sequences have the same directory and the
// same parsed name. Two loose sequences with different shapes are never
// equal, even when their rendered paths agree.
func (s *Loose) Equal(other *Loose) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.dir == other.dir && s.parsed.Equal(other.parsed)
}
