package pathseq

import (
	"fmt"
	"iter"
	"path"
	"regexp"
	"strings"

	seqerrors "github.com/jacoelho/pathseq/errors"
	"github.com/jacoelho/pathseq/internal/ast"
	"github.com/jacoelho/pathseq/internal/numrange"
	"github.com/jacoelho/pathseq/internal/parser"
	"github.com/jacoelho/pathseq/internal/xiter"
)

// Sequence is a file-sequence path in the simple format: a stem, the ranges,
// and at least one file suffix, for example "render/beauty.1-100####.exr".
// Sequences are immutable; the With* methods return modified copies.
type Sequence struct {
	dir    string
	parsed ast.Parsed
}

// Parse parses a slash-separated sequence path in the simple format. The
// final path element must contain a range string; paths without one fail
// with a NotASequenceError.
func Parse(p string) (*Sequence, error) {
	dir, name := path.Split(p)
	parsed, err := parser.ParseStrict(name)
	if err != nil {
		return nil, err
	}
	return &Sequence{dir: dir, parsed: parsed}, nil
}

// Dir returns the directory portion of the path, "." when there is none.
func (s *Sequence) Dir() string { return dirString(s.dir) }

// Name returns the final path element.
func (s *Sequence) Name() string { return s.parsed.String() }

// Stem returns the name portion before the ranges and suffixes.
func (s *Sequence) Stem() string { return s.parsed.Stem() }

// Suffix returns the final file suffix, or "" when there is none.
func (s *Sequence) Suffix() string { return lastSuffix(s.parsed) }

// Suffixes returns the ordered dot-prefixed file suffixes.
func (s *Sequence) Suffixes() []string { return copySuffixes(s.parsed) }

// String returns the full sequence path.
func (s *Sequence) String() string { return s.dir + s.parsed.String() }

// WithName returns a copy with the final path element replaced. The new
// name is parsed, so it must itself be a valid sequence name.
func (s *Sequence) WithName(name string) (*Sequence, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	parsed, err := parser.ParseStrict(name)
	if err != nil {
		return nil, err
	}
	return &Sequence{dir: s.dir, parsed: parsed}, nil
}

// WithStem returns a copy with the stem replaced. The modified name is
// re-parsed, so a stem that breaks the format is rejected.
func (s *Sequence) WithStem(stem string) (*Sequence, error) {
	return s.WithName(s.parsed.WithStem(stem).String())
}

// WithSuffix returns a copy with the final suffix replaced. The empty
// string drops the final suffix; dropping the only suffix is rejected
// because the simple format requires one.
func (s *Sequence) WithSuffix(suffix string) (*Sequence, error) {
	parsed, err := s.parsed.WithSuffix(suffix)
	if err != nil {
		return nil, err
	}
	return s.WithName(parsed.String())
}

// FileNums returns one file number set per range. It fails when any range
// is a pattern without numbers.
func (s *Sequence) FileNums() ([]*FileNums, error) { return fileNums(s.parsed) }

// WithFileNums returns a copy with the file numbers replaced, one set per
// range. Pad formats and separators are kept.
func (s *Sequence) WithFileNums(nums ...*FileNums) (*Sequence, error) {
	parsed, err := withFileNums(s.parsed, nums)
	if err != nil {
		return nil, err
	}
	return &Sequence{dir: s.dir, parsed: parsed}, nil
}

// Format renders the concrete path for the given file numbers, one per
// range.
func (s *Sequence) Format(numbers ...Number) (string, error) {
	return formatPath(s.dir, s.parsed, numbers)
}

// Len returns the number of files the sequence stands for, the product of
// the range cardinalities. A sequence with a pattern range has length zero.
func (s *Sequence) Len() int { return seqLen(s.parsed) }

// HasSubsamples reports whether any range holds decimal file numbers.
func (s *Sequence) HasSubsamples() bool { return hasSubsamples(s.parsed) }

// Contains reports whether name is one of the sequence's file names.
func (s *Sequence) Contains(name string) bool { return containsName(s.parsed, name) }

// Names iterates the concrete file names in range order, the cartesian
// product of the ranges.
func (s *Sequence) Names() iter.Seq[string] { return names(s.parsed) }

// Paths iterates the concrete file paths in range order.
func (s *Sequence) Paths() iter.Seq[string] { return paths(s.dir, s.parsed) }

// Glob returns a glob pattern matching the sequence's file paths. Pattern
// ranges and concrete ranges alike become wildcards, so the glob is a
// superset of the exact file set.
func (s *Sequence) Glob() string { return s.dir + ast.Glob(s.parsed) }

// Regexp returns a compiled expression matching the sequence's file names.
// Each range is a capture group holding the rendered file number.
func (s *Sequence) Regexp() *regexp.Regexp { return compileName(s.parsed) }

// Equal reports whether both sequences have the same directory and the
// same parsed name.
func (s *Sequence) Equal(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.dir == other.dir && s.parsed.Equal(other.parsed)
}

func dirString(dir string) string {
	switch dir {
	case "":
		return "."
	case "/":
		return "/"
	}
	return strings.TrimSuffix(dir, "/")
}

func lastSuffix(p ast.Parsed) string {
	suffixes := p.Suffixes()
	if len(suffixes) == 0 {
		return ""
	}
	return suffixes[len(suffixes)-1]
}

func copySuffixes(p ast.Parsed) []string {
	suffixes := p.Suffixes()
	out := make([]string, len(suffixes))
	copy(out, suffixes)
	return out
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid name %q", name)
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("invalid name %q: contains a path separator", name)
	}
	return nil
}

func seqLen(p ast.Parsed) int {
	n := 1
	for _, r := range p.Ranges().Ranges() {
		if r.Nums() == nil {
			return 0
		}
		n *= r.Nums().Len()
	}
	return n
}

func hasSubsamples(p ast.Parsed) bool {
	for _, r := range p.Ranges().Ranges() {
		if r.HasSubsamples() {
			return true
		}
	}
	return false
}

func fileNums(p ast.Parsed) ([]*FileNums, error) {
	ranges := p.Ranges().Ranges()
	out := make([]*FileNums, len(ranges))
	for i, r := range ranges {
		if r.Nums() == nil {
			return nil, seqerrors.NewRangef("range %d of %q has no file numbers", i, p.String())
		}
		out[i] = r.Nums()
	}
	return out, nil
}

func withFileNums(p ast.Parsed, nums []*FileNums) (ast.Parsed, error) {
	old := p.Ranges()
	if len(nums) != old.Len() {
		return nil, &seqerrors.ArityError{Want: old.Len(), Got: len(nums)}
	}
	replaced := make([]*ast.PaddedRange, old.Len())
	for i, r := range old.Ranges() {
		replaced[i] = ast.NewPaddedRange(nums[i], r.PadFormat())
	}
	ranges, err := ast.NewRanges(replaced, old.Inter())
	if err != nil {
		return nil, err
	}
	return p.WithRanges(ranges), nil
}

func formatPath(dir string, p ast.Parsed, numbers []Number) (string, error) {
	ptrs := make([]*numrange.Number, len(numbers))
	for i := range numbers {
		ptrs[i] = &numbers[i]
	}
	name, err := p.Format(ptrs)
	if err != nil {
		return "", err
	}
	return dir + name, nil
}

func compileName(p ast.Parsed) *regexp.Regexp {
	return regexp.MustCompile("^" + ast.Regex(p) + "$")
}

func containsName(p ast.Parsed, name string) bool {
	re := compileName(p)
	m := re.FindStringSubmatch(name)
	if m == nil {
		return false
	}
	for i, r := range p.Ranges().Ranges() {
		if r.Nums() == nil {
			continue
		}
		group := m[re.SubexpIndex(ast.RangeGroup(i))]
		n, err := parseFileNum(group, r.PadFormat())
		if err != nil || !r.Nums().Contains(n) {
			return false
		}
	}
	return true
}

func names(p ast.Parsed) iter.Seq[string] {
	ranges := p.Ranges().Ranges()
	seqs := make([]iter.Seq[Number], len(ranges))
	for i, r := range ranges {
		if r.Nums() == nil {
			return func(yield func(string) bool) {}
		}
		seqs[i] = r.Nums().Values()
	}
	return func(yield func(string) bool) {
		for combo := range xiter.Product(seqs) {
			ptrs := make([]*numrange.Number, len(combo))
			for i := range combo {
				ptrs[i] = &combo[i]
			}
			name, err := p.Format(ptrs)
			if err != nil {
				return
			}
			if !yield(name) {
				return
			}
		}
	}
}

func paths(dir string, p ast.Parsed) iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range names(p) {
			if !yield(dir + name) {
				return
			}
		}
	}
}
