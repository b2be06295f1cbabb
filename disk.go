package pathseq

import (
	"fmt"
	"io/fs"
	"strings"

	seqerrors "github.com/jacoelho/pathseq/errors"
	"github.com/jacoelho/pathseq/internal/ast"
	"github.com/jacoelho/pathseq/internal/numrange"
)

// FindExisting parses pattern in the simple format and replaces its file
// numbers with the ones present in fsys, which must be rooted at the
// sequence's directory.
func FindExisting(fsys fs.FS, pattern string) (*Sequence, error) {
	seq, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return seq.WithExistingFiles(fsys)
}

// FindExistingLoose parses pattern in the loose format and replaces its
// file numbers with the ones present in fsys, which must be rooted at the
// sequence's directory.
func FindExistingLoose(fsys fs.FS, pattern string) (*Loose, error) {
	seq, err := ParseLoose(pattern)
	if err != nil {
		return nil, err
	}
	return seq.WithExistingFiles(fsys)
}

// WithExistingFiles returns a copy whose file numbers are the ones present
// in fsys, which must be rooted at the sequence's directory. The sequence's
// own numbers only select files through the pad formats; every file
// matching the name pattern is taken.
//
// A multi-range sequence must be complete: every combination of the
// observed per-range numbers must exist on disk, otherwise an
// IncompleteDimensionError is returned.
func (s *Sequence) WithExistingFiles(fsys fs.FS) (*Sequence, error) {
	parsed, err := reconcile(fsys, s.parsed)
	if err != nil {
		return nil, err
	}
	return &Sequence{dir: s.dir, parsed: parsed}, nil
}

// WithExistingFiles returns a copy whose file numbers are the ones present
// in fsys, which must be rooted at the sequence's directory. See
// Sequence.WithExistingFiles.
func (s *Loose) WithExistingFiles(fsys fs.FS) (*Loose, error) {
	parsed, err := reconcile(fsys, s.parsed)
	if err != nil {
		return nil, err
	}
	return &Loose{dir: s.dir, parsed: parsed}, nil
}

// reconcile scans fsys for names matching p's pattern and rebuilds the
// ranges from the rendered file numbers found there.
func reconcile(fsys fs.FS, p ast.Parsed) (ast.Parsed, error) {
	matches, err := fs.Glob(fsys, ast.Glob(p))
	if err != nil {
		return nil, err
	}

	ranges := p.Ranges().Ranges()
	re := compileName(p)
	groups := make([]int, len(ranges))
	for i := range ranges {
		groups[i] = re.SubexpIndex(ast.RangeGroup(i))
	}

	// One set of rendered numbers per range dimension.
	dims := make([]map[string]struct{}, len(ranges))
	for i := range dims {
		dims[i] = make(map[string]struct{})
	}
	matched := 0
	for _, name := range matches {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		matched++
		for i := range dims {
			dims[i][m[groups[i]]] = struct{}{}
		}
	}

	// Every combination of the observed per-dimension numbers must be an
	// actual file, or some dimension is missing files.
	want := 1
	for _, dim := range dims {
		want *= len(dim)
	}
	if matched == 0 {
		want = 0
	}
	if want != matched {
		return nil, &seqerrors.IncompleteDimensionError{Seq: p.String()}
	}

	rebuilt := make([]*ast.PaddedRange, len(ranges))
	for i, r := range ranges {
		nums, err := collectFileNums(dims[i], r.PadFormat())
		if err != nil {
			return nil, err
		}
		rebuilt[i] = ast.NewPaddedRange(nums, r.PadFormat())
	}
	out, err := ast.NewRanges(rebuilt, p.Ranges().Inter())
	if err != nil {
		return nil, err
	}
	return p.WithRanges(out), nil
}

func collectFileNums(rendered map[string]struct{}, padFormat string) (*numrange.Collection, error) {
	numbers := make([]numrange.Number, 0, len(rendered))
	for s := range rendered {
		n, err := parseFileNum(s, padFormat)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numrange.FromNumbers(numbers), nil
}

// parseFileNum converts a rendered file number back to its value, undoing
// zero padding and UV tile naming.
func parseFileNum(s, padFormat string) (Number, error) {
	if padFormat == "<UVTILE>" {
		n, ok := ast.UVTileNumber(s)
		if !ok {
			return Number{}, fmt.Errorf("invalid UV tile %q", s)
		}
		return Int(n), nil
	}

	neg := strings.HasPrefix(s, "-")
	t := strings.TrimPrefix(s, "-")
	intPart, frac, isDecimal := strings.Cut(t, ".")
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	if isDecimal {
		frac = strings.TrimRight(frac, "0")
		if frac == "" {
			frac = "0"
		}
		intPart += "." + frac
	}
	if neg && intPart != "0" && intPart != "0.0" {
		intPart = "-" + intPart
	}
	n, err := numrange.ParseNumber(intPart)
	if err != nil {
		return Number{}, err
	}
	if !n.IsDecimal() && !n.FitsInt64() {
		return Number{}, fmt.Errorf("file number %s overflows the integer domain", n)
	}
	return n, nil
}
