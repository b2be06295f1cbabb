package ast

import (
	"regexp"
	"strconv"
	"strings"

	seqerrors "github.com/jacoelho/pathseq/errors"
	"github.com/jacoelho/pathseq/internal/numrange"
)

// Formatter renders a parsed sequence field by field. Every field has a hook
// that may be replaced to produce an alternate output dialect; a nil hook
// falls back to the identity rendering. The zero value reproduces the
// original sequence string.
type Formatter struct {
	Stem       func(string) string
	Prefix     func(string) string
	Range      func(*PaddedRange) string
	InterRange func(string) string
	Postfix    func(string) string
	Suffixes   func([]string) string
}

// Format renders the parsed sequence by walking its fields in declaration
// order.
func (f *Formatter) Format(p Parsed) string {
	return p.render(f)
}

func (f *Formatter) renderStem(s string) string {
	if f.Stem != nil {
		return f.Stem(s)
	}
	return s
}

func (f *Formatter) renderPrefix(s string) string {
	if f.Prefix != nil {
		return f.Prefix(s)
	}
	return s
}

func (f *Formatter) renderRange(r *PaddedRange) string {
	if f.Range != nil {
		return f.Range(r)
	}
	return r.String()
}

func (f *Formatter) renderInterRange(s string) string {
	if f.InterRange != nil {
		return f.InterRange(s)
	}
	return s
}

func (f *Formatter) renderPostfix(s string) string {
	if f.Postfix != nil {
		return f.Postfix(s)
	}
	return s
}

func (f *Formatter) renderSuffixes(suffixes []string) string {
	if f.Suffixes != nil {
		return f.Suffixes(suffixes)
	}
	return strings.Join(suffixes, "")
}

// renderRanges splices range and inter-range renderings in source order:
// range 0, separator 0, range 1, ...
func (f *Formatter) renderRanges(r Ranges) string {
	var b strings.Builder
	for i, pr := range r.ranges {
		if i > 0 {
			b.WriteString(f.renderInterRange(r.inter[i-1]))
		}
		b.WriteString(f.renderRange(pr))
	}
	return b.String()
}

// NewGlobFormatter returns a formatter producing a glob pattern that matches
// the sequence's paths: one '*' per range, except that a range following an
// empty separator folds into the previous star.
func NewGlobFormatter() *Formatter {
	skipNext := false
	return &Formatter{
		Range: func(*PaddedRange) string {
			if skipNext {
				skipNext = false
				return ""
			}
			return "*"
		},
		InterRange: func(sep string) string {
			if sep == "" {
				skipNext = true
			}
			return sep
		},
	}
}

// NewRegexFormatter returns a formatter producing a regex pattern with one
// named group per range ("range0", "range1", ...). Literal fields are
// escaped.
func NewRegexFormatter() *Formatter {
	i := 0
	return &Formatter{
		Stem:   regexp.QuoteMeta,
		Prefix: regexp.QuoteMeta,
		Range: func(r *PaddedRange) string {
			group := "(?P<" + RangeGroup(i) + ">" + r.Pattern() + ")"
			i++
			return group
		},
		InterRange: regexp.QuoteMeta,
		Postfix:    regexp.QuoteMeta,
		Suffixes: func(suffixes []string) string {
			return regexp.QuoteMeta(strings.Join(suffixes, ""))
		},
	}
}

// RangeGroup returns the regex group name for the i-th range.
func RangeGroup(i int) string {
	return "range" + strconv.Itoa(i)
}

// newNumberFormatter returns a formatter substituting one number per range;
// a nil number keeps the range's literal pad format.
func newNumberFormatter(numbers []*numrange.Number) *Formatter {
	i := 0
	return &Formatter{
		Range: func(r *PaddedRange) string {
			n := numbers[i]
			i++
			if n == nil {
				return r.String()
			}
			return r.Format(*n)
		},
	}
}

// formatWithNumbers checks the arity up front, then renders the sequence
// with each number spliced onto its range.
func formatWithNumbers(p Parsed, numbers []*numrange.Number) (string, error) {
	if got, want := len(numbers), p.Ranges().Len(); got != want {
		return "", &seqerrors.ArityError{Want: want, Got: got}
	}
	return newNumberFormatter(numbers).Format(p), nil
}

// Glob renders the glob pattern matching the parsed sequence's paths.
func Glob(p Parsed) string {
	return NewGlobFormatter().Format(p)
}

// Regex renders the regex pattern matching the parsed sequence's paths, with
// one named capture group per range.
func Regex(p Parsed) string {
	return NewRegexFormatter().Format(p)
}
