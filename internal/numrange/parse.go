package numrange

import (
	"strings"

	seqerrors "github.com/jacoelho/pathseq/errors"
)

// ParseCollection parses a comma-joined range string such as
// "1001-1005,1010-1020x2" into a collection with sequence semantics:
// declaration order is kept and adjacent ranges are consolidated.
//
// A single decimal literal anywhere makes the whole collection decimal.
// The empty string yields an empty collection. Errors are ParseErrors with
// columns relative to s.
func ParseCollection(s string) (*Collection, error) {
	if s == "" {
		return NewCollection(nil), nil
	}

	specs, err := scanRangeSpecs(s)
	if err != nil {
		return nil, err
	}

	decimal := false
	for _, spec := range specs {
		for _, lit := range spec.literals() {
			if strings.Contains(lit, ".") {
				decimal = true
			}
		}
	}

	ranges := make([]Progression, 0, len(specs))
	for _, spec := range specs {
		r, err := spec.build(s, decimal)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return NewCollection(ranges), nil
}

// rangeSpec is one "start", "start-end", or "start-endxstep" literal with
// the column of each component.
type rangeSpec struct {
	start, end, step          string
	startCol, endCol, stepCol int
}

func (s rangeSpec) literals() []string {
	lits := []string{s.start}
	if s.end != "" {
		lits = append(lits, s.end)
	}
	if s.step != "" {
		lits = append(lits, s.step)
	}
	return lits
}

func (s rangeSpec) build(seq string, decimal bool) (Progression, error) {
	start, err := parseAt(seq, s.start, s.startCol)
	if err != nil {
		return nil, err
	}
	end := start
	if s.end != "" {
		if end, err = parseAt(seq, s.end, s.endCol); err != nil {
			return nil, err
		}
	}
	step := FromInt64(1)
	if s.step != "" {
		if step, err = parseAt(seq, s.step, s.stepCol); err != nil {
			return nil, err
		}
	}

	if decimal {
		start, end, step = asDecimal(start), asDecimal(end), asDecimal(step)
	} else if err := s.checkInt64(seq, start, end, step); err != nil {
		return nil, err
	}
	r, err := New(start, end, step)
	if err != nil {
		col := s.stepCol
		if s.step == "" {
			col = s.startCol
		}
		return nil, seqerrors.NewParseSpan(seq, col, col+len(s.step), err.Error())
	}
	return r, nil
}

// checkInt64 rejects grammar-valid integers beyond the 64-bit file number
// domain before they reach int64 conversion, pointing at the offending
// literal.
func (s rangeSpec) checkInt64(seq string, start, end, step Number) error {
	operands := []struct {
		n   Number
		lit string
		col int
	}{
		{start, s.start, s.startCol},
		{end, s.end, s.endCol},
		{step, s.step, s.stepCol},
	}
	for _, op := range operands {
		if op.lit == "" || op.n.FitsInt64() {
			continue
		}
		return seqerrors.NewParseSpan(seq, op.col, op.col+len(op.lit), "Integer overflows 64 bits")
	}
	return nil
}

func parseAt(seq, lit string, col int) (Number, error) {
	n, err := ParseNumber(lit)
	if err != nil {
		return Number{}, seqerrors.NewParseSpan(seq, col, col+len(lit), err.Error())
	}
	return n, nil
}

func scanRangeSpecs(s string) ([]rangeSpec, error) {
	var specs []rangeSpec
	i := 0
	for {
		spec, next, err := scanRangeSpec(s, i)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
		if next == len(s) {
			return specs, nil
		}
		if s[next] != ',' {
			return nil, seqerrors.NewParse(s, next, "Expected ',' between ranges")
		}
		i = next + 1
	}
}

func scanRangeSpec(s string, i int) (rangeSpec, int, error) {
	spec := rangeSpec{startCol: i}
	lit, next, err := scanNumber(s, i, true)
	if err != nil {
		return spec, 0, err
	}
	spec.start = lit

	if next < len(s) && s[next] == '-' {
		spec.endCol = next + 1
		if spec.end, next, err = scanNumber(s, next+1, true); err != nil {
			return spec, 0, err
		}
		if next < len(s) && s[next] == 'x' {
			spec.stepCol = next + 1
			if spec.step, next, err = scanNumber(s, next+1, false); err != nil {
				return spec, 0, err
			}
		}
	}
	return spec, next, nil
}

// scanNumber scans a number lexeme starting at i and returns it with the
// offset one past its end. The sign is only consumed when signed is true.
func scanNumber(s string, i int, signed bool) (string, int, error) {
	start := i
	if signed && i < len(s) && s[i] == '-' {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if digits == 0 {
		return "", 0, seqerrors.NewParse(s, start, "Expected a number")
	}
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			fracDigits++
		}
		if fracDigits == 0 {
			return "", 0, seqerrors.NewParse(s, i-1, "Expected digits after '.'")
		}
	}
	return s[start:i], i, nil
}
