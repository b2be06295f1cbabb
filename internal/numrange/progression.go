package numrange

import (
	"iter"

	seqerrors "github.com/jacoelho/pathseq/errors"
)

// Progression is the range protocol shared by the integer and decimal
// domains: an immutable arithmetic progression with an inclusive end.
type Progression interface {
	// Start returns the first element.
	Start() Number
	// End returns the last element of the progression, not an exclusive stop.
	End() Number
	// Step returns the normalized positive step.
	Step() Number
	// Len returns the number of elements.
	Len() int
	// Contains reports whether v is an element.
	Contains(v Number) bool
	// At returns the i-th element.
	At(i int) (Number, bool)
	// Values yields the elements lazily in order.
	Values() iter.Seq[Number]
	// String renders the canonical range form.
	String() string
	// Decimal reports whether the progression is in the decimal domain.
	Decimal() bool
}

// Equal reports whether two progressions are identical: same domain, start,
// end, and step.
func Equal(a, b Progression) bool {
	if a.Decimal() != b.Decimal() {
		return false
	}
	return a.Start().Cmp(b.Start()) == 0 &&
		a.End().Cmp(b.End()) == 0 &&
		a.Step().Cmp(b.Step()) == 0
}

// New constructs a progression from numbers, choosing the domain from the
// operands: any decimal operand yields a DecimalRange. The integer domain
// is 64 bits wide; integer operands beyond it are a construction error
// rather than a silent wrap.
func New(start, end, step Number) (Progression, error) {
	if start.IsDecimal() || end.IsDecimal() || step.IsDecimal() {
		return NewDecimalRange(start, end, step)
	}
	for _, n := range []Number{start, end, step} {
		if !n.FitsInt64() {
			return nil, seqerrors.NewRangef("%s overflows the integer file number domain", n)
		}
	}
	return NewIntRange(start.Int64(), end.Int64(), step.Int64())
}

// progressionString renders a progression in canonical form: the bare start
// for singletons, "start-end" or "start-endxstep" otherwise. A two-element
// unit-step range renders as "a,b".
func progressionString(p Progression) string {
	if p.Len() == 1 {
		return p.Start().String()
	}

	result := p.Start().String() + "-" + p.End().String()
	if p.Step().Cmp(FromInt64(1)) != 0 {
		return result + "x" + p.Step().String()
	}
	if p.Len() == 2 {
		return p.Start().String() + "," + p.End().String()
	}
	return result
}
