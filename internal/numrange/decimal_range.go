package numrange

import (
	"iter"
	"math/big"

	seqerrors "github.com/jacoelho/pathseq/errors"
)

// DecimalRange is an arithmetic progression over exact decimal values.
//
// All bookkeeping is rational arithmetic, so steps such as 0.1 behave
// exactly; binary floating point is never consulted.
type DecimalRange struct {
	start Number
	end   Number
	stop  Number
	step  Number
}

// NewDecimalRange constructs a decimal progression with the same
// normalization rules as NewIntRange. A zero step is a construction error.
func NewDecimalRange(start, end, step Number) (*DecimalRange, error) {
	if step.Sign() == 0 {
		return nil, seqerrors.NewRangef("step must not be zero")
	}
	if step.Sign() < 0 {
		start, end = end, start
		step = step.Neg()
	}

	var stop Number
	if start.Cmp(end) <= 0 {
		end = end.Sub(remainder(end.Sub(start), step))
		stop = end.Add(step)
	} else {
		stop = end
	}

	return &DecimalRange{
		start: asDecimal(start),
		end:   asDecimal(end),
		stop:  asDecimal(stop),
		step:  asDecimal(step),
	}, nil
}

// remainder returns v mod step for positive step, with the result in
// [0, step), computed exactly. The floor stays in big.Int arithmetic so
// quotients beyond int64 keep their value.
func remainder(v, step Number) Number {
	q := new(big.Rat).Quo(v.Rat(), step.Rat())
	floor := new(big.Int).Quo(q.Num(), q.Denom())
	if q.Sign() < 0 && new(big.Int).Rem(q.Num(), q.Denom()).Sign() != 0 {
		floor.Sub(floor, big.NewInt(1))
	}
	whole := new(big.Rat).Mul(step.Rat(), new(big.Rat).SetInt(floor))
	return v.Sub(Number{rat: whole, dec: step.dec})
}

func asDecimal(n Number) Number {
	return Number{rat: n.Rat(), dec: true}
}

// Start returns the first element.
func (r *DecimalRange) Start() Number { return r.start }

// End returns the last element.
func (r *DecimalRange) End() Number { return r.end }

// Step returns the normalized positive step.
func (r *DecimalRange) Step() Number { return r.step }

// Decimal reports the numeric domain; always true for DecimalRange.
func (r *DecimalRange) Decimal() bool { return true }

// Len returns the number of elements, computed by exact division of the
// start-to-stop distance by the step.
func (r *DecimalRange) Len() int {
	if r.start.Cmp(r.stop) >= 0 {
		return 0
	}
	q := new(big.Rat).Quo(r.stop.Sub(r.start).Rat(), r.step.Rat())
	n := new(big.Int).Quo(q.Num(), q.Denom())
	if q.IsInt() {
		return int(n.Int64())
	}
	// The stop is never itself a member, so a fractional quotient still
	// admits the element at floor(q).
	return int(n.Int64()) + 1
}

// Contains reports whether v is an element: v must lie inside the bounds and
// (v - start) / step must be a whole number.
func (r *DecimalRange) Contains(v Number) bool {
	if v.Cmp(r.start) < 0 || v.Cmp(r.stop) >= 0 {
		return false
	}
	q := new(big.Rat).Quo(v.Sub(r.start).Rat(), r.step.Rat())
	return q.IsInt()
}

// At returns the i-th element.
func (r *DecimalRange) At(i int) (Number, bool) {
	if i < 0 || i >= r.Len() {
		return Number{}, false
	}
	return r.start.Add(r.step.MulInt64(int64(i))), true
}

// Values yields the elements lazily in order.
func (r *DecimalRange) Values() iter.Seq[Number] {
	return func(yield func(Number) bool) {
		for v := r.start; v.Cmp(r.stop) < 0; v = v.Add(r.step) {
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the canonical range form.
func (r *DecimalRange) String() string {
	return progressionString(r)
}
