package numrange

import (
	"iter"

	seqerrors "github.com/jacoelho/pathseq/errors"
)

// IntRange is an arithmetic progression over int64 values.
type IntRange struct {
	start int64
	end   int64
	stop  int64
	step  int64
}

// NewIntRange constructs an integer progression.
//
// A negative step swaps the bounds and is negated, so the stored step is
// always positive. The end is rounded down to the last element reachable from
// the start; a start beyond the end yields an empty range.
func NewIntRange(start, end, step int64) (*IntRange, error) {
	if step == 0 {
		return nil, seqerrors.NewRangef("step must not be zero")
	}
	if step < 0 {
		start, end = end, start
		step = -step
	}

	var stop int64
	switch {
	case start <= end:
		// Round the end down to the last element reachable from the start.
		// The end is inclusive, so a single value still iterates once.
		end -= (end - start) % step
		stop = end + step
	default:
		stop = end
	}

	return &IntRange{start: start, end: end, stop: stop, step: step}, nil
}

// Single returns the one-element range holding v.
func Single(v int64) *IntRange {
	r, _ := NewIntRange(v, v, 1)
	return r
}

// Start returns the first element.
func (r *IntRange) Start() Number { return FromInt64(r.start) }

// End returns the last element.
func (r *IntRange) End() Number { return FromInt64(r.end) }

// Step returns the normalized positive step.
func (r *IntRange) Step() Number { return FromInt64(r.step) }

// Decimal reports the numeric domain; always false for IntRange.
func (r *IntRange) Decimal() bool { return false }

// Len returns the number of elements.
func (r *IntRange) Len() int {
	if r.stop <= r.start {
		return 0
	}
	return int((r.stop - r.start + r.step - 1) / r.step)
}

// Contains reports whether v is an element of the progression.
// Membership is by value, so the decimal 5.0 is an element of 1-10.
// Integers beyond the 64-bit domain are never elements.
func (r *IntRange) Contains(v Number) bool {
	if !v.FitsInt64() {
		return false
	}
	i := v.Int64()
	if i < r.start || i >= r.stop {
		return false
	}
	return (i-r.start)%r.step == 0
}

// At returns the i-th element.
func (r *IntRange) At(i int) (Number, bool) {
	if i < 0 || i >= r.Len() {
		return Number{}, false
	}
	return FromInt64(r.start + int64(i)*r.step), true
}

// Values yields the elements lazily in order.
func (r *IntRange) Values() iter.Seq[Number] {
	return func(yield func(Number) bool) {
		for v := r.start; v < r.stop; v += r.step {
			if !yield(FromInt64(v)) {
				return
			}
		}
	}
}

// String renders the canonical range form.
func (r *IntRange) String() string {
	return progressionString(r)
}
