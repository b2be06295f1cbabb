package numrange

import (
	"iter"
	"slices"
	"strings"
)

// Collection is an ordered tuple of consolidated progressions. All member
// progressions share one numeric domain.
type Collection struct {
	decimal bool
	ranges  []Progression
}

// NewCollection builds a collection from progressions in declaration order,
// consolidating adjacent ranges that form a single progression.
func NewCollection(ranges []Progression) *Collection {
	consolidated := consolidate(ranges)
	decimal := false
	if len(consolidated) > 0 {
		decimal = consolidated[0].Decimal()
	}
	return &Collection{decimal: decimal, ranges: consolidated}
}

// FromNumbers builds a collection with set semantics: the numbers are sorted
// and deduplicated, grouped into maximal runs sharing one step, then
// consolidated. Any decimal number makes the whole collection decimal.
// Integral numbers must fit the 64-bit domain; out-of-domain values panic.
func FromNumbers(numbers []Number) *Collection {
	sorted := slices.Clone(numbers)
	slices.SortFunc(sorted, Number.Cmp)
	sorted = slices.CompactFunc(sorted, func(a, b Number) bool { return a.Cmp(b) == 0 })

	decimal := false
	for _, n := range sorted {
		if n.IsDecimal() {
			decimal = true
			break
		}
	}
	if decimal {
		for i, n := range sorted {
			sorted[i] = asDecimal(n)
		}
	}

	return NewCollection(groupRuns(sorted))
}

// FromInts builds an integer collection from the given values.
func FromInts(values []int64) *Collection {
	numbers := make([]Number, len(values))
	for i, v := range values {
		numbers[i] = FromInt64(v)
	}
	return FromNumbers(numbers)
}

// groupRuns splits sorted unique numbers into maximal runs sharing one step.
func groupRuns(sorted []Number) []Progression {
	if len(sorted) == 0 {
		return nil
	}

	var runs []Progression
	start := sorted[0]
	previous := sorted[0]
	var step Number
	haveStep := false

	for _, current := range sorted[1:] {
		delta := current.Sub(previous)
		if haveStep && delta.Cmp(step) != 0 {
			runs = appendRun(runs, start, previous, step)
			start = current
			haveStep = false
		} else if !haveStep {
			step = delta
			haveStep = true
		}
		previous = current
	}

	if haveStep {
		runs = appendRun(runs, start, previous, step)
	} else {
		runs = appendRun(runs, start, previous, FromInt64(1))
	}
	return runs
}

func appendRun(runs []Progression, start, end, step Number) []Progression {
	r, err := New(start, end, step)
	if err != nil {
		// Runs are built from sorted unique values, so the step is never
		// zero; only out-of-domain integers reach here.
		panic(err)
	}
	return append(runs, r)
}

// consolidate merges ranges with a forward single-pass greedy scan: adjacent
// equal-step ranges become one, a contiguous range steals at most one leading
// element from its successor, and two adjacent singletons pair up into a
// stepped range in anticipation of further singletons.
func consolidate(ranges []Progression) []Progression {
	var result []Progression
	for _, next := range ranges {
		if next.Len() == 0 {
			continue
		}
		if len(result) == 0 {
			result = append(result, next)
			continue
		}

		last := result[len(result)-1]
		difference := next.Start().Sub(last.End())
		if difference.Cmp(last.Step()) == 0 {
			if last.Step().Cmp(next.Step()) == 0 {
				result[len(result)-1] = mustRange(last.Start(), next.End(), last.Step())
				continue
			}

			// Move one element from the front of next into last; order of
			// iteration is unchanged.
			result[len(result)-1] = mustRange(last.Start(), next.Start(), last.Step())
			next = mustRange(next.Start().Add(next.Step()), next.End(), next.Step())
			if next.Len() == 0 {
				continue
			}
		} else if last.Len() == 1 && next.Len() == 1 && difference.Sign() != 0 {
			result[len(result)-1] = mustRange(last.Start(), next.Start(), difference)
			continue
		}

		result = append(result, next)
	}
	return result
}

func mustRange(start, end, step Number) Progression {
	r, err := New(start, end, step)
	if err != nil {
		panic(err)
	}
	return r
}

// Decimal reports whether the collection is in the decimal domain.
func (c *Collection) Decimal() bool { return c.decimal }

// Ranges returns the member progressions. The slice must not be mutated.
func (c *Collection) Ranges() []Progression { return c.ranges }

// Len returns the total number of elements across member ranges.
func (c *Collection) Len() int {
	total := 0
	for _, r := range c.ranges {
		total += r.Len()
	}
	return total
}

// Contains reports whether v is an element of any member range.
func (c *Collection) Contains(v Number) bool {
	for _, r := range c.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// At returns the i-th element, scanning ranges and subtracting lengths.
func (c *Collection) At(i int) (Number, bool) {
	if i < 0 {
		return Number{}, false
	}
	for _, r := range c.ranges {
		n := r.Len()
		if i < n {
			return r.At(i)
		}
		i -= n
	}
	return Number{}, false
}

// Values yields every element lazily, range by range.
func (c *Collection) Values() iter.Seq[Number] {
	return func(yield func(Number) bool) {
		for _, r := range c.ranges {
			for v := range r.Values() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Equal reports whether two collections hold identical ranges in the same
// order.
func (c *Collection) Equal(other *Collection) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.ranges) != len(other.ranges) || c.decimal != other.decimal {
		return false
	}
	for i, r := range c.ranges {
		if !Equal(r, other.ranges[i]) {
			return false
		}
	}
	return true
}

// HasSubsamples reports whether the collection holds decimal file numbers.
func (c *Collection) HasSubsamples() bool {
	return c.decimal && len(c.ranges) > 0
}

// String renders the canonical comma-joined form.
func (c *Collection) String() string {
	parts := make([]string, len(c.ranges))
	for i, r := range c.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
