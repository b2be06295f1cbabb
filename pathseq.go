// Package pathseq parses, manipulates, and renders file-sequence paths such
// as "render/beauty.1-100####.exr". A sequence path stands for a whole set of
// numbered files: the range notation describes the file numbers and the pad
// format describes how each number is written into a name.
//
// Two grammars are supported. Parse accepts the simple format, where a name
// is a stem, the ranges, and at least one file suffix, separated by '.' or
// '_'. ParseLoose accepts free-form names where the ranges may sit at the
// start, middle, or end of the name.
//
// File numbers are exact. Decimal subsample numbers such as "1.5" never go
// through binary floating point, so ranges like "1-2x0.1" hold exactly the
// values they print.
package pathseq

import (
	"github.com/jacoelho/pathseq/internal/numrange"
)

// Number is a single file number. It is either integral or decimal; the two
// domains stay distinct through arithmetic and formatting.
type Number = numrange.Number

// FileNums is an ordered set of file numbers expressed as stepped ranges,
// for example "1-10x2,20,30-40".
type FileNums = numrange.Collection

// Int returns the integral file number v.
func Int(v int64) Number {
	return numrange.FromInt64(v)
}

// ParseNumber parses a single file number such as "42" or "-1.25".
func ParseNumber(s string) (Number, error) {
	return numrange.ParseNumber(s)
}

// ParseFileNums parses a range string such as "1-10x2,20" into a file
// number set.
func ParseFileNums(s string) (*FileNums, error) {
	return numrange.ParseCollection(s)
}

// FileNumsFromInts builds a file number set from integral values. The
// values are sorted, deduplicated, and consolidated into ranges.
func FileNumsFromInts(values ...int64) *FileNums {
	return numrange.FromInts(values)
}

// FileNumsFromNumbers builds a file number set from the given numbers. The
// values are sorted, deduplicated, and consolidated into ranges. A single
// decimal value promotes the whole set to the decimal domain. Integral
// values must fit the 64-bit domain.
func FileNumsFromNumbers(values ...Number) *FileNums {
	return numrange.FromNumbers(values)
}
