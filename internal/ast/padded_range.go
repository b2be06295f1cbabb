// Package ast holds the immutable parsed representation of a sequence
// string and the formatters that render it back out.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacoelho/pathseq/internal/numrange"
)

// Pad format markers that are not plain '#' runs.
const (
	padUDIM   = "<UDIM>"
	padUVTILE = "<UVTILE>"
)

// PaddedRange pairs a file number collection with the pad format describing
// how each number renders inside a file name. A nil collection means the
// range is a pure pattern: the serialized form has no numbers, only the pad
// marker.
//
// A padded range built from source text keeps the range string as written,
// so serializing a parsed sequence reproduces its original spelling even
// when the collection's canonical form differs ("1-10x2" consolidates to
// the elements 1 through 9, but still renders "1-10x2").
type PaddedRange struct {
	nums      *numrange.Collection
	padFormat string
	literal   string
}

// NewPaddedRange builds a padded range rendering the collection's canonical
// form. nums may be nil for pattern-only ranges.
func NewPaddedRange(nums *numrange.Collection, padFormat string) *PaddedRange {
	return &PaddedRange{nums: nums, padFormat: padFormat}
}

// NewPaddedRangeLiteral builds a padded range that remembers the range
// string as written and renders it verbatim.
func NewPaddedRangeLiteral(nums *numrange.Collection, padFormat, literal string) *PaddedRange {
	return &PaddedRange{nums: nums, padFormat: padFormat, literal: literal}
}

// Nums returns the file number collection, or nil for pattern-only ranges.
func (r *PaddedRange) Nums() *numrange.Collection { return r.nums }

// PadFormat returns the pad format marker.
func (r *PaddedRange) PadFormat() string { return r.padFormat }

// HasSubsamples reports whether the range holds decimal file numbers.
func (r *PaddedRange) HasSubsamples() bool {
	return r.nums != nil && r.nums.HasSubsamples()
}

// Equal reports whether two padded ranges hold the same numbers and format.
func (r *PaddedRange) Equal(other *PaddedRange) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.padFormat != other.padFormat {
		return false
	}
	if r.nums == nil || other.nums == nil {
		return r.nums == other.nums
	}
	return r.nums.Equal(other.nums)
}

// String renders the serialized form: the range string followed by the pad
// format. The source spelling wins over the canonical form when the range
// was parsed from text.
func (r *PaddedRange) String() string {
	if r.literal != "" {
		return r.literal + r.padFormat
	}
	if r.nums == nil {
		return r.padFormat
	}
	return r.nums.String() + r.padFormat
}

// Format renders the given number using the range's padding rules.
//
// A '#' run zero-pads the integral digits to the run length. A "head.tail"
// run quantizes to len(tail) decimal places with round-half-to-even before
// padding. <UDIM> behaves as a four-digit run. <UVTILE> maps the UDIM tile
// number to its "u1_v1" coordinate form.
func (r *PaddedRange) Format(n numrange.Number) string {
	if r.padFormat == padUVTILE {
		return formatUVTile(n.Int64())
	}

	padFormat := r.padFormat
	if padFormat == padUDIM {
		padFormat = "####"
	}

	if head, tail, ok := strings.Cut(padFormat, "."); ok {
		return padDecimal(n, len(head), len(tail))
	}
	return pad(n, len(padFormat))
}

// Pattern returns a regex body matching any number the pad format could
// render. Digit runs expand to an alternation of positive and negative
// fixed-width patterns; a decimal tail is only admitted when the range
// actually holds decimal numbers, so integer-only ranges stay strict.
func (r *PaddedRange) Pattern() string {
	if r.padFormat == padUVTILE {
		return `u\d+_v\d+`
	}

	padFormat := r.padFormat
	if padFormat == padUDIM {
		padFormat = "####"
	}

	var head, tailRe string
	if h, tail, ok := strings.Cut(padFormat, "."); ok {
		head = h
		tailRe = `\.[0-9]*` + strings.Repeat("[0-9]", len(tail))
	} else {
		head = padFormat
		if r.HasSubsamples() {
			tailRe = `(\.[0-9]+)?`
		}
	}

	positive := `([1-9][0-9]*)?` + strings.Repeat("[0-9]", len(head))
	negative := `-([1-9][0-9]*)?` + strings.Repeat("[0-9]", len(head)-1)
	return "(" + positive + "|" + negative + ")" + tailRe
}

// formatUVTile renders the (u, v) tile coordinate for a UDIM tile number;
// the inverse relation is 1000 + v*10 + (u+1).
func formatUVTile(n int64) string {
	u := floorMod(n-1, 10)
	v := floorDiv(n-1000-u-1, 10)
	return fmt.Sprintf("u%d_v%d", u+1, v+1)
}

// UVTileNumber converts a rendered "u2_v3" coordinate back to its UDIM tile
// number. It reports false when s is not a tile coordinate.
func UVTileNumber(s string) (int64, bool) {
	var u, v int64
	rest, ok := strings.CutPrefix(s, "u")
	if !ok {
		return 0, false
	}
	uStr, vStr, ok := strings.Cut(rest, "_v")
	if !ok {
		return 0, false
	}
	u, err := strconv.ParseInt(uStr, 10, 64)
	if err != nil {
		return 0, false
	}
	v, err = strconv.ParseInt(vStr, 10, 64)
	if err != nil {
		return 0, false
	}
	return 1000 + (v-1)*10 + u, true
}

// pad zero-pads the integral part of n to width digits, keeping any existing
// fraction untouched.
func pad(n numrange.Number, width int) string {
	intPart, frac, _ := strings.Cut(n.String(), ".")
	if frac == "" {
		return zfill(intPart, width)
	}
	return zfill(intPart, width) + "." + frac
}

// padDecimal quantizes n to the given decimal places with IEEE-754 default
// rounding (half to even), then zero-pads both components.
func padDecimal(n numrange.Number, width, places int) string {
	q := n.Quantize(places)
	if places == 0 {
		intPart, _, _ := strings.Cut(q.String(), ".")
		return zfill(intPart, width)
	}
	return zfill(q.Rat().FloatString(places), width+places+1)
}

// zfill left-pads with zeros to the given width; a leading sign stays in
// front of the padding, as in "-0001".
func zfill(s string, width int) string {
	if len(s) >= width {
		return s
	}
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	return sign + strings.Repeat("0", width-len(sign)-len(s)) + s
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
