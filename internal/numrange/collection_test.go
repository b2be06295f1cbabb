package numrange

import (
	"slices"
	"testing"

	seqerrors "github.com/jacoelho/pathseq/errors"
)

func mustParse(t *testing.T, s string) *Collection {
	t.Helper()
	c, err := ParseCollection(s)
	if err != nil {
		t.Fatalf("ParseCollection(%q): %v", s, err)
	}
	return c
}

func TestParseCollection(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantLen int
	}{
		{input: "", want: "", wantLen: 0},
		{input: "5", want: "5", wantLen: 1},
		{input: "1-10", want: "1-10", wantLen: 10},
		{input: "1-10x2", want: "1-9x2", wantLen: 5},
		{input: "1001-1005,1010-1020x2", want: "1001-1005,1010-1020x2", wantLen: 11},
		{input: "1,2,4", want: "1,2,4", wantLen: 3},
		{input: "1,2,3", want: "1-3", wantLen: 3},
		{input: "-5--1", want: "-5--1", wantLen: 5},
		{input: "10-1", want: "10-1", wantLen: 0},
		{input: "1-2x0.5", want: "1-2x0.5", wantLen: 3},
		{input: "1-3,1-3", want: "1-3,1-3", wantLen: 6},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			c := mustParse(t, tc.input)
			if got := c.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if got := c.Len(); got != tc.wantLen {
				t.Errorf("Len() = %d, want %d", got, tc.wantLen)
			}
		})
	}
}

func TestParseCollectionDecimalPromotion(t *testing.T) {
	c := mustParse(t, "1-3,5-6x0.5")
	if !c.Decimal() {
		t.Fatal("one decimal literal did not promote the collection")
	}
	for _, r := range c.Ranges() {
		if !r.Decimal() {
			t.Errorf("range %s stayed integral", r)
		}
	}
}

func TestParseCollectionErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantCol int
	}{
		{"a", 0},
		{"1-", 2},
		{"1-10x", 5},
		{"1,,2", 2},
		{"1 2", 1},
		{"1-10x0", 5},
		{"1.", 1},
		{"01", 0},
		{"9223372036854775808", 0},
		{"1-9223372036854775808", 2},
		{"1-100x9223372036854775808", 6},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseCollection(tc.input)
			parseErr, ok := seqerrors.AsParse(err)
			if !ok {
				t.Fatalf("ParseCollection(%q) = %v, want ParseError", tc.input, err)
			}
			if parseErr.Column != tc.wantCol {
				t.Errorf("Column = %d, want %d\n%v", parseErr.Column, tc.wantCol, err)
			}
		})
	}
}

func TestParseCollectionBigDecimal(t *testing.T) {
	// The 64-bit limit binds the integer domain only; decimal collections
	// hold arbitrary-precision values.
	c := mustParse(t, "9223372036854775808-9223372036854775809x0.5")
	if !c.Decimal() {
		t.Fatal("collection stayed integral")
	}
	if got := c.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestFromInts(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   string
	}{
		{"contiguous", []int64{1, 2, 3}, "1-3"},
		{"stepped", []int64{2, 4, 6}, "2-6x2"},
		{"negative", []int64{-3, -2, -1}, "-3--1"},
		{"unsorted input", []int64{3, 1, 2}, "1-3"},
		{"duplicates", []int64{1, 1, 2}, "1,2"},
		{"two values pair up", []int64{1, 5}, "1-5x4"},
		{"trailing singleton kept", []int64{1, 2, 4}, "1,2,4"},
		{"mixed runs", []int64{1, 2, 3, 10, 20, 30}, "1-3,10-30x10"},
		{"single", []int64{7}, "7"},
		{"empty", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromInts(tc.values).String(); got != tc.want {
				t.Fatalf("FromInts(%v) = %q, want %q", tc.values, got, tc.want)
			}
		})
	}
}

func TestFromNumbersDecimalPromotion(t *testing.T) {
	c := FromNumbers([]Number{FromInt64(1), num(t, "1.5"), FromInt64(2)})
	if got, want := c.String(), "1-2x0.5"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if !c.HasSubsamples() {
		t.Error("HasSubsamples() = false for decimal members")
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	// Parsing the canonical rendering reproduces the collection.
	for _, s := range []string{"1-10", "1001-1005,1010-1020x2", "1,2,4", "1-2x0.5"} {
		c := mustParse(t, s)
		again := mustParse(t, c.String())
		if !c.Equal(again) {
			t.Errorf("round trip of %q: %q != %q", s, c, again)
		}
	}
}

func TestCollectionAccessors(t *testing.T) {
	c := mustParse(t, "1-3,10-30x10")

	want := []string{"1", "2", "3", "10", "20", "30"}
	var got []string
	for v := range c.Values() {
		got = append(got, v.String())
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}

	for i, w := range want {
		v, ok := c.At(i)
		if !ok || v.String() != w {
			t.Errorf("At(%d) = %q, %v, want %q", i, v.String(), ok, w)
		}
	}
	if _, ok := c.At(6); ok {
		t.Error("At(6) succeeded past the end")
	}

	if !c.Contains(FromInt64(20)) || c.Contains(FromInt64(15)) {
		t.Error("Contains mismatch")
	}
}

func TestCollectionEqual(t *testing.T) {
	if !mustParse(t, "1-3").Equal(FromInts([]int64{1, 2, 3})) {
		t.Error("equal collections reported unequal")
	}
	if mustParse(t, "1-3").Equal(mustParse(t, "1-4")) {
		t.Error("different collections reported equal")
	}
	if mustParse(t, "1-3").Equal(mustParse(t, "1-3x0.5")) {
		t.Error("different domains reported equal")
	}
}

func TestHasSubsamples(t *testing.T) {
	if mustParse(t, "1-10").HasSubsamples() {
		t.Error("integer collection reports subsamples")
	}
	if !mustParse(t, "1-10x0.5").HasSubsamples() {
		t.Error("decimal collection reports no subsamples")
	}
	if mustParse(t, "").HasSubsamples() {
		t.Error("empty collection reports subsamples")
	}
}
