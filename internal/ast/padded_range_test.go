package ast

import (
	"regexp"
	"testing"

	"github.com/jacoelho/pathseq/internal/numrange"
)

func mustCollection(t *testing.T, s string) *numrange.Collection {
	t.Helper()
	c, err := numrange.ParseCollection(s)
	if err != nil {
		t.Fatalf("ParseCollection(%q): %v", s, err)
	}
	return c
}

func mustNumber(t *testing.T, s string) numrange.Number {
	t.Helper()
	n, err := numrange.ParseNumber(s)
	if err != nil {
		t.Fatalf("ParseNumber(%q): %v", s, err)
	}
	return n
}

func TestPaddedRangeFormat(t *testing.T) {
	tests := []struct {
		name      string
		padFormat string
		number    string
		want      string
	}{
		{"pad to width", "####", "7", "0007"},
		{"wider than pad", "##", "1234", "1234"},
		{"negative keeps sign in front", "###", "-1", "-01"},
		{"negative wider than pad", "##", "-1", "-1"},
		{"decimal pad exact", "#.##", "1.5", "1.50"},
		{"decimal pad rounds half to even down", "##.#", "1.25", "01.2"},
		{"decimal pad rounds half to even up", "##.#", "1.35", "01.4"},
		{"decimal pad truncating fraction", "###.", "1.5", "002"},
		{"plain pad keeps fraction", "###", "1.5", "001.5"},
		{"udim", "<UDIM>", "1011", "1011"},
		{"uvtile origin", "<UVTILE>", "1001", "u1_v1"},
		{"uvtile second row", "<UVTILE>", "1012", "u2_v2"},
		{"uvtile wide u", "<UVTILE>", "1010", "u10_v1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewPaddedRange(nil, tc.padFormat)
			got := r.Format(mustNumber(t, tc.number))
			if got != tc.want {
				t.Fatalf("Format(%s) = %q, want %q", tc.number, got, tc.want)
			}
		})
	}
}

func TestPaddedRangePattern(t *testing.T) {
	tests := []struct {
		name      string
		nums      string
		padFormat string
		match     []string
		noMatch   []string
	}{
		{
			name:      "integer run",
			nums:      "1-10",
			padFormat: "##",
			match:     []string{"07", "10", "1234", "-1"},
			noMatch:   []string{"7", "ab", "1.5", "07.5"},
		},
		{
			name:      "decimal run admits fraction",
			nums:      "1-2x0.5",
			padFormat: "#",
			match:     []string{"1", "1.5", "12.25"},
			noMatch:   []string{"", "1."},
		},
		{
			name:      "explicit decimal pad requires fraction",
			nums:      "1-2x0.5",
			padFormat: "#.#",
			match:     []string{"1.5", "12.25"},
			noMatch:   []string{"1", "1.", "01.25"},
		},
		{
			name:      "uvtile",
			nums:      "",
			padFormat: "<UVTILE>",
			match:     []string{"u1_v1", "u10_v12"},
			noMatch:   []string{"1001", "u_v1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var nums *numrange.Collection
			if tc.nums != "" {
				nums = mustCollection(t, tc.nums)
			}
			r := NewPaddedRange(nums, tc.padFormat)
			re := regexp.MustCompile("^" + r.Pattern() + "$")
			for _, s := range tc.match {
				if !re.MatchString(s) {
					t.Errorf("Pattern() %q does not match %q", re, s)
				}
			}
			for _, s := range tc.noMatch {
				if re.MatchString(s) {
					t.Errorf("Pattern() %q matches %q", re, s)
				}
			}
		})
	}
}

func TestPaddedRangeString(t *testing.T) {
	r := NewPaddedRange(mustCollection(t, "1-10"), "####")
	if got, want := r.String(), "1-10####"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	pattern := NewPaddedRange(nil, "#")
	if got, want := pattern.String(), "#"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestPaddedRangeEqual(t *testing.T) {
	a := NewPaddedRange(mustCollection(t, "1-10"), "#")
	b := NewPaddedRange(mustCollection(t, "1-10"), "#")
	c := NewPaddedRange(mustCollection(t, "1-10"), "##")
	d := NewPaddedRange(nil, "#")

	if !a.Equal(b) {
		t.Error("equal ranges reported unequal")
	}
	if a.Equal(c) {
		t.Error("different pad formats reported equal")
	}
	if a.Equal(d) || !d.Equal(NewPaddedRange(nil, "#")) {
		t.Error("pattern-only comparison mismatch")
	}
}
