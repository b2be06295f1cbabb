package ast

import (
	"errors"
	"regexp"
	"testing"

	seqerrors "github.com/jacoelho/pathseq/errors"
	"github.com/jacoelho/pathseq/internal/numrange"
)

func mustRanges(t *testing.T, ranges []*PaddedRange, inter []string) Ranges {
	t.Helper()
	r, err := NewRanges(ranges, inter)
	if err != nil {
		t.Fatalf("NewRanges: %v", err)
	}
	return r
}

func simpleSequence(t *testing.T) *Sequence {
	t.Helper()
	ranges := mustRanges(t, []*PaddedRange{
		NewPaddedRange(mustCollection(t, "1-10"), "#"),
	}, nil)
	return NewSequence("file", ".", ranges, []string{".exr"})
}

func textureSequence(t *testing.T) *Sequence {
	t.Helper()
	ranges := mustRanges(t, []*PaddedRange{
		NewPaddedRange(mustCollection(t, "1011-1012"), "<UDIM>"),
		NewPaddedRange(mustCollection(t, "1-3"), "#"),
	}, []string{"_"})
	return NewSequence("texture", ".", ranges, []string{".tex"})
}

func TestSequenceString(t *testing.T) {
	if got, want := simpleSequence(t).String(), "file.1-10#.exr"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got, want := textureSequence(t).String(), "texture.1011,1012<UDIM>_1-3#.tex"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestGlob(t *testing.T) {
	tests := []struct {
		name string
		seq  Parsed
		want string
	}{
		{"single range", simpleSequence(t), "file.*.exr"},
		{"two ranges", textureSequence(t), "texture.*_*.tex"},
		{
			name: "empty separator folds stars",
			seq: NewSequence("file", ".", mustRanges(t, []*PaddedRange{
				NewPaddedRange(mustCollection(t, "1-2"), "#"),
				NewPaddedRange(mustCollection(t, "3-4"), "#"),
			}, []string{""}), []string{".exr"}),
			want: "file.*.exr",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Glob(tc.seq); got != tc.want {
				t.Fatalf("Glob() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRegex(t *testing.T) {
	re := regexp.MustCompile("^" + Regex(simpleSequence(t)) + "$")

	m := re.FindStringSubmatch("file.42.exr")
	if m == nil {
		t.Fatal("regex does not match file.42.exr")
	}
	if got := m[re.SubexpIndex(RangeGroup(0))]; got != "42" {
		t.Fatalf("range0 group = %q, want %q", got, "42")
	}

	for _, s := range []string{"file.ab.exr", "file.05.exr", "file42.exr"} {
		if re.MatchString(s) {
			t.Errorf("regex matches %q", s)
		}
	}
}

func TestRegexEscapesLiterals(t *testing.T) {
	ranges := mustRanges(t, []*PaddedRange{
		NewPaddedRange(mustCollection(t, "1-2"), "#"),
	}, nil)
	seq := NewSequence("shot(a)", ".", ranges, []string{".exr"})

	re := regexp.MustCompile("^" + Regex(seq) + "$")
	if !re.MatchString("shot(a).1.exr") {
		t.Error("regex does not match the literal stem")
	}
	if re.MatchString("shota.1.exr") {
		t.Error("parentheses were not escaped")
	}
}

func TestFormatWithNumbers(t *testing.T) {
	seq := textureSequence(t)

	one := numrange.FromInt64(1011)
	two := numrange.FromInt64(2)

	got, err := seq.Format([]*numrange.Number{&one, &two})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "texture.1011_2.tex"; got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}

	got, err = seq.Format([]*numrange.Number{nil, &two})
	if err != nil {
		t.Fatalf("Format with nil: %v", err)
	}
	if want := "texture.1011,1012<UDIM>_2.tex"; got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatArity(t *testing.T) {
	one := numrange.FromInt64(1)

	_, err := textureSequence(t).Format([]*numrange.Number{&one})
	var arity *seqerrors.ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("Format returned %v, want ArityError", err)
	}
	if arity.Want != 2 || arity.Got != 1 {
		t.Fatalf("ArityError = %+v, want Want=2 Got=1", arity)
	}
}

func TestWithStem(t *testing.T) {
	seq := simpleSequence(t)

	renamed := seq.WithStem("render")
	if got, want := renamed.String(), "render.1-10#.exr"; got != want {
		t.Fatalf("WithStem String() = %q, want %q", got, want)
	}

	cleared := seq.WithStem("")
	if got, want := cleared.String(), "1-10#.exr"; got != want {
		t.Fatalf("WithStem(\"\") String() = %q, want %q", got, want)
	}

	if seq.String() != "file.1-10#.exr" {
		t.Error("WithStem mutated the receiver")
	}
}

func TestWithSuffix(t *testing.T) {
	tests := []struct {
		name    string
		suffix  string
		want    string
		wantErr bool
	}{
		{"replace", ".tif", "file.1-10#.tif", false},
		{"multi part", ".tar.gz", "file.1-10#.tar.gz", false},
		{"drop", "", "file.1-10#", false},
		{"missing dot", "tif", "", true},
		{"bare dot", ".", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := simpleSequence(t).WithSuffix(tc.suffix)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("WithSuffix(%q) succeeded, want error", tc.suffix)
				}
				return
			}
			if err != nil {
				t.Fatalf("WithSuffix(%q): %v", tc.suffix, err)
			}
			if got.String() != tc.want {
				t.Fatalf("WithSuffix(%q) = %q, want %q", tc.suffix, got.String(), tc.want)
			}
		})
	}
}

func TestSequenceEqual(t *testing.T) {
	if !simpleSequence(t).Equal(simpleSequence(t)) {
		t.Error("identical sequences reported unequal")
	}
	if simpleSequence(t).Equal(textureSequence(t)) {
		t.Error("different sequences reported equal")
	}

	loose := NewRangeInName("file", ".", simpleSequence(t).Ranges(), "", []string{".exr"})
	if simpleSequence(t).Equal(loose) {
		t.Error("strict and loose shapes reported equal")
	}
}

func TestLooseRendering(t *testing.T) {
	ranges := mustRanges(t, []*PaddedRange{
		NewPaddedRange(mustCollection(t, "1-10"), "#"),
	}, nil)

	tests := []struct {
		name string
		seq  Parsed
		want string
	}{
		{
			name: "range starts name",
			seq:  NewRangeStartsName(ranges, "_", "file", []string{".exr"}),
			want: "1-10#_file.exr",
		},
		{
			name: "range in name",
			seq:  NewRangeInName("file", "_", ranges, "", []string{".exr"}),
			want: "file_1-10#.exr",
		},
		{
			name: "range ends name",
			seq:  NewRangeEndsName("file", []string{".exr"}, ".", ranges),
			want: "file.exr.1-10#",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.seq.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLooseWithStem(t *testing.T) {
	ranges := mustRanges(t, []*PaddedRange{
		NewPaddedRange(mustCollection(t, "1-10"), "#"),
	}, nil)

	starts := NewRangeStartsName(ranges, "_", "file", []string{".exr"})
	if got, want := starts.WithStem("").String(), "1-10#.exr"; got != want {
		t.Fatalf("starts WithStem(\"\") = %q, want %q", got, want)
	}

	in := NewRangeInName("file", "_", ranges, "_", []string{".exr"})
	if got, want := in.WithStem("").String(), "1-10#_.exr"; got != want {
		t.Fatalf("in WithStem(\"\") = %q, want %q", got, want)
	}

	ends := NewRangeEndsName("file", []string{".exr"}, ".", ranges)
	if got, want := ends.WithStem("render").String(), "render.exr.1-10#"; got != want {
		t.Fatalf("ends WithStem = %q, want %q", got, want)
	}
}
