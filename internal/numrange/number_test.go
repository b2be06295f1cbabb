package numrange

import "testing"

func num(t *testing.T, s string) Number {
	t.Helper()
	n, err := ParseNumber(s)
	if err != nil {
		t.Fatalf("ParseNumber(%q): %v", s, err)
	}
	return n
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		decimal bool
		wantErr bool
	}{
		{input: "0", want: "0"},
		{input: "5", want: "5"},
		{input: "-3", want: "-3"},
		{input: "1001", want: "1001"},
		{input: "1.5", want: "1.5", decimal: true},
		{input: "0.1", want: "0.1", decimal: true},
		{input: "-0.5", want: "-0.5", decimal: true},
		{input: "1.0", want: "1", decimal: true},
		{input: "1.05", want: "1.05", decimal: true},
		{input: "", wantErr: true},
		{input: "-", wantErr: true},
		{input: "01", wantErr: true},
		{input: "00", wantErr: true},
		{input: "1.", wantErr: true},
		{input: ".5", wantErr: true},
		{input: "1.50", wantErr: true},
		{input: "1.10", wantErr: true},
		{input: "1e3", wantErr: true},
		{input: " 1", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			n, err := ParseNumber(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseNumber(%q) succeeded, want error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumber(%q): %v", tc.input, err)
			}
			if got := n.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if n.IsDecimal() != tc.decimal {
				t.Errorf("IsDecimal() = %v, want %v", n.IsDecimal(), tc.decimal)
			}
		})
	}
}

func TestNumberDomain(t *testing.T) {
	five := FromInt64(5)
	fiveDec := num(t, "5.0")

	if five.Cmp(fiveDec) != 0 {
		t.Error("5 and 5.0 compare unequal by value")
	}
	if five.Equal(fiveDec) {
		t.Error("5 and 5.0 report equal across domains")
	}
	if !fiveDec.IsIntegral() {
		t.Error("5.0 is not integral")
	}
	if fiveDec.Int64() != 5 {
		t.Error("5.0 does not convert to 5")
	}
}

func TestNumberArithmetic(t *testing.T) {
	sum := FromInt64(1).Add(num(t, "0.5"))
	if got, want := sum.String(), "1.5"; got != want {
		t.Fatalf("1 + 0.5 = %q, want %q", got, want)
	}
	if !sum.IsDecimal() {
		t.Error("integer plus decimal did not stay decimal")
	}

	diff := num(t, "1.5").Sub(num(t, "0.5"))
	if got, want := diff.String(), "1"; got != want {
		t.Fatalf("1.5 - 0.5 = %q, want %q", got, want)
	}
	if !diff.IsDecimal() {
		t.Error("decimal difference dropped its domain")
	}

	if got := num(t, "0.1").MulInt64(3).String(); got != "0.3" {
		t.Fatalf("0.1 * 3 = %q, want %q", got, "0.3")
	}
	if got := num(t, "1.5").Neg().String(); got != "-1.5" {
		t.Fatalf("Neg(1.5) = %q, want %q", got, "-1.5")
	}
}

func TestNumberScale(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"5", 0},
		{"1.0", 0},
		{"0.1", 1},
		{"1.25", 2},
		{"0.125", 3},
		{"-0.05", 2},
	}

	for _, tc := range tests {
		if got := num(t, tc.input).Scale(); got != tc.want {
			t.Errorf("Scale(%s) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		input  string
		places int
		want   string
	}{
		{"1.25", 1, "1.2"},
		{"1.35", 1, "1.4"},
		{"1.26", 1, "1.3"},
		{"1.24", 1, "1.2"},
		{"2.5", 0, "2"},
		{"3.5", 0, "4"},
		{"0.5", 0, "0"},
		{"-1.25", 1, "-1.2"},
		{"-1.35", 1, "-1.4"},
		{"-2.5", 0, "-2"},
		{"1.5", 2, "1.5"},
		{"7", 2, "7"},
	}

	for _, tc := range tests {
		got := num(t, tc.input).Quantize(tc.places)
		if got.String() != tc.want {
			t.Errorf("Quantize(%s, %d) = %q, want %q", tc.input, tc.places, got.String(), tc.want)
		}
	}
}
