package main

import (
	"strings"
	"testing"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		cfg  config
		want string
	}{
		{"float", "3+4*2", config{Format: "%g"}, "11"},
		{"format", "1/4", config{Format: "%.3f"}, "0.250"},
		{"echo", "3+4*2", config{Format: "%g", Echo: true}, "3 4 2 * + : 11"},
		{"echo-func", "sqrt(16)", config{Format: "%g", Echo: true}, "16 sqrt : 4"},
		{"precise", "10^x(20)+1", config{Format: "%.0f", Precision: 128}, "100000000000000000001"},
		{"precise-g", "(3+4)*2", config{Format: "%g", Precision: 64}, "14"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := calculate(c.src, c.cfg)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("%q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestCalculateErrors(t *testing.T) {
	for _, prec := range []uint{0, 64} {
		cfg := config{Format: "%g", Precision: prec}
		for _, src := range []string{"", "5/0", "(2+3", "2#3", "sqrt(-1)", "ln(-5)", "asin(2)"} {
			if r, err := calculate(src, cfg); err == nil {
				t.Errorf("%q at precision %d: no error, got %q", src, prec, r)
			}
		}
	}
	_, err := calculate("5/0", config{Format: "%g"})
	if want := `2: division by zero "/"`; err == nil || err.Error() != want {
		t.Errorf("want %s, got %v", want, err)
	}
}

func TestReadExprs(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		lines bool
		want  []string
	}{
		{"whole", "1+\n2\n", false, []string{"1+\n2\n"}},
		{"blank", " \n\t\n", false, nil},
		{"lines", "1+2\n\n3*4\n  \n5", true, []string{"1+2", "3*4", "5"}},
		{"no-lines", "", true, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := readExprs(strings.NewReader(c.in), c.lines)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("want %q, got %q", c.want, got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("expression %d: want %q, got %q", i, c.want[i], got[i])
				}
			}
		})
	}
}
