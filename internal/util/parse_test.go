package util

import "testing"

func TestParseStrength(t *testing.T) {
	cases := []struct {
		name  string
		input any
		proof float64
		abv   float64
	}{
		{name: "explicit proof", input: "112.9 Proof", proof: 112.9, abv: 56.5},
		{name: "explicit abv", input: "63% ABV", proof: 126.0, abv: 63.0},
		{name: "bare percent", input: "45%", proof: 90.0, abv: 45.0},
		{name: "bare number over 100 is proof", input: "101", proof: 101.0, abv: 50.5},
		{name: "bare number under 100 is abv", input: "50", proof: 100.0, abv: 50.0},
		{name: "numeric scalar", input: 117.0, proof: 117.0, abv: 58.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			proof, abv := ParseStrength(tc.input)
			if proof == nil || abv == nil {
				t.Fatalf("got nil for %v", tc.input)
			}
			if *proof != tc.proof || *abv != tc.abv {
				t.Fatalf("got proof=%v abv=%v want proof=%v abv=%v", *proof, *abv, tc.proof, tc.abv)
			}
		})
	}

	if proof, abv := ParseStrength("barrel strength"); proof != nil || abv != nil {
		t.Fatalf("expected nil pair for unparseable input")
	}
	if proof, abv := ParseStrength(nil); proof != nil || abv != nil {
		t.Fatalf("expected nil pair for nil input")
	}
}

func TestParseAge(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  int
	}{
		{name: "range takes maximum", input: "aged 7-20 years", want: 20},
		{name: "simple years", input: "12 years", want: 12},
		{name: "year-old token", input: "10-year-old", want: 10},
		{name: "yr abbreviation", input: "8yr", want: 8},
		{name: "bare plausible integer", input: "15", want: 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAge(tc.input)
			if got == nil {
				t.Fatalf("age is nil")
			}
			if *got != tc.want {
				t.Fatalf("got %d want %d", *got, tc.want)
			}
		})
	}

	for _, input := range []any{"1", "120", "no age statement", nil} {
		if got := ParseAge(input); got != nil {
			t.Fatalf("expected nil for %v, got %d", input, *got)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "dollar amount", input: "$59.99", want: 59.99},
		{name: "comma separated", input: "$1,299.99", want: 1299.99},
		{name: "msrp prefix", input: "MSRP $130", want: 130},
		{name: "bare number", input: "85", want: 85},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePrice(tc.input)
			if got == nil {
				t.Fatalf("price is nil")
			}
			if *got != tc.want {
				t.Fatalf("got %v want %v", *got, tc.want)
			}
		})
	}

	for _, input := range []any{"TBD", "tba", "N/A", "pricing pending", "", nil} {
		if got := ParsePrice(input); got != nil {
			t.Fatalf("expected nil for %v, got %v", input, *got)
		}
	}
}

func TestNormalizeMonth(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{name: "already formatted", input: "January 2026", want: "January 2026"},
		{name: "bare month name", input: "September", want: "September 2026"},
		{name: "three letter abbreviation", input: "Sep release window", want: "September 2026"},
		{name: "numeric month", input: "03/2026", want: "March 2026"},
		{name: "quarter one", input: "Q1", want: "January 2026"},
		{name: "quarter three", input: "Q3 2026", want: "July 2026"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeMonth(tc.input, 2026)
			if got == nil {
				t.Fatalf("month is nil")
			}
			if *got != tc.want {
				t.Fatalf("got %q want %q", *got, tc.want)
			}
		})
	}

	for _, input := range []any{"late winter", "13/2026", "", nil} {
		if got := NormalizeMonth(input, 2026); got != nil {
			t.Fatalf("expected nil for %v, got %q", input, *got)
		}
	}
}

func TestCanonicalName(t *testing.T) {
	if got := CanonicalName("Eagle Rare 17 Year Old Bourbon"); got != "eaglerare17yearoldbourbon" {
		t.Fatalf("got %q", got)
	}
	if got := CanonicalName("Blanton's Gold Edition!"); got != "blantonsgoldedition" {
		t.Fatalf("got %q", got)
	}
}
