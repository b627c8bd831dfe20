package scrapers

import (
	"strings"
	"testing"
)

func TestParseCalendarEntry(t *testing.T) {
	month := "September 2026"

	raw := parseCalendarEntry("Eagle Rare 17 Year Old Bourbon - 101 Proof, $130, limited release", &month, "https://example.com/cal")
	if raw == nil {
		t.Fatal("entry rejected")
	}
	if got := raw["product_name"]; got != "Eagle Rare 17 Year Old Bourbon" {
		t.Fatalf("product_name=%q", got)
	}
	if got := raw["proof"]; got != "101 Proof" {
		t.Fatalf("proof=%v", got)
	}
	if got := raw["msrp"]; got != "$130" {
		t.Fatalf("msrp=%v", got)
	}
	if got := raw["release_month"]; got != "September 2026" {
		t.Fatalf("release_month=%v", got)
	}
	if got := raw["is_limited"]; got != true {
		t.Fatalf("is_limited=%v", got)
	}
}

func TestParseCalendarEntrySkipsNoise(t *testing.T) {
	for _, line := range []string{
		"Note: dates are subject to change",
		"Click here for last year's calendar",
		"TBD",
		"xx",
	} {
		if raw := parseCalendarEntry(line, nil, "u"); raw != nil {
			t.Fatalf("noise line accepted: %q", line)
		}
	}
}

func TestParseCalendarEntryCarriesFiguresVerbatim(t *testing.T) {
	month := "January 2026"
	raw := parseCalendarEntry("Maker's Mark Cellar Aged - 112.9 Proof, $200", &month, "u")
	if raw == nil {
		t.Fatal("entry rejected")
	}
	if got := raw["proof"]; got != "112.9 Proof" {
		t.Fatalf("proof=%v", got)
	}
	if got := raw["msrp"]; got != "$200" {
		t.Fatalf("msrp=%v", got)
	}
	if got := raw["release_month"]; got != "January 2026" {
		t.Fatalf("release_month=%v", got)
	}
}

func TestParseArticleEntry(t *testing.T) {
	raw := parseArticleEntry(
		"Blood Oath Pact 12",
		"Expected in April, this limited blend is finished in sherry casks and carries a $120 price tag at 98.6 proof.",
		"https://example.com/article", 2026)
	if raw == nil {
		t.Fatal("entry rejected")
	}
	if got := raw["product_name"]; got != "Blood Oath Pact 12" {
		t.Fatalf("product_name=%q", got)
	}
	if got := raw["release_month"]; got != "April 2026" {
		t.Fatalf("release_month=%v", got)
	}
	finish, _ := raw["finish"].(string)
	if !strings.HasPrefix(finish, "sherry casks") {
		t.Fatalf("finish=%q", finish)
	}
	if raw["is_limited"] != true {
		t.Fatalf("is_limited=%v", raw["is_limited"])
	}
	notes, _ := raw["notes"].(string)
	if !strings.HasPrefix(notes, "Expected in April") {
		t.Fatalf("notes=%q", notes)
	}
}

func TestEntryType(t *testing.T) {
	cases := []struct {
		text string
		want any
	}{
		{"Pikesville Straight Rye Whiskey", "rye"},
		{"Jack Daniel's Tennessee Whiskey", "tennessee"},
		{"Bernheim Wheat Whiskey", "wheat"},
		{"Westland American Single Malt", "single malt"},
		{"Some unknown bottle", nil},
	}
	for _, tc := range cases {
		if got := entryType(tc.text); got != tc.want {
			t.Errorf("entryType(%q)=%v want %v", tc.text, got, tc.want)
		}
	}
}

func TestQualifiesAsEntry(t *testing.T) {
	if !qualifiesAsEntry("Weller Full Proof Single Barrel - 114 proof, $60") {
		t.Fatal("proof line must qualify")
	}
	if qualifiesAsEntry("We had a great time visiting the distillery last summer.") {
		t.Fatal("prose without figures must not qualify")
	}
	if qualifiesAsEntry("short") {
		t.Fatal("too-short line must not qualify")
	}
}
