package pipeline

import (
	"testing"

	"bourboncal/internal"
)

func TestClassifyType(t *testing.T) {
	cases := []struct {
		input any
		want  internal.WhiskeyType
	}{
		{"Kentucky Straight Bourbon Whiskey", internal.TypeBourbon},
		{"Straight Rye Whiskey", internal.TypeRye},
		{"Wheat Whiskey", internal.TypeWheat},
		{"Tennessee Whiskey", internal.TypeTennessee},
		{"American Single Malt", internal.TypeSingleMalt},
		{"Islay cask finish", internal.TypeScotch},
		{"Japanese Whisky", internal.TypeJapanese},
		{"Blended Whiskey", internal.TypeBlend},
		{"something unrecognizable", internal.TypeBourbon},
		{nil, internal.TypeBourbon},
		{"", internal.TypeBourbon},
	}

	for _, tc := range cases {
		if got := ClassifyType(tc.input); got != tc.want {
			t.Errorf("ClassifyType(%v) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestExtractDistillery(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Eagle Rare 17 Year Old", "Buffalo Trace"},
		{"Blanton's Gold Edition", "Buffalo Trace"},
		{"Knob Creek Blender's Edition No. 01", "Jim Beam"},
		{"Elijah Craig Barrel Proof C926", "Heaven Hill"},
		{"Old Forester Tribute Series", "Brown-Forman"},
		{"Blood Oath Pact No. 12", "Lux Row"},
	}

	for _, tc := range cases {
		got := ExtractDistillery(tc.name)
		if got == nil {
			t.Errorf("ExtractDistillery(%q) = nil, want %q", tc.name, tc.want)
			continue
		}
		if *got != tc.want {
			t.Errorf("ExtractDistillery(%q) = %q, want %q", tc.name, *got, tc.want)
		}
	}

	if got := ExtractDistillery("Totally Unknown Craft Spirits"); got != nil {
		t.Errorf("expected nil for unknown brand, got %q", *got)
	}
	if got := ExtractDistillery(""); got != nil {
		t.Errorf("expected nil for empty name, got %q", *got)
	}
}
