package pipeline

import (
	"testing"

	"bourboncal/internal"
	"bourboncal/internal/util"
)

// fakeScorer returns a fixed score for every pair.
type fakeScorer struct{ score int }

func (f fakeScorer) Score(a, b string) int { return f.score }

func TestDeduplicatePhase1MergesByIdentity(t *testing.T) {
	first := NormalizeRelease(internal.RawRelease{
		"product_name": "Eagle Rare 17 Year Old Bourbon",
		"proof":        "101 Proof",
	}, 2026)
	second := NormalizeRelease(internal.RawRelease{
		"product_name":  "Eagle Rare 17 Year Old Bourbon",
		"msrp":          "$130",
		"release_month": "September",
	}, 2026)
	if first == nil || second == nil {
		t.Fatal("normalization failed")
	}
	if first.ID != second.ID {
		t.Fatalf("identities differ: %s vs %s", first.ID, second.ID)
	}

	out := Deduplicate([]*internal.Release{first, second}, nil, 85)
	if len(out) != 1 {
		t.Fatalf("len=%d", len(out))
	}
	merged := out[0]
	if merged.Proof == nil || *merged.Proof != 101 || merged.ABV == nil || *merged.ABV != 50.5 {
		t.Fatalf("strength lost in merge: proof=%v abv=%v", merged.Proof, merged.ABV)
	}
	if merged.MSRP == nil || *merged.MSRP != 130 {
		t.Fatalf("msrp not filled: %v", merged.MSRP)
	}
	if merged.ReleaseMonth == nil || *merged.ReleaseMonth != "September 2026" {
		t.Fatalf("month not filled: %v", merged.ReleaseMonth)
	}
}

func TestDeduplicateFirstSeenWins(t *testing.T) {
	a := &internal.Release{ID: "x", ProductName: "A", MSRP: util.FloatPtr(50), BottleSizeML: 750, ReleaseYear: 2026}
	b := &internal.Release{ID: "x", ProductName: "A", MSRP: util.FloatPtr(99), Notes: util.StringPtr("late note"), BottleSizeML: 750, ReleaseYear: 2026}

	out := Deduplicate([]*internal.Release{a, b}, nil, 85)
	if len(out) != 1 {
		t.Fatalf("len=%d", len(out))
	}
	if *out[0].MSRP != 50 {
		t.Fatalf("existing value overwritten: %v", *out[0].MSRP)
	}
	if out[0].Notes == nil || *out[0].Notes != "late note" {
		t.Fatalf("nil field not filled: %v", out[0].Notes)
	}
}

func TestDeduplicateInputNotMutated(t *testing.T) {
	a := &internal.Release{ID: "x", ProductName: "A", BottleSizeML: 750, ReleaseYear: 2026}
	b := &internal.Release{ID: "x", ProductName: "A", MSRP: util.FloatPtr(99), BottleSizeML: 750, ReleaseYear: 2026}

	_ = Deduplicate([]*internal.Release{a, b}, nil, 85)
	if a.MSRP != nil {
		t.Fatal("phase 1 mutated its input record")
	}
}

func TestDeduplicateFuzzyThresholdBoundary(t *testing.T) {
	mk := func(name string) []*internal.Release {
		return []*internal.Release{
			{ID: "a", ProductName: name, BottleSizeML: 750, ReleaseYear: 2026},
			{ID: "b", ProductName: name + " Bourbon", BottleSizeML: 750, ReleaseYear: 2026},
		}
	}

	if out := Deduplicate(mk("Blanton's Gold Edition"), fakeScorer{85}, 85); len(out) != 1 {
		t.Fatalf("score 85 must merge, len=%d", len(out))
	}
	if out := Deduplicate(mk("Blanton's Gold Edition"), fakeScorer{84}, 85); len(out) != 2 {
		t.Fatalf("score 84 must not merge, len=%d", len(out))
	}
}

func TestDeduplicateFuzzyFillsFields(t *testing.T) {
	a := &internal.Release{ID: "a", ProductName: "Blanton's Gold Edition", Proof: util.FloatPtr(103), BottleSizeML: 750, ReleaseYear: 2026}
	b := &internal.Release{ID: "b", ProductName: "Blanton's Gold Edition Bourbon", MSRP: util.FloatPtr(150), BottleSizeML: 750, ReleaseYear: 2026}

	out := Deduplicate([]*internal.Release{a, b}, fakeScorer{92}, 85)
	if len(out) != 1 {
		t.Fatalf("len=%d", len(out))
	}
	if out[0].ProductName != "Blanton's Gold Edition" {
		t.Fatalf("first-seen record must survive, got %q", out[0].ProductName)
	}
	if out[0].Proof == nil || *out[0].Proof != 103 || out[0].MSRP == nil || *out[0].MSRP != 150 {
		t.Fatalf("fields not merged: proof=%v msrp=%v", out[0].Proof, out[0].MSRP)
	}
}

func TestDeduplicateNoScorerSkipsPhase2(t *testing.T) {
	a := &internal.Release{ID: "a", ProductName: "Blanton's Gold Edition", BottleSizeML: 750, ReleaseYear: 2026}
	b := &internal.Release{ID: "b", ProductName: "Blanton's Gold Edition Bourbon", BottleSizeML: 750, ReleaseYear: 2026}

	out := Deduplicate([]*internal.Release{a, b}, nil, 85)
	if len(out) != 2 {
		t.Fatalf("nil scorer must return phase 1 output, len=%d", len(out))
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	releases := []*internal.Release{
		{ID: "a", ProductName: "Weller Full Proof", BottleSizeML: 750, ReleaseYear: 2026},
		{ID: "b", ProductName: "Stagg Batch 28", BottleSizeML: 750, ReleaseYear: 2026},
		{ID: "c", ProductName: "Henry McKenna 10 Year", BottleSizeML: 750, ReleaseYear: 2026},
	}

	once := Deduplicate(releases, fakeScorer{0}, 85)
	twice := Deduplicate(once, fakeScorer{0}, 85)
	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID || once[i].ProductName != twice[i].ProductName {
			t.Fatalf("second pass reordered output at %d", i)
		}
	}
}

func TestDeduplicateOrderStable(t *testing.T) {
	releases := []*internal.Release{
		{ID: "c", ProductName: "Third", BottleSizeML: 750, ReleaseYear: 2026},
		{ID: "a", ProductName: "First", BottleSizeML: 750, ReleaseYear: 2026},
		{ID: "c", ProductName: "Third", BottleSizeML: 750, ReleaseYear: 2026},
		{ID: "b", ProductName: "Second", BottleSizeML: 750, ReleaseYear: 2026},
	}

	out := Deduplicate(releases, nil, 85)
	want := []string{"c", "a", "b"}
	if len(out) != len(want) {
		t.Fatalf("len=%d", len(out))
	}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("position %d: got %s want %s", i, out[i].ID, id)
		}
	}
}
