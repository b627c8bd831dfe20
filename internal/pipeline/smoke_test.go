package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"bourboncal/internal"
	"bourboncal/internal/similarity"
	"bourboncal/internal/storage"
)

// End to end: raw records from two sources, through normalize, dedupe,
// persistence and spreadsheet export.
func TestSmokeRawToXLSX(t *testing.T) {
	tmp := t.TempDir()
	db, err := storage.Open(filepath.Join(tmp, "bourbon.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rawBatch := []internal.RawRelease{
		{
			"product_name":        "Eagle Rare 17 Year Old Bourbon",
			"distillery":          "Buffalo Trace",
			"proof":               "101 Proof",
			"age":                 "17 years",
			"release_month":       "September",
			"is_limited":          true,
			internal.KeySource:    "breaking-bourbon",
			internal.KeySourceURL: "https://www.breakingbourbon.com/release-calendar",
		},
		{
			"product_name":        "Eagle Rare 17 Year Old Bourbon",
			"msrp":                "$130",
			internal.KeySource:    "bourbon-bossman",
			internal.KeySourceURL: "https://www.bourbonbossman.com/bourbon-release-calendar",
		},
		{
			"product_name":        "Blood Oath Pact No. 12",
			"distillery":          "Lux Row",
			"proof":               "98.6 Proof",
			"release_month":       "April",
			"finish":              "Italian wine casks",
			"is_limited":          true,
			internal.KeySource:    "articles",
			internal.KeySourceURL: "https://example.com/article",
		},
	}

	svc := NewScrapeService(db, nil, similarity.NewTokenSortScorer(), 85, 2026)
	sourced := svc.normalizeBatch(rawBatch, "test", false)
	if len(sourced) != 3 {
		t.Fatalf("normalized=%d", len(sourced))
	}

	normalized := make([]*internal.Release, 0, len(sourced))
	for _, sr := range sourced {
		normalized = append(normalized, sr.Release)
	}
	deduplicated := Deduplicate(normalized, similarity.NewTokenSortScorer(), 85)
	if len(deduplicated) != 2 {
		t.Fatalf("deduplicated=%d", len(deduplicated))
	}

	saved, err := svc.persist(deduplicated, sourced)
	if err != nil {
		t.Fatal(err)
	}
	if saved != 2 {
		t.Fatalf("saved=%d", saved)
	}

	items, err := db.ListReleases(storage.Filters{})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("listed=%d", len(items))
	}

	var eagle *internal.ReleaseListItem
	for i := range items {
		if items[i].ProductName == "Eagle Rare 17 Year Old Bourbon" {
			eagle = &items[i]
		}
	}
	if eagle == nil {
		t.Fatal("merged release missing from list")
	}
	if eagle.MSRP == nil || *eagle.MSRP != 130 {
		t.Fatalf("cross-source fill lost: msrp=%v", eagle.MSRP)
	}
	if len(eagle.Sources) != 2 {
		t.Fatalf("provenance rows missing: %v", eagle.Sources)
	}

	out := filepath.Join(tmp, "releases.xlsx")
	if err := ExportReleasesToXLSX(items, out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
}
