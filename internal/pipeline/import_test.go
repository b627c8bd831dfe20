package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"bourboncal/internal"
	"bourboncal/internal/util"
)

func TestExtractReleasesFromXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Product", "Distillery", "Proof", "MSRP", "Month"},
		{"Weller Full Proof Single Barrel", "Buffalo Trace", "114 Proof", "$60", "March"},
		{"Henry McKenna 10 Year Bottled in Bond", "Heaven Hill", "100 Proof", "$39.99", "May"},
		{"", "", "", "", ""},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	raw, err := ExtractReleasesFromFile(path, "distributor-sheet")
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 2 {
		t.Fatalf("len=%d", len(raw))
	}
	if got := raw[0]["product_name"]; got != "Weller Full Proof Single Barrel" {
		t.Fatalf("product_name=%v", got)
	}
	if got := raw[0]["proof"]; got != "114 Proof" {
		t.Fatalf("proof=%v", got)
	}
	if got := raw[0][internal.KeySource]; got != "distributor-sheet" {
		t.Fatalf("source tag=%v", got)
	}

	// Imported rows normalize like any scraped record.
	norm := NormalizeRelease(raw[1], 2026)
	if norm == nil {
		t.Fatal("normalization failed")
	}
	if norm.MSRP == nil || *norm.MSRP != 39.99 {
		t.Fatalf("msrp=%v", norm.MSRP)
	}
	if norm.ReleaseMonth == nil || *norm.ReleaseMonth != "May 2026" {
		t.Fatalf("month=%v", norm.ReleaseMonth)
	}
}

func TestExtractReleasesUnsupportedExtension(t *testing.T) {
	if _, err := ExtractReleasesFromFile("notes.txt", "x"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestExportThenReimportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "releases.xlsx")

	items := []internal.ReleaseListItem{
		{
			Release: internal.Release{
				ID: "a1", ProductName: "Eagle Rare 17 Year Old", Type: internal.TypeBourbon,
				Distillery: util.StringPtr("Buffalo Trace"), Proof: util.FloatPtr(101),
				MSRP: util.FloatPtr(130), BottleSizeML: 750, ReleaseYear: 2026,
			},
			Sources: []string{"breaking-bourbon", "articles"},
		},
	}
	if err := ExportReleasesToXLSX(items, path); err != nil {
		t.Fatal(err)
	}

	raw, err := ExtractReleasesFromFile(path, "reimport")
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 1 {
		t.Fatalf("len=%d", len(raw))
	}
	if got := raw[0]["product_name"]; got != "Eagle Rare 17 Year Old" {
		t.Fatalf("product_name=%v", got)
	}
	if got := raw[0]["distillery"]; got != "Buffalo Trace" {
		t.Fatalf("distillery=%v", got)
	}
}

func TestLineToRaw(t *testing.T) {
	cases := []struct {
		line string
		name string
		ok   bool
	}{
		{"Stagg Batch 28 - 130.2 Proof | $125", "Stagg Batch 28", true},
		{"Old Fitzgerald Bottled in Bond | $110", "Old Fitzgerald Bottled in Bond", true},
		{"Page 3", "", false},
		{"Confidential price list, subject to change", "", false},
		{"A bottle with no figures at all", "", false},
	}
	for _, tc := range cases {
		raw := lineToRaw(tc.line)
		if tc.ok != (raw != nil) {
			t.Errorf("lineToRaw(%q) accepted=%v want %v", tc.line, raw != nil, tc.ok)
			continue
		}
		if raw != nil && raw["product_name"] != tc.name {
			t.Errorf("lineToRaw(%q) name=%v want %q", tc.line, raw["product_name"], tc.name)
		}
	}
}
