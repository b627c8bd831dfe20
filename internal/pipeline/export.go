package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"bourboncal/internal"
)

// ExportReleasesToXLSX writes the release list to a spreadsheet, one row per
// release with a trailing column naming the contributing sources.
func ExportReleasesToXLSX(items []internal.ReleaseListItem, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"id", "product_name", "distillery", "type", "proof", "abv", "age_years",
		"msrp", "bottle_size_ml", "release_month", "release_date", "release_year",
		"batch", "finish", "mashbill", "notes", "is_limited", "is_new",
		"image_url", "source_url", "sources",
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, item := range items {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, item.ID)
		set(2, item.ProductName)
		set(3, derefString(item.Distillery))
		set(4, string(item.Type))
		set(5, derefFloat(item.Proof))
		set(6, derefFloat(item.ABV))
		set(7, derefIntPtr(item.AgeYears))
		set(8, derefFloat(item.MSRP))
		set(9, item.BottleSizeML)
		set(10, derefString(item.ReleaseMonth))
		set(11, derefString(item.ReleaseDate))
		set(12, item.ReleaseYear)
		set(13, derefString(item.Batch))
		set(14, derefString(item.Finish))
		set(15, derefString(item.Mashbill))
		set(16, derefString(item.Notes))
		set(17, item.IsLimited)
		set(18, item.IsNew)
		set(19, derefString(item.ImageURL))
		set(20, derefString(item.SourceURL))
		set(21, strings.Join(item.Sources, ","))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefIntPtr(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
