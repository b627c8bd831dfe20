package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"bourboncal/internal"
	"bourboncal/internal/util"
)

// Distributor trade sheets arrive as spreadsheets or PDFs. The importer
// turns either into the same raw records the web collectors produce, so
// imported rows flow through the identical normalize and dedupe path.

var (
	reSheetProof = regexp.MustCompile(`(?i)[\d.]+\s*proof`)
	reSheetPrice = regexp.MustCompile(`\$\s*[\d,.]+`)
	reSheetNoise = regexp.MustCompile(`(?i)^(page \d|confidential|price list|subject to change|total|--+)`)
	reSheetSplit = regexp.MustCompile(`(?i)\s*[-–—|]\s*`)
)

// ExtractReleasesFromFile dispatches on the file extension.
func ExtractReleasesFromFile(path, sourceName string) ([]internal.RawRelease, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var releases []internal.RawRelease
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		releases, err = parseSheetXLSX(content)
	case ".pdf":
		releases, err = parseSheetPDF(content)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	for _, r := range releases {
		r[internal.KeySource] = sourceName
		r[internal.KeySourceURL] = path
	}
	return releases, nil
}

func parseSheetXLSX(content []byte) ([]internal.RawRelease, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []internal.RawRelease
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}

		cols := map[string]int{}
		for i, row := range rows {
			cells := trimCells(row)
			if len(cells) == 0 {
				continue
			}
			if i < 3 && len(cols) == 0 {
				cols = inferSheetColumns(cells)
				if len(cols) > 0 {
					continue
				}
			}

			raw := rowToRaw(cells, cols)
			if raw != nil {
				out = append(out, raw)
			}
		}
	}
	return out, nil
}

func trimCells(row []string) []string {
	out := make([]string, len(row))
	empty := true
	for i, c := range row {
		out[i] = strings.TrimSpace(c)
		if out[i] != "" {
			empty = false
		}
	}
	if empty {
		return nil
	}
	return out
}

// inferSheetColumns maps known header keywords to column indexes. Empty
// result means the row was not a header.
func inferSheetColumns(cells []string) map[string]int {
	aliases := map[string][]string{
		"product_name":  {"product", "name", "bottle", "release", "item"},
		"distillery":    {"distillery", "producer", "brand"},
		"type":          {"type", "category", "style"},
		"proof":         {"proof", "abv", "strength"},
		"age":           {"age"},
		"msrp":          {"msrp", "price", "srp", "cost"},
		"release_month": {"month", "date", "timing"},
		"notes":         {"notes", "description", "comment"},
	}

	cols := map[string]int{}
	for i, cell := range cells {
		lower := strings.ToLower(cell)
		for field, words := range aliases {
			if _, taken := cols[field]; taken {
				continue
			}
			for _, w := range words {
				if strings.Contains(lower, w) {
					cols[field] = i
					break
				}
			}
		}
	}
	if _, ok := cols["product_name"]; !ok {
		return map[string]int{}
	}
	return cols
}

func rowToRaw(cells []string, cols map[string]int) internal.RawRelease {
	cell := func(field string, fallback int) string {
		idx, ok := cols[field]
		if !ok {
			idx = fallback
		}
		if idx < 0 || idx >= len(cells) {
			return ""
		}
		return cells[idx]
	}

	name := cell("product_name", 0)
	if strings.TrimSpace(name) == "" || reSheetNoise.MatchString(name) {
		return nil
	}

	raw := internal.RawRelease{"product_name": name}
	for _, field := range []string{"distillery", "type", "proof", "age", "msrp", "release_month", "notes"} {
		if v := cell(field, -1); v != "" {
			raw[field] = v
		}
	}

	// Headerless sheets: scrape figures out of the whole row.
	if len(cols) == 0 {
		line := strings.Join(cells, " | ")
		if m := reSheetProof.FindString(line); m != "" {
			raw["proof"] = m
		}
		if m := reSheetPrice.FindString(line); m != "" {
			raw["msrp"] = m
		}
		if _, ok := raw["proof"]; !ok {
			if _, ok := raw["msrp"]; !ok {
				return nil
			}
		}
		raw["product_name"] = reSheetSplit.Split(name, 2)[0]
	}
	return raw
}

func parseSheetPDF(content []byte) ([]internal.RawRelease, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}

	var out []internal.RawRelease
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		for _, line := range splitSheetLines(text) {
			if raw := lineToRaw(line); raw != nil {
				out = append(out, raw)
			}
		}
	}
	return out, nil
}

func splitSheetLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// lineToRaw accepts only lines that carry a proof or price figure; the text
// before the first separator is the product name.
func lineToRaw(line string) internal.RawRelease {
	line = util.NormalizeSpaces(line)
	if len(line) < 10 || reSheetNoise.MatchString(line) {
		return nil
	}

	proof := reSheetProof.FindString(line)
	price := reSheetPrice.FindString(line)
	if proof == "" && price == "" {
		return nil
	}

	name := strings.TrimSpace(reSheetSplit.Split(line, 2)[0])
	name = reSheetPrice.ReplaceAllString(name, "")
	name = reSheetProof.ReplaceAllString(name, "")
	name = util.NormalizeSpaces(name)
	if len(name) < 3 {
		return nil
	}

	raw := internal.RawRelease{"product_name": name}
	if proof != "" {
		raw["proof"] = proof
	}
	if price != "" {
		raw["msrp"] = price
	}
	return raw
}
