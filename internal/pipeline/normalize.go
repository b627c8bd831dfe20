package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"bourboncal/internal"
	"bourboncal/internal/util"
)

// GenerateID derives the canonical identity for a release: the first 16 hex
// characters of sha256(canonical name + "-" + year). The truncation keeps
// keys readable; at this dataset's scale collisions are not a concern, and
// the digest is not a security boundary.
func GenerateID(productName string, releaseYear int) string {
	seed := fmt.Sprintf("%s-%d", util.CanonicalName(productName), releaseYear)
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:16]
}

// NormalizeRelease turns a raw scraped record into the canonical schema.
// Returns nil when the record carries no usable product name; callers must
// drop such records. defaultYear is the year the catalog is being built for.
func NormalizeRelease(raw internal.RawRelease, defaultYear int) *internal.Release {
	productName := strings.TrimSpace(util.CoerceString(firstPresent(raw, "product_name", "name")))
	if productName == "" {
		return nil
	}

	year := defaultYear
	if v, ok := raw["release_year"]; ok {
		if parsed := toInt(v); parsed != nil {
			year = *parsed
		}
	}

	proof, abv := util.ParseStrength(firstPresent(raw, "proof", "abv"))
	age := util.ParseAge(firstPresent(raw, "age", "age_years"))
	if age == nil {
		age = util.ParseAge(productName)
	}
	price := util.ParsePrice(firstPresent(raw, "msrp", "price"))
	month := util.NormalizeMonth(firstPresent(raw, "release_month", "month"), year)

	typeSource := firstPresent(raw, "type", "category")
	if typeSource == nil {
		typeSource = productName
	}
	typeVal := ClassifyType(typeSource)

	distillery := toStringPtr(raw["distillery"])
	if distillery == nil {
		distillery = ExtractDistillery(productName)
	}

	bottleSize := 750
	if v := toInt(raw["bottle_size_ml"]); v != nil && *v > 0 {
		bottleSize = *v
	}

	return &internal.Release{
		ID:           GenerateID(productName, year),
		ProductName:  productName,
		Distillery:   distillery,
		Type:         typeVal,
		Proof:        proof,
		ABV:          abv,
		AgeYears:     age,
		MSRP:         price,
		BottleSizeML: bottleSize,
		ReleaseMonth: month,
		ReleaseDate:  toStringPtr(raw["release_date"]),
		ReleaseYear:  year,
		Batch:        toStringPtr(raw["batch"]),
		Finish:       toStringPtr(raw["finish"]),
		Mashbill:     toStringPtr(raw["mashbill"]),
		Notes:        toStringPtr(raw["notes"]),
		IsLimited:    toFlag(raw["is_limited"]),
		IsNew:        toFlag(raw["is_new"]),
		ImageURL:     toStringPtr(raw["image_url"]),
		SourceURL:    toStringPtr(raw["source_url"]),
	}
}

// firstPresent returns the first alias whose value renders to non-empty text.
func firstPresent(raw internal.RawRelease, keys ...string) any {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if strings.TrimSpace(util.CoerceString(v)) != "" {
			return v
		}
	}
	return nil
}

func toStringPtr(v any) *string {
	s := strings.TrimSpace(util.CoerceString(v))
	if s == "" {
		return nil
	}
	return util.StringPtr(s)
}

func toInt(v any) *int {
	switch t := v.(type) {
	case int:
		return util.IntPtr(t)
	case int64:
		return util.IntPtr(int(t))
	case float64:
		return util.IntPtr(int(t))
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return util.IntPtr(parsed)
		}
	}
	return nil
}

func toFlag(v any) int {
	switch t := v.(type) {
	case bool:
		if t {
			return 1
		}
	case int:
		if t != 0 {
			return 1
		}
	case float64:
		if t != 0 {
			return 1
		}
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		if s != "" && s != "0" && s != "false" && s != "no" {
			return 1
		}
	}
	return 0
}
