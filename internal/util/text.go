package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// CanonicalName reduces a product name to the form identity hashing uses:
// lowercase with everything but letters and digits removed.
func CanonicalName(name string) string {
	return reNonAlnum.ReplaceAllString(strings.ToLower(name), "")
}

func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// CoerceString renders an untyped raw scalar as text so the field parsers
// can treat every source value uniformly. nil becomes the empty string.
func CoerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// Round1 rounds to one decimal place, matching how ABV is reported.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }

func IntPtr(v int) *int { return &v }
