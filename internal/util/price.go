package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rePricePlaceholder = regexp.MustCompile(`(?i)tbd|tba|n/a|pending|unknown`)
	rePriceNumber      = regexp.MustCompile(`\$?\s*([\d.]+)`)
)

// ParsePrice extracts a dollar amount. Placeholder tokens (TBD, pending, ...)
// and text with no numeric token both yield nil.
func ParsePrice(raw any) *float64 {
	s := strings.TrimSpace(CoerceString(raw))
	if s == "" {
		return nil
	}
	if rePricePlaceholder.MatchString(s) {
		return nil
	}

	m := rePriceNumber.FindStringSubmatch(strings.ReplaceAll(s, ",", ""))
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return FloatPtr(v)
}
