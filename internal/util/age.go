package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reAgeRange  = regexp.MustCompile(`(?i)(\d+)\s*[-–]\s*(\d+)\s*(?:years?|yr|yrs)`)
	reAgeSingle = regexp.MustCompile(`(?i)(\d+)\s*[-–]?\s*(?:years?|yr|yrs|year-old|yo)`)
	reBareInt   = regexp.MustCompile(`^(\d+)$`)
)

// ParseAge extracts a statement age in years. A range like "7-20 years"
// resolves to the maximum endpoint: the range communicates the minimum
// guarantee and the maximum is the headline age. A bare integer only counts
// when it falls in a plausible 2-50 year band.
func ParseAge(raw any) *int {
	s := strings.TrimSpace(CoerceString(raw))
	if s == "" {
		return nil
	}

	if m := reAgeRange.FindStringSubmatch(s); m != nil {
		if v, err := strconv.Atoi(m[2]); err == nil {
			return IntPtr(v)
		}
	}

	if m := reAgeSingle.FindStringSubmatch(s); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return IntPtr(v)
		}
	}

	if m := reBareInt.FindStringSubmatch(s); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil && v >= 2 && v <= 50 {
			return IntPtr(v)
		}
	}

	return nil
}
