package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Months holds the canonical month labels in calendar order.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var (
	reNumericMonth = regexp.MustCompile(`(\d{1,2})\s*[/\-]\s*(\d{2,4})`)
	reQuarter      = regexp.MustCompile(`(?i)q(\d)`)
)

// NormalizeMonth resolves free text to a canonical "<MonthName> <year>"
// label. It accepts an already formatted label, a bare month name or its
// three-letter abbreviation, a numeric month/year token, or a quarter token
// (Q1 maps to the first month of the quarter). nil when nothing matches.
func NormalizeMonth(raw any, year int) *string {
	s := strings.TrimSpace(CoerceString(raw))
	if s == "" {
		return nil
	}

	for _, m := range Months {
		re := regexp.MustCompile(`(?i)` + m + `\s*` + strconv.Itoa(year))
		if re.MatchString(s) {
			return StringPtr(fmt.Sprintf("%s %d", m, year))
		}
	}

	lower := strings.ToLower(s)
	for _, m := range Months {
		if strings.HasPrefix(lower, strings.ToLower(m)[:3]) {
			return StringPtr(fmt.Sprintf("%s %d", m, year))
		}
	}

	if nm := reNumericMonth.FindStringSubmatch(s); nm != nil {
		idx, err := strconv.Atoi(nm[1])
		if err == nil && idx >= 1 && idx <= 12 {
			return StringPtr(fmt.Sprintf("%s %d", Months[idx-1], year))
		}
	}

	if qm := reQuarter.FindStringSubmatch(s); qm != nil {
		q, err := strconv.Atoi(qm[1])
		if err == nil {
			idx := (q - 1) * 3
			if idx >= 0 && idx < 12 {
				return StringPtr(fmt.Sprintf("%s %d", Months[idx], year))
			}
		}
	}

	return nil
}
