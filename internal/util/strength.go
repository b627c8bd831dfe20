package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reProof    = regexp.MustCompile(`(?i)([\d.]+)\s*proof`)
	rePercent  = regexp.MustCompile(`(?i)([\d.]+)\s*%\s*(?:abv)?`)
	reBareABV  = regexp.MustCompile(`(?i)([\d.]+)\s*abv`)
	reStrength = regexp.MustCompile(`([\d.]+)`)
)

// ParseStrength turns a raw proof/ABV scalar into a (proof, abv) pair.
// Sources mix the two units freely; a magnitude above 100 cannot be a
// percentage, so it is read as proof. Unparseable input yields (nil, nil).
func ParseStrength(raw any) (*float64, *float64) {
	s := strings.TrimSpace(CoerceString(raw))
	if s == "" {
		return nil, nil
	}

	if m := reProof.FindStringSubmatch(s); m != nil {
		if proof, err := strconv.ParseFloat(m[1], 64); err == nil {
			return FloatPtr(proof), FloatPtr(Round1(proof / 2))
		}
	}

	m := rePercent.FindStringSubmatch(s)
	if m == nil {
		m = reBareABV.FindStringSubmatch(s)
	}
	if m == nil {
		m = reStrength.FindStringSubmatch(s)
	}
	if m == nil {
		return nil, nil
	}

	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, nil
	}
	if val > 100 {
		return FloatPtr(val), FloatPtr(Round1(val / 2))
	}
	return FloatPtr(Round1(val * 2)), FloatPtr(val)
}
