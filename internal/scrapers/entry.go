package scrapers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bourboncal/internal"
	"bourboncal/internal/util"
)

var (
	reEntryProof    = regexp.MustCompile(`(?i)[\d.]+\s*proof`)
	reEntryABV      = regexp.MustCompile(`(?i)[\d.]+\s*%\s*(?:abv)?`)
	reEntryPrice    = regexp.MustCompile(`\$\s*[\d,.]+`)
	reEntryAge      = regexp.MustCompile(`(?i)(?:aged?\s*)?\d+(?:\s*[-–]\s*\d+)?\s*(?:years?|yrs|yr|year-old)`)
	reEntrySize     = regexp.MustCompile(`(?i)(\d+)\s*ml`)
	reEntryFinish   = regexp.MustCompile(`(?i)(?:finished?\s+in|aged\s+in|cask)\s+([^,)]+)`)
	reEntryMashbill = regexp.MustCompile(`(?i)mash\s*bill[:\s]+([^.]+)`)
	reEntryMonth    = regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december)`)

	reNameSplit  = regexp.MustCompile(`(?i)\s*[-–—]\s*(?:Kentucky|Straight|Tennessee|\$|MSRP|SRP|[\d.]+\s*proof)`)
	reParens     = regexp.MustCompile(`\(.*?\)`)
	rePriceToken = regexp.MustCompile(`\$[\d,.]+`)
	reSkipName   = regexp.MustCompile(`(?i)^(note|update|source|click|link|image|photo|tbd|tba)`)
	reLimited    = regexp.MustCompile(`(?i)limited|single barrel|cask strength|special|rare|collector`)
)

// parseCalendarEntry turns one bullet-point or paragraph line from a
// month-grouped calendar page into a raw release. nil when the line does
// not describe a product.
func parseCalendarEntry(text string, month *string, sourceURL string) internal.RawRelease {
	text = util.NormalizeSpaces(text)
	if len(text) < 5 {
		return nil
	}

	name := cleanProductName(reNameSplit.Split(text, 2)[0])
	if len(name) < 3 {
		name = strings.TrimSpace(truncate(text, 80))
	}
	if reSkipName.MatchString(name) {
		return nil
	}

	raw := internal.RawRelease{
		"product_name":   name,
		"proof":          firstMatch(reEntryProof, text, reEntryABV),
		"age":            matchOrNil(reEntryAge, text),
		"msrp":           matchOrNil(reEntryPrice, text),
		"type":           entryType(text),
		"release_month":  deref(month),
		"bottle_size_ml": bottleSize(text),
		"finish":         submatchOrNil(reEntryFinish, text),
		"is_new":         false,
		"is_limited":     reLimited.MatchString(text),
		"source_url":     sourceURL,
	}
	return raw
}

// parseArticleEntry builds a raw release from an editorial heading plus the
// descriptive text around it.
func parseArticleEntry(heading, description, sourceURL string, year int) internal.RawRelease {
	combined := heading + " " + description

	name := cleanProductName(heading)
	if len(name) < 3 {
		return nil
	}

	var month any
	if m := reEntryMonth.FindStringSubmatch(combined); m != nil {
		label := strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
		month = fmt.Sprintf("%s %d", label, year)
	}

	var notes any
	description = strings.TrimSpace(description)
	if len(description) > 10 {
		notes = truncate(description, 200)
	}

	return internal.RawRelease{
		"product_name":  name,
		"proof":         firstMatch(reEntryProof, combined, reEntryABV),
		"age":           matchOrNil(reEntryAge, combined),
		"msrp":          matchOrNil(reEntryPrice, combined),
		"type":          entryType(combined),
		"release_month": month,
		"finish":        submatchOrNil(reEntryFinish, combined),
		"mashbill":      submatchOrNil(reEntryMashbill, combined),
		"notes":         notes,
		"is_new":        false,
		"is_limited":    reLimited.MatchString(combined),
		"source_url":    sourceURL,
	}
}

func cleanProductName(text string) string {
	name := reParens.ReplaceAllString(text, "")
	name = rePriceToken.ReplaceAllString(name, "")
	return util.NormalizeSpaces(name)
}

// entryType picks a type keyword out of free text; nil leaves the decision
// to the classifier downstream.
func entryType(text string) any {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "straight rye") || strings.Contains(lower, "rye whiskey"):
		return "rye"
	case strings.Contains(lower, "tennessee"):
		return "tennessee"
	case strings.Contains(lower, "wheat"):
		return "wheat"
	case strings.Contains(lower, "single malt"):
		return "single malt"
	case strings.Contains(lower, "scotch"):
		return "scotch"
	case strings.Contains(lower, "bourbon"):
		return "bourbon"
	default:
		return nil
	}
}

func bottleSize(text string) any {
	m := reEntrySize.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	size, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return size
}

func firstMatch(re *regexp.Regexp, text string, fallback *regexp.Regexp) any {
	if m := re.FindString(text); m != "" {
		return m
	}
	if m := fallback.FindString(text); m != "" {
		return m
	}
	return nil
}

func matchOrNil(re *regexp.Regexp, text string) any {
	if m := re.FindString(text); m != "" {
		return m
	}
	return nil
}

func submatchOrNil(re *regexp.Regexp, text string) any {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return nil
}

func deref(month *string) any {
	if month == nil {
		return nil
	}
	return *month
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
