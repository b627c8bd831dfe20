package scrapers

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bourboncal/internal"
)

const (
	bourbonBossmanName = "bourbon-bossman"
	bourbonBossmanURL  = "https://www.bourbonbossman.com/bourbon-release-calendar"
)

// BourbonBossman scrapes a blog-style calendar: month headings followed by
// lists or paragraphs of entries.
type BourbonBossman struct {
	fetcher *Fetcher
	year    int
}

func NewBourbonBossman(f *Fetcher, year int) *BourbonBossman {
	return &BourbonBossman{fetcher: f, year: year}
}

func (s *BourbonBossman) Name() string { return bourbonBossmanName }
func (s *BourbonBossman) URL() string  { return bourbonBossmanURL }

func (s *BourbonBossman) Scrape(ctx context.Context) ([]internal.RawRelease, error) {
	doc, err := s.fetcher.Document(ctx, bourbonBossmanURL)
	if err != nil {
		return nil, err
	}
	releases := walkMonthGrouped(doc, s.year, bourbonBossmanURL)
	return tagProvenance(releases, bourbonBossmanName, bourbonBossmanURL), nil
}

// walkMonthGrouped parses the month-heading calendar layout shared by the
// blog sources: a heading or bold line names the month, the lines under it
// describe releases until the next month heading.
func walkMonthGrouped(doc *goquery.Document, year int, sourceURL string) []internal.RawRelease {
	var releases []internal.RawRelease
	var currentMonth *string

	content := doc.Find(`article, main, [class*="content"], [class*="post"], body`).First()
	content.Find("h1, h2, h3, h4, h5, h6, strong, b, li, p").Each(func(_ int, el *goquery.Selection) {
		text := strings.TrimSpace(el.Text())
		if text == "" {
			return
		}

		switch goquery.NodeName(el) {
		case "h1", "h2", "h3", "h4", "h5", "h6", "strong", "b":
			if label := monthHeading(text, year, 40); label != nil {
				currentMonth = label
			}
		case "li":
			if currentMonth != nil && len(text) > 10 {
				if raw := parseCalendarEntry(text, currentMonth, sourceURL); raw != nil {
					releases = append(releases, raw)
				}
			}
		case "p":
			if currentMonth != nil && qualifiesAsEntry(text) {
				if raw := parseCalendarEntry(text, currentMonth, sourceURL); raw != nil {
					releases = append(releases, raw)
				}
			}
		}
	})

	if len(releases) > 0 {
		return releases
	}

	// No month structure found; scan every line of the document.
	doc.Find("li, p").Each(func(_ int, el *goquery.Selection) {
		text := strings.TrimSpace(el.Text())
		if qualifiesAsEntry(text) {
			if raw := parseCalendarEntry(text, nil, sourceURL); raw != nil {
				releases = append(releases, raw)
			}
		}
	})
	return releases
}

// qualifiesAsEntry filters paragraphs down to lines that read like a single
// product mention rather than editorial prose.
func qualifiesAsEntry(text string) bool {
	if len(text) < 10 || len(text) > 300 {
		return false
	}
	return reEntryProof.MatchString(text) ||
		reEntryPrice.MatchString(text) ||
		reEntryABV.MatchString(text)
}
