package scrapers

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bourboncal/internal"
)

const (
	breakingBourbonName = "breaking-bourbon"
	breakingBourbonURL  = "https://www.breakingbourbon.com/release-calendar"
)

// jsonEmbedPatterns locate JSON blobs that JavaScript-rendered sites embed
// server-side. Tried in order before falling back to HTML parsing.
var jsonEmbedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)window\.__INITIAL_STATE__\s*=\s*(\{.*?\});`),
	regexp.MustCompile(`(?s)window\.__NEXT_DATA__\s*=\s*(\{.*?\});`),
	regexp.MustCompile(`(?s)<script[^>]*type="application/json"[^>]*>(.*?)</script>`),
	regexp.MustCompile(`(?s)<script[^>]*id="__NEXT_DATA__"[^>]*>(.*?)</script>`),
}

// BreakingBourbon scrapes the Breaking Bourbon release calendar. The site
// renders client-side, so embedded JSON is tried first and plain HTML
// parsing is the fallback.
type BreakingBourbon struct {
	fetcher *Fetcher
	year    int
}

func NewBreakingBourbon(f *Fetcher, year int) *BreakingBourbon {
	return &BreakingBourbon{fetcher: f, year: year}
}

func (s *BreakingBourbon) Name() string { return breakingBourbonName }
func (s *BreakingBourbon) URL() string  { return breakingBourbonURL }

func (s *BreakingBourbon) Scrape(ctx context.Context) ([]internal.RawRelease, error) {
	body, err := s.fetcher.Get(ctx, breakingBourbonURL)
	if err != nil {
		return nil, err
	}

	if releases := s.extractEmbeddedJSON(ctx, string(body)); len(releases) > 0 {
		return tagProvenance(releases, breakingBourbonName, breakingBourbonURL), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	return tagProvenance(s.parseHTML(doc), breakingBourbonName, breakingBourbonURL), nil
}

func (s *BreakingBourbon) extractEmbeddedJSON(ctx context.Context, html string) []internal.RawRelease {
	for _, re := range jsonEmbedPatterns {
		m := re.FindStringSubmatch(html)
		if m == nil {
			continue
		}
		var data any
		if err := json.Unmarshal([]byte(m[1]), &data); err != nil {
			continue
		}
		if releases := collectReleaseObjects(data, 0); len(releases) > 0 {
			return releases
		}
	}

	// Squarespace collections expose the same page as JSON.
	body, err := s.fetcher.Get(ctx, strings.TrimRight(breakingBourbonURL, "/")+"?format=json")
	if err == nil {
		var data any
		if json.Unmarshal(body, &data) == nil {
			return collectReleaseObjects(data, 0)
		}
	}
	return nil
}

// collectReleaseObjects walks arbitrary JSON for objects that look like
// product releases: a name-ish key plus at least one release attribute.
func collectReleaseObjects(node any, depth int) []internal.RawRelease {
	if depth > 10 {
		return nil
	}

	var out []internal.RawRelease
	switch t := node.(type) {
	case []any:
		for _, item := range t {
			out = append(out, collectReleaseObjects(item, depth+1)...)
		}
	case map[string]any:
		if looksLikeRelease(t) {
			out = append(out, jsonItemToRaw(t))
		}
		for _, v := range t {
			out = append(out, collectReleaseObjects(v, depth+1)...)
		}
	}
	return out
}

func looksLikeRelease(obj map[string]any) bool {
	keys := map[string]bool{}
	for k := range obj {
		keys[strings.ToLower(k)] = true
	}
	hasName := keys["name"] || keys["title"] || keys["product_name"] || keys["productname"]
	if !hasName {
		return false
	}
	for _, k := range []string{"proof", "abv", "age", "msrp", "price", "type", "category"} {
		if keys[k] {
			return true
		}
	}
	return false
}

func jsonItemToRaw(item map[string]any) internal.RawRelease {
	pick := func(keys ...string) any {
		for _, k := range keys {
			if v, ok := item[k]; ok && v != nil {
				return v
			}
		}
		return nil
	}

	return internal.RawRelease{
		"product_name":  pick("name", "title", "product_name", "productName"),
		"proof":         pick("proof", "abv"),
		"age":           pick("age", "age_years", "ageStatement"),
		"msrp":          pick("msrp", "price", "retailPrice"),
		"type":          pick("type", "category", "spirit_type"),
		"release_month": pick("release_month", "releaseDate", "month"),
		"notes":         pick("notes", "description", "tasting_notes"),
		"finish":        pick("finish", "barrel_finish"),
		"mashbill":      pick("mashbill", "mash_bill"),
		"image_url":     pick("image", "imageUrl", "thumbnail"),
		"is_new":        pick("is_new", "isNew"),
		"is_limited":    pick("is_limited", "limited"),
		"source_url":    breakingBourbonURL,
	}
}

func (s *BreakingBourbon) parseHTML(doc *goquery.Document) []internal.RawRelease {
	var releases []internal.RawRelease

	// Card-based layouts first.
	selectors := []string{
		`[class*="release"]`, `[class*="product"]`, `[class*="item"]`,
		".summary-item", ".collection-item", ".blog-item",
	}
	for _, sel := range selectors {
		doc.Find(sel).Each(func(_ int, card *goquery.Selection) {
			nameEl := card.Find(`h2, h3, h4, [class*="title"]`).First()
			if nameEl.Length() == 0 {
				return
			}
			name := strings.TrimSpace(nameEl.Text())
			if len(name) < 5 {
				return
			}
			releases = append(releases, s.parseCard(card, name))
		})
	}
	if len(releases) > 0 {
		return releases
	}

	// Month-grouped sections.
	var currentMonth *string
	doc.Find("h2, h3, h4, p, ul, ol, li, div").Each(func(_ int, el *goquery.Selection) {
		text := strings.TrimSpace(el.Text())
		if label := monthHeading(text, s.year, 40); label != nil {
			currentMonth = label
		}
		if goquery.NodeName(el) == "li" && len(text) > 10 {
			if raw := parseCalendarEntry(text, currentMonth, breakingBourbonURL); raw != nil {
				releases = append(releases, raw)
			}
		}
	})
	return releases
}

func (s *BreakingBourbon) parseCard(card *goquery.Selection, name string) internal.RawRelease {
	text := strings.Join(strings.Fields(card.Text()), " ")

	href, _ := card.Find("a").First().Attr("href")
	if href != "" && !strings.HasPrefix(href, "http") {
		href = "https://www.breakingbourbon.com" + href
	}
	sourceURL := breakingBourbonURL
	if href != "" {
		sourceURL = href
	}

	var imageURL any
	if src, ok := card.Find("img").First().Attr("src"); ok && src != "" {
		imageURL = src
	}

	return internal.RawRelease{
		"product_name": name,
		"proof":        firstMatch(reEntryProof, text, reEntryABV),
		"age":          matchOrNil(reEntryAge, text),
		"msrp":         matchOrNil(reEntryPrice, text),
		"is_new":       card.Find(`[class*="new"], [class*="badge"]`).Length() > 0,
		"image_url":    imageURL,
		"source_url":   sourceURL,
	}
}

// monthHeading reports whether text is a short month heading and returns
// the canonical label for it.
func monthHeading(text string, year int, maxLen int) *string {
	if len(text) == 0 || len(text) >= maxLen {
		return nil
	}
	lower := strings.ToLower(text)
	for _, m := range monthNames {
		if strings.Contains(lower, m) {
			label := fmt.Sprintf("%s %d", strings.ToUpper(m[:1])+m[1:], year)
			return &label
		}
	}
	return nil
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}
