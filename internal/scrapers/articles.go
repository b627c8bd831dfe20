package scrapers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bourboncal/internal"
)

const articlesName = "articles"

// articleSources are editorial roundups ("most anticipated releases of the
// year" pieces). Layout varies per site, so extraction cascades through
// several strategies.
var articleSources = []struct {
	name string
	url  string
}{
	{"blackwells", "https://blackwellswines.com/blogs/news/most-anticipated-bourbon-releases"},
	{"alcohol-professor", "https://www.alcoholprofessor.com/blog-posts/anticipated-whiskey-releases"},
	{"frootbat", "https://www.frootbat.com/blog/most-anticipated-bourbon-releases"},
}

var reArticleSkip = regexp.MustCompile(`(?i)^(about|share|related|comment|conclusion|introduction|overview|what to|how to|tips|guide)`)

// Articles aggregates the editorial roundup sources into one collector. A
// source that fails is skipped; the collector errors only when every source
// fails.
type Articles struct {
	fetcher *Fetcher
	year    int
}

func NewArticles(f *Fetcher, year int) *Articles {
	return &Articles{fetcher: f, year: year}
}

func (s *Articles) Name() string { return articlesName }
func (s *Articles) URL() string  { return articleSources[0].url }

func (s *Articles) Scrape(ctx context.Context) ([]internal.RawRelease, error) {
	var all []internal.RawRelease
	var failures int

	for _, src := range articleSources {
		doc, err := s.fetcher.Document(ctx, src.url)
		if err != nil {
			failures++
			continue
		}
		releases := s.parseArticle(doc, src.url)
		all = append(all, tagProvenance(releases, articlesName, src.url)...)
	}

	if failures == len(articleSources) {
		return nil, fmt.Errorf("articles: all %d sources failed", failures)
	}
	return all, nil
}

func (s *Articles) parseArticle(doc *goquery.Document, sourceURL string) []internal.RawRelease {
	strategies := []func(*goquery.Document, string) []internal.RawRelease{
		s.fromHeadings,
		s.fromListItems,
		s.fromBoldLeads,
		s.fromProse,
	}
	for _, strategy := range strategies {
		if releases := strategy(doc, sourceURL); len(releases) > 0 {
			return releases
		}
	}
	return nil
}

// fromHeadings treats each product heading plus its sibling paragraphs as
// one entry. The dominant layout across the roundup pieces.
func (s *Articles) fromHeadings(doc *goquery.Document, sourceURL string) []internal.RawRelease {
	var releases []internal.RawRelease
	doc.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
		title := strings.TrimSpace(heading.Text())
		if len(title) < 5 || len(title) > 120 || reArticleSkip.MatchString(title) {
			return
		}

		var paras []string
		heading.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			name := goquery.NodeName(sib)
			if strings.HasPrefix(name, "h") && len(name) == 2 {
				return false
			}
			if name == "p" {
				paras = append(paras, strings.TrimSpace(sib.Text()))
			}
			return len(paras) < 3
		})

		if raw := parseArticleEntry(title, strings.Join(paras, " "), sourceURL, s.year); raw != nil {
			releases = append(releases, raw)
		}
	})
	return releases
}

func (s *Articles) fromListItems(doc *goquery.Document, sourceURL string) []internal.RawRelease {
	var releases []internal.RawRelease
	doc.Find("li").Each(func(_ int, el *goquery.Selection) {
		text := strings.TrimSpace(el.Text())
		if !qualifiesAsEntry(text) || reArticleSkip.MatchString(text) {
			return
		}
		if raw := parseArticleEntry(text, "", sourceURL, s.year); raw != nil {
			releases = append(releases, raw)
		}
	})
	return releases
}

// fromBoldLeads handles articles where the product name is a bold run at
// the start of a paragraph and the rest of the paragraph describes it.
func (s *Articles) fromBoldLeads(doc *goquery.Document, sourceURL string) []internal.RawRelease {
	var releases []internal.RawRelease
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		lead := p.Find("strong, b").First()
		if lead.Length() == 0 {
			return
		}
		title := strings.TrimSpace(lead.Text())
		if len(title) < 5 || len(title) > 120 || reArticleSkip.MatchString(title) {
			return
		}
		description := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(p.Text()), title))
		if raw := parseArticleEntry(title, description, sourceURL, s.year); raw != nil {
			releases = append(releases, raw)
		}
	})
	return releases
}

// fromProse is the last resort: any paragraph line that carries a proof or
// price figure is treated as an entry.
func (s *Articles) fromProse(doc *goquery.Document, sourceURL string) []internal.RawRelease {
	var releases []internal.RawRelease
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if !qualifiesAsEntry(text) || reArticleSkip.MatchString(text) {
			return
		}
		if raw := parseArticleEntry(text, "", sourceURL, s.year); raw != nil {
			releases = append(releases, raw)
		}
	})
	return releases
}
