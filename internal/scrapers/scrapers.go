package scrapers

import (
	"context"
	"fmt"

	"bourboncal/internal"
)

// Scraper collects raw release records from one public source. Scrapers
// only fetch and extract; normalization and deduplication happen downstream.
type Scraper interface {
	Name() string
	URL() string
	Scrape(ctx context.Context) ([]internal.RawRelease, error)
}

// Registry returns every collector in its canonical run order. year is the
// calendar year the sources are being scraped for.
func Registry(f *Fetcher, year int) []Scraper {
	return []Scraper{
		NewBreakingBourbon(f, year),
		NewBourbonBossman(f, year),
		NewSoakingOak(f, year),
		NewArticles(f, year),
	}
}

// BySource looks a collector up by name.
func BySource(f *Fetcher, year int, name string) (Scraper, error) {
	for _, s := range Registry(f, year) {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown source: %s", name)
}

// tagProvenance stamps every raw record with the source it came from.
func tagProvenance(releases []internal.RawRelease, source, sourceURL string) []internal.RawRelease {
	for _, r := range releases {
		r[internal.KeySource] = source
		r[internal.KeySourceURL] = sourceURL
	}
	return releases
}
