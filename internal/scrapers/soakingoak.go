package scrapers

import (
	"context"

	"bourboncal/internal"
)

const (
	soakingOakName = "soaking-oak"
	soakingOakURL  = "https://soakingoak.com/bourbon-release-calendar"
)

// SoakingOak scrapes another month-grouped calendar blog. Same page shape
// as Bourbon Bossman, different site.
type SoakingOak struct {
	fetcher *Fetcher
	year    int
}

func NewSoakingOak(f *Fetcher, year int) *SoakingOak {
	return &SoakingOak{fetcher: f, year: year}
}

func (s *SoakingOak) Name() string { return soakingOakName }
func (s *SoakingOak) URL() string  { return soakingOakURL }

func (s *SoakingOak) Scrape(ctx context.Context) ([]internal.RawRelease, error) {
	doc, err := s.fetcher.Document(ctx, soakingOakURL)
	if err != nil {
		return nil, err
	}
	releases := walkMonthGrouped(doc, s.year, soakingOakURL)
	return tagProvenance(releases, soakingOakName, soakingOakURL), nil
}
