package pipeline

import (
	"context"
	"fmt"
	"time"

	"bourboncal/internal"
	"bourboncal/internal/scrapers"
	"bourboncal/internal/storage"
	"bourboncal/internal/util"
)

// MetaLastFullScrape is the metadata key updated after every persisted run.
const MetaLastFullScrape = "last_full_scrape"

// RunOptions controls one scrape run.
type RunOptions struct {
	Source  string // empty means all sources
	DryRun  bool   // collect and report without touching the database
	Verbose bool   // print each normalized release
}

// SourceResult is the per-source outcome of a run.
type SourceResult struct {
	Source     string
	RawCount   int
	Normalized int
	Elapsed    time.Duration
	Err        error
}

// Summary is the outcome of a whole run.
type Summary struct {
	Results []SourceResult
	Total   int // unique releases after dedup
	Saved   int // rows written (0 on dry runs)
}

// ScrapeService drives the collect, normalize, dedupe, persist pipeline.
type ScrapeService struct {
	db        *storage.DB
	fetcher   *scrapers.Fetcher
	scorer    NameScorer
	threshold int
	year      int
}

func NewScrapeService(db *storage.DB, f *scrapers.Fetcher, scorer NameScorer, threshold, year int) *ScrapeService {
	return &ScrapeService{db: db, fetcher: f, scorer: scorer, threshold: threshold, year: year}
}

func (s *ScrapeService) Run(ctx context.Context, opts RunOptions) (Summary, error) {
	toRun := scrapers.Registry(s.fetcher, s.year)
	if opts.Source != "" {
		one, err := scrapers.BySource(s.fetcher, s.year, opts.Source)
		if err != nil {
			return Summary{}, err
		}
		toRun = []scrapers.Scraper{one}
	}

	var summary Summary
	var sourced []internal.SourcedRelease

	for _, sc := range toRun {
		result := SourceResult{Source: sc.Name()}
		start := time.Now()

		raw, err := sc.Scrape(ctx)
		result.Elapsed = time.Since(start)
		result.RawCount = len(raw)

		if err != nil {
			result.Err = err
			fmt.Printf("scrape %s: ERROR: %v\n", sc.Name(), err)
			if !opts.DryRun {
				if logErr := s.db.LogScrape(sc.Name(), "error", 0, util.StringPtr(err.Error())); logErr != nil {
					return summary, logErr
				}
			}
			summary.Results = append(summary.Results, result)
			continue
		}
		fmt.Printf("scrape %s: %d raw entries (%.1fs)\n", sc.Name(), len(raw), result.Elapsed.Seconds())

		batch := s.normalizeBatch(raw, sc.Name(), opts.Verbose)
		result.Normalized = len(batch)
		sourced = append(sourced, batch...)
		fmt.Printf("scrape %s: %d normalized\n", sc.Name(), len(batch))

		if !opts.DryRun {
			if err := s.db.LogScrape(sc.Name(), "success", len(batch), nil); err != nil {
				return summary, err
			}
		}
		summary.Results = append(summary.Results, result)
	}

	normalized := make([]*internal.Release, 0, len(sourced))
	for _, sr := range sourced {
		normalized = append(normalized, sr.Release)
	}
	deduplicated := Deduplicate(normalized, s.scorer, s.threshold)
	summary.Total = len(deduplicated)
	fmt.Printf("dedup: %d raw, %d unique, %d merged\n",
		len(normalized), len(deduplicated), len(normalized)-len(deduplicated))

	if opts.DryRun {
		previewReleases(deduplicated)
		return summary, nil
	}

	saved, err := s.persist(deduplicated, sourced)
	if err != nil {
		return summary, err
	}
	summary.Saved = saved
	fmt.Printf("saved %d releases\n", saved)

	if err := s.db.SetMetadata(MetaLastFullScrape, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return summary, err
	}
	return summary, nil
}

// Import pushes locally extracted raw records through the same normalize,
// dedupe and persist path as scraped data. Returns rows written and the
// unique count (useful on dry runs, where nothing is written).
func (s *ScrapeService) Import(raw []internal.RawRelease, sourceName string, dryRun bool) (int, int, error) {
	sourced := s.normalizeBatch(raw, sourceName, false)

	normalized := make([]*internal.Release, 0, len(sourced))
	for _, sr := range sourced {
		normalized = append(normalized, sr.Release)
	}
	deduplicated := Deduplicate(normalized, s.scorer, s.threshold)

	if dryRun {
		previewReleases(deduplicated)
		return 0, len(deduplicated), nil
	}

	saved, err := s.persist(deduplicated, sourced)
	if err != nil {
		return 0, len(deduplicated), err
	}
	if err := s.db.LogScrape(sourceName, "success", saved, nil); err != nil {
		return saved, len(deduplicated), err
	}
	return saved, len(deduplicated), nil
}

// normalizeBatch runs the normalizer over one source's raw output, dropping
// records the normalizer rejects.
func (s *ScrapeService) normalizeBatch(raw []internal.RawRelease, fallbackSource string, verbose bool) []internal.SourcedRelease {
	var out []internal.SourcedRelease
	for _, r := range raw {
		norm := NormalizeRelease(r, s.year)
		if norm == nil {
			continue
		}

		sourceName := fallbackSource
		if v := util.CoerceString(r[internal.KeySource]); v != "" {
			sourceName = v
		}
		out = append(out, internal.SourcedRelease{
			Release:    norm,
			Raw:        r,
			SourceName: sourceName,
			SourceURL:  util.CoerceString(r[internal.KeySourceURL]),
		})

		if verbose {
			proof := "?"
			if norm.Proof != nil {
				proof = fmt.Sprintf("%g", *norm.Proof)
			}
			fmt.Printf("  %s (%s proof)\n", norm.ProductName, proof)
		}
	}
	return out
}

// persist writes the deduplicated set and records every contributing source
// for each survivor. Contributions are matched by identity, so raw records
// whose normalization merged into a survivor still get provenance rows.
func (s *ScrapeService) persist(deduplicated []*internal.Release, sourced []internal.SourcedRelease) (int, error) {
	for _, release := range deduplicated {
		if err := s.db.UpsertRelease(release); err != nil {
			return 0, err
		}
		for _, sr := range sourced {
			if sr.Release.ID != release.ID {
				continue
			}
			if err := s.db.AddSource(release.ID, sr.SourceName, sr.SourceURL, sr.Raw); err != nil {
				return 0, err
			}
		}
	}
	return len(deduplicated), nil
}

func previewReleases(releases []*internal.Release) {
	fmt.Println("[dry run] skipping database writes, preview:")
	limit := len(releases)
	if limit > 20 {
		limit = 20
	}
	for _, r := range releases[:limit] {
		proof, price, month := "?", "TBD", "TBD"
		if r.Proof != nil {
			proof = fmt.Sprintf("%g", *r.Proof)
		}
		if r.MSRP != nil {
			price = fmt.Sprintf("$%g", *r.MSRP)
		}
		if r.ReleaseMonth != nil {
			month = *r.ReleaseMonth
		}
		fmt.Printf("  %s | %s proof | %s | %s\n", r.ProductName, proof, price, month)
	}
	if len(releases) > 20 {
		fmt.Printf("  ... and %d more\n", len(releases)-20)
	}
}
