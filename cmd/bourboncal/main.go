package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"bourboncal/internal/config"
	"bourboncal/internal/pipeline"
	"bourboncal/internal/scrapers"
	"bourboncal/internal/seed"
	"bourboncal/internal/server"
	"bourboncal/internal/similarity"
	"bourboncal/internal/storage"
	"bourboncal/internal/watch"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "scrape":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		source := fs.String("source", "", "scrape one source: breaking-bourbon|bourbon-bossman|soaking-oak|articles")
		dryRun := fs.Bool("dry-run", false, "preview without writing to the database")
		verbose := fs.Bool("verbose", false, "print each normalized release")
		_ = fs.Parse(os.Args[2:])

		svc := newScrapeService(db, cfg)
		summary, err := svc.Run(context.Background(), pipeline.RunOptions{
			Source:  *source,
			DryRun:  *dryRun,
			Verbose: *verbose,
		})
		must(err)
		for _, res := range summary.Results {
			status := "success"
			if res.Err != nil {
				status = "error"
			}
			fmt.Printf("  %s: %d entries (%.1fs) [%s]\n", res.Source, res.RawCount, res.Elapsed.Seconds(), status)
		}
		fmt.Printf("total unique releases: %d\n", summary.Total)
	case "seed":
		count, err := seed.Run(db, cfg.CatalogYear)
		must(err)
		fmt.Printf("seeded %d releases\n", count)
	case "serve":
		router := server.NewRouter(db, cfg)
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		fmt.Printf("serving on http://localhost%s (api: /api/releases)\n", addr)
		must(http.ListenAndServe(addr, router))
	case "import:file":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "path to an xlsx or pdf trade sheet")
		sourceName := fs.String("source", "import", "source name recorded for provenance")
		dryRun := fs.Bool("dry-run", false, "preview without writing to the database")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		raw, err := pipeline.ExtractReleasesFromFile(*input, *sourceName)
		must(err)
		fmt.Printf("extracted %d raw entries from %s\n", len(raw), *input)

		svc := newScrapeService(db, cfg)
		saved, total, err := svc.Import(raw, *sourceName, *dryRun)
		must(err)
		if *dryRun {
			fmt.Printf("[dry run] %d unique releases\n", total)
			return
		}
		fmt.Printf("imported %d releases\n", saved)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output xlsx path")
		month := fs.String("month", "", "filter by release month, e.g. 'September 2026'")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}

		items, err := db.ListReleases(storage.Filters{Month: *month})
		must(err)
		if len(items) == 0 {
			must(fmt.Errorf("no releases to export"))
		}
		must(pipeline.ExportReleasesToXLSX(items, *out))
		fmt.Printf("exported %d releases to %s\n", len(items), *out)
	case "watch":
		svc := watch.NewService(db, cfg, newScrapeService(db, cfg))
		must(svc.Run(context.Background()))
	default:
		usage()
		os.Exit(1)
	}
}

func newScrapeService(db *storage.DB, cfg config.Config) *pipeline.ScrapeService {
	fetcher := scrapers.NewFetcher(cfg)
	scorer := similarity.NewTokenSortScorer()
	return pipeline.NewScrapeService(db, fetcher, scorer, cfg.FuzzyMergeThreshold, cfg.CatalogYear)
}

func usage() {
	fmt.Println("usage: bourboncal <command>")
	fmt.Println("commands:")
	fmt.Println("  scrape [--source=breaking-bourbon|bourbon-bossman|soaking-oak|articles] [--dry-run] [--verbose]")
	fmt.Println("  seed")
	fmt.Println("  serve")
	fmt.Println("  import:file --input=./sheet.xlsx|./sheet.pdf [--source=name] [--dry-run]")
	fmt.Println("  export:xlsx --out=./out/releases.xlsx [--month='September 2026']")
	fmt.Println("  watch")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
