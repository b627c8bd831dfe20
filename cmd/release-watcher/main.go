package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bourboncal/internal/config"
	"bourboncal/internal/pipeline"
	"bourboncal/internal/scrapers"
	"bourboncal/internal/similarity"
	"bourboncal/internal/storage"
	"bourboncal/internal/watch"
)

func main() {
	cfg, err := config.Load()
	must(err)

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	fetcher := scrapers.NewFetcher(cfg)
	scraper := pipeline.NewScrapeService(db, fetcher, similarity.NewTokenSortScorer(), cfg.FuzzyMergeThreshold, cfg.CatalogYear)
	svc := watch.NewService(db, cfg, scraper)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	must(svc.Run(ctx))
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
