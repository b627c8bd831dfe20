// Package watch re-scrapes all sources on a fixed interval so the calendar
// stays current without manual runs.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"bourboncal/internal/config"
	"bourboncal/internal/pipeline"
	"bourboncal/internal/storage"
)

type Service struct {
	db      *storage.DB
	cfg     config.Config
	scraper *pipeline.ScrapeService
}

func NewService(db *storage.DB, cfg config.Config, scraper *pipeline.ScrapeService) *Service {
	return &Service{db: db, cfg: cfg, scraper: scraper}
}

func (s *Service) Run(ctx context.Context) error {
	for {
		if err := s.runCycle(ctx); err != nil {
			fmt.Printf("watch cycle error: %v\n", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(s.cfg.WatchIntervalSec) * time.Second):
		}
	}
}

func (s *Service) runCycle(ctx context.Context) error {
	summary, err := s.scraper.Run(ctx, pipeline.RunOptions{})
	if err != nil {
		return err
	}

	if s.cfg.WatchAutoExport {
		if err := s.exportSnapshot(); err != nil {
			return err
		}
	}

	fmt.Printf("watch cycle done sources=%d unique=%d saved=%d\n",
		len(summary.Results), summary.Total, summary.Saved)
	return nil
}

func (s *Service) exportSnapshot() error {
	items, err := s.db.ListReleases(storage.Filters{})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	filename := fmt.Sprintf("releases_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	outputPath := filepath.Join(s.cfg.OutputDir, "watch", filename)
	return pipeline.ExportReleasesToXLSX(items, outputPath)
}
