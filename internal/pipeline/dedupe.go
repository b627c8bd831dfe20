package pipeline

import (
	"strings"

	"bourboncal/internal"
)

// NameScorer is the optional fuzzy-similarity capability: a token-order-
// insensitive similarity score between two strings on a 0-100 scale.
type NameScorer interface {
	Score(a, b string) int
}

// Deduplicate collapses records describing the same product into one.
//
// Phase 1 groups by identity. The first-seen record of a group is the
// accumulator; later records only fill fields the accumulator still has nil.
// Phase 2 compares the survivors pairwise (i < j, forward scan) by fuzzy
// name similarity and merges j into i when the score reaches threshold.
// A consumed j is skipped for all later comparisons, so clusters are not
// transitively closed: k may fail to merge with i even though it would have
// matched j. That is a known accuracy trade-off of the forward scan, kept
// because consumers depend on the resulting ordering and grouping.
//
// A nil scorer skips Phase 2 and returns Phase 1's output unchanged.
// Output order equals the order of first occurrence among survivors.
func Deduplicate(releases []*internal.Release, scorer NameScorer, threshold int) []*internal.Release {
	if len(releases) == 0 {
		return nil
	}

	byID := map[string]*internal.Release{}
	deduped := make([]*internal.Release, 0, len(releases))
	for _, r := range releases {
		if existing, ok := byID[r.ID]; ok {
			fillMissing(existing, r)
			continue
		}
		clone := *r
		byID[r.ID] = &clone
		deduped = append(deduped, &clone)
	}

	if scorer == nil {
		return deduped
	}

	final := make([]*internal.Release, 0, len(deduped))
	consumed := make([]bool, len(deduped))
	for i, r1 := range deduped {
		if consumed[i] {
			continue
		}
		for j := i + 1; j < len(deduped); j++ {
			if consumed[j] {
				continue
			}
			r2 := deduped[j]
			score := scorer.Score(strings.ToLower(r1.ProductName), strings.ToLower(r2.ProductName))
			if score >= threshold {
				fillMissing(r1, r2)
				consumed[j] = true
			}
		}
		final = append(final, r1)
	}
	return final
}

// fillMissing copies src's non-nil fields into dst's nil fields. Fields
// already set on dst are never overwritten: first-seen wins on conflict.
func fillMissing(dst, src *internal.Release) {
	if dst.Distillery == nil {
		dst.Distillery = src.Distillery
	}
	if dst.Proof == nil {
		dst.Proof = src.Proof
	}
	if dst.ABV == nil {
		dst.ABV = src.ABV
	}
	if dst.AgeYears == nil {
		dst.AgeYears = src.AgeYears
	}
	if dst.MSRP == nil {
		dst.MSRP = src.MSRP
	}
	if dst.ReleaseMonth == nil {
		dst.ReleaseMonth = src.ReleaseMonth
	}
	if dst.ReleaseDate == nil {
		dst.ReleaseDate = src.ReleaseDate
	}
	if dst.Batch == nil {
		dst.Batch = src.Batch
	}
	if dst.Finish == nil {
		dst.Finish = src.Finish
	}
	if dst.Mashbill == nil {
		dst.Mashbill = src.Mashbill
	}
	if dst.Notes == nil {
		dst.Notes = src.Notes
	}
	if dst.ImageURL == nil {
		dst.ImageURL = src.ImageURL
	}
	if dst.SourceURL == nil {
		dst.SourceURL = src.SourceURL
	}
}
