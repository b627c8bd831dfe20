// Package similarity provides the fuzzy name-matching capability consumed
// by the deduplication engine's second phase.
package similarity

import fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

// TokenSortScorer scores two strings by token-sort ratio: both are
// tokenized, the tokens sorted and rejoined, and the results compared by
// edit distance. Word order therefore does not affect the score.
type TokenSortScorer struct{}

func NewTokenSortScorer() TokenSortScorer {
	return TokenSortScorer{}
}

// Score returns a 0-100 similarity between a and b.
func (TokenSortScorer) Score(a, b string) int {
	return fuzzy.TokenSortRatio(a, b)
}
