package similarity

import "testing"

func TestTokenSortScorer(t *testing.T) {
	s := NewTokenSortScorer()

	if got := s.Score("blanton's gold edition", "blanton's gold edition"); got != 100 {
		t.Fatalf("identical strings: got %d", got)
	}

	// Trailing descriptor words still clear the merge threshold.
	if got := s.Score("blanton's gold edition", "blanton's gold edition bourbon"); got < 85 {
		t.Fatalf("near-duplicate scored %d, want >= 85", got)
	}

	// Word order is irrelevant.
	reordered := s.Score("gold edition blanton's", "blanton's gold edition")
	if reordered != 100 {
		t.Fatalf("reordered tokens scored %d, want 100", reordered)
	}

	if got := s.Score("eagle rare 17 year old", "weller full proof"); got >= 85 {
		t.Fatalf("unrelated names scored %d, want < 85", got)
	}
}
