package commands

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"passview/internal/domain"
)

// Search fuzzy-ranks entries against query by their path form, best matches
// first. An empty query returns all entries in their original order.
func Search(entries []domain.Entry, query string) []domain.Entry {
	if query == "" {
		out := make([]domain.Entry, len(entries))
		copy(out, entries)
		return out
	}

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.String()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, paths)
	sort.Sort(ranks)

	out := make([]domain.Entry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, entries[r.OriginalIndex])
	}
	return out
}
