package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/reel/internal/moderation"
)

// Suggest returns up to limit visible video IDs (or tags, for '#' queries)
// that fuzzily resemble a query which found nothing. Closest first.
func (s *Service) Suggest(query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	targets := s.suggestionTargets(strings.HasPrefix(query, "#"))
	ranks := fuzzy.RankFindFold(query, targets)
	sort.Stable(ranks)

	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}

// suggestionTargets returns sorted, de-duplicated IDs or tags of unflagged videos
func (s *Service) suggestionTargets(tags bool) []string {
	seen := make(map[string]bool)
	var targets []string
	for _, v := range moderation.Visible(s.flags, s.catalog.Videos()) {
		candidates := []string{v.ID}
		if tags {
			candidates = v.Tags
		}
		for _, c := range candidates {
			if !seen[c] {
				seen[c] = true
				targets = append(targets, c)
			}
		}
	}
	sort.Strings(targets)
	return targets
}
