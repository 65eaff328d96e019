// Package search implements catalog queries that hide flagged videos.
package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/moderation"
	"github.com/mmcdole/reel/internal/playback"
)

// Match is one ranked search hit. Ranks start at 1.
type Match struct {
	Rank  int
	Video domain.Video
}

// Result is the outcome of a search. Played is set when the caller's
// selection picked one of the matches.
type Result struct {
	Query   string
	Matches []Match
	Played  *playback.PlayResult
}

// player abstracts the playback cursor (consumer-defined interface)
type player interface {
	Play(videoID string) (playback.PlayResult, error)
}

// Service runs title and tag searches against the catalog
type Service struct {
	catalog domain.Catalog
	flags   domain.FlagLookup
	player  player
	logger  *slog.Logger
}

// NewService creates a new search service
func NewService(catalog domain.Catalog, flags domain.FlagLookup, player player, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		catalog: catalog,
		flags:   flags,
		player:  player,
		logger:  logger,
	}
}

// ByTitle matches term, case-insensitively, as a substring of each video ID.
// Results are ordered by ID.
func (s *Service) ByTitle(term string, sel Selection) (Result, error) {
	needle := strings.ToLower(term)

	var hits []domain.Video
	for _, v := range moderation.Visible(s.flags, s.catalog.Videos()) {
		if strings.Contains(strings.ToLower(v.ID), needle) {
			hits = append(hits, v)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })

	return s.finish(term, hits, sel)
}

// ByTag matches tag, case-insensitively, as a substring of each video's
// concatenated tags. The tag must start with '#'. Results keep catalog order.
func (s *Service) ByTag(tag string, sel Selection) (Result, error) {
	if !strings.HasPrefix(tag, "#") {
		s.logger.Debug("tag search without '#'", "query", tag)
		return Result{Query: tag}, domain.ErrNoResults
	}
	needle := strings.ToLower(tag)

	var hits []domain.Video
	for _, v := range moderation.Visible(s.flags, s.catalog.Videos()) {
		if strings.Contains(strings.ToLower(v.TagText()), needle) {
			hits = append(hits, v)
		}
	}

	return s.finish(tag, hits, sel)
}

// finish ranks hits and plays the selected one, if any
func (s *Service) finish(query string, hits []domain.Video, sel Selection) (Result, error) {
	result := Result{Query: query}
	if len(hits) == 0 {
		s.logger.Debug("search complete", "query", query, "results", 0)
		return result, domain.ErrNoResults
	}

	result.Matches = make([]Match, len(hits))
	for i, v := range hits {
		result.Matches[i] = Match{Rank: i + 1, Video: v}
	}
	s.logger.Debug("search complete", "query", query, "results", len(hits))

	match, ok := sel.pick(result.Matches)
	if !ok {
		return result, nil
	}
	played, err := s.player.Play(match.Video.ID)
	if err != nil {
		return result, err
	}
	result.Played = &played
	return result, nil
}
