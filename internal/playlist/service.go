// Package playlist manages the session's named playlists.
package playlist

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/mmcdole/reel/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Service owns the playlist collection. Lookups by name are case-insensitive;
// display names keep the casing they were created with.
// Mutations live in commands.go, reads in queries.go.
type Service struct {
	catalog   domain.Catalog
	flags     domain.FlagLookup
	playlists map[string]*domain.Playlist // key -> playlist
	logger    *slog.Logger
}

// NewService creates an empty playlist collection.
func NewService(catalog domain.Catalog, flags domain.FlagLookup, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		catalog:   catalog,
		flags:     flags,
		playlists: make(map[string]*domain.Playlist),
		logger:    logger,
	}
}

// Key returns the case-insensitive lookup key for a playlist name.
func Key(name string) string {
	return cases.Lower(language.Und).String(name)
}

// ValidName reports whether name can be used for a new playlist:
// it must be non-empty and contain no whitespace.
func ValidName(name string) bool {
	return name != "" && strings.IndexFunc(name, unicode.IsSpace) < 0
}

func (s *Service) lookup(name string) (*domain.Playlist, bool) {
	p, ok := s.playlists[Key(name)]
	return p, ok
}
