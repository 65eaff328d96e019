package playlist

import (
	"github.com/mmcdole/reel/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Names returns display names in case-insensitive alphabetical order.
// The result is empty, not nil, when no playlists exist.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.playlists))
	for _, p := range s.playlists {
		names = append(names, p.Name)
	}
	collate.New(language.Und, collate.IgnoreCase).SortStrings(names)
	return names
}

// Playlist returns a copy of the named playlist.
func (s *Service) Playlist(name string) (domain.Playlist, error) {
	p, ok := s.lookup(name)
	if !ok {
		return domain.Playlist{}, domain.ErrPlaylistNotFound
	}
	out := *p
	out.Items = append([]string(nil), p.Items...)
	return out, nil
}

// Count returns the number of playlists.
func (s *Service) Count() int { return len(s.playlists) }
