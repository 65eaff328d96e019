package playlist

import (
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/moderation"
)

// Create adds an empty playlist.
func (s *Service) Create(name string) error {
	if !ValidName(name) {
		s.logger.Debug("rejected playlist name", "playlist", name)
		return domain.ErrInvalidPlaylistName
	}
	key := Key(name)
	if _, exists := s.playlists[key]; exists {
		return domain.ErrPlaylistExists
	}

	s.playlists[key] = &domain.Playlist{Name: name, Key: key}
	s.logger.Info("created playlist", "playlist", name)
	return nil
}

// Add appends a video to a playlist. A flagged video is refused before the
// playlist is even looked up.
func (s *Service) Add(name, videoID string) (domain.Video, error) {
	if err := moderation.Blocked(s.flags, videoID); err != nil {
		return domain.Video{}, err
	}
	p, ok := s.lookup(name)
	if !ok {
		return domain.Video{}, domain.ErrPlaylistNotFound
	}
	video, ok := s.catalog.Video(videoID)
	if !ok {
		return domain.Video{}, domain.ErrVideoNotFound
	}
	if p.Contains(videoID) {
		return domain.Video{}, domain.ErrAlreadyInPlaylist
	}

	p.Items = append(p.Items, videoID)
	s.logger.Info("added video to playlist", "playlist", p.Name, "videoID", videoID, "count", p.Len())
	return video, nil
}

// Remove drops a video from a playlist. Flags do not block removal.
func (s *Service) Remove(name, videoID string) (domain.Video, error) {
	p, ok := s.lookup(name)
	if !ok {
		return domain.Video{}, domain.ErrPlaylistNotFound
	}
	video, inCatalog := s.catalog.Video(videoID)
	if !p.Remove(videoID) {
		if inCatalog {
			return domain.Video{}, domain.ErrNotInPlaylist
		}
		return domain.Video{}, domain.ErrVideoNotFound
	}

	s.logger.Info("removed video from playlist", "playlist", p.Name, "videoID", videoID)
	return video, nil
}

// Clear empties a playlist; the playlist itself stays.
func (s *Service) Clear(name string) error {
	p, ok := s.lookup(name)
	if !ok {
		return domain.ErrPlaylistNotFound
	}
	p.Items = nil
	s.logger.Info("cleared playlist", "playlist", p.Name)
	return nil
}

// Delete removes a playlist entirely.
func (s *Service) Delete(name string) error {
	key := Key(name)
	p, ok := s.playlists[key]
	if !ok {
		return domain.ErrPlaylistNotFound
	}
	delete(s.playlists, key)
	s.logger.Info("deleted playlist", "playlist", p.Name)
	return nil
}
