package service

import (
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/moderation"
	"github.com/mmcdole/reel/internal/playback"
	"github.com/mmcdole/reel/internal/playlist"
	"github.com/mmcdole/reel/internal/search"
)

// VideoEntry is a video annotated with its moderation state.
type VideoEntry struct {
	Video   domain.Video
	Flagged bool
	Reason  string // Set only when Flagged
}

// FlagResult reports a successful flag. Stopped is set when the flagged
// video was current and playback was stopped as a consequence.
type FlagResult struct {
	Video   domain.Video
	Reason  string
	Stopped *domain.Video
}

// PlaylistView is a playlist with its videos resolved.
type PlaylistView struct {
	Name    string
	Entries []VideoEntry
}

// Session is one user's mutable state over a shared, read-only catalog.
// Every operation holds the session lock, so callers may use it from any goroutine.
type Session struct {
	mu sync.Mutex

	id        string
	catalog   domain.Catalog
	flags     *moderation.Registry
	playlists *playlist.Service
	cursor    *playback.Cursor
	search    *search.Service
	logger    *slog.Logger
}

// NewSession wires the moderation registry, playlists, playback cursor and
// search over catalog. A nil rng uses the package-level random source.
func NewSession(catalog domain.Catalog, rng *rand.Rand, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	logger = logger.With("session", id)

	flags := moderation.NewRegistry(catalog, logger)
	cursor := playback.NewCursor(catalog, flags, rng, logger)

	logger.Info("session started")
	return &Session{
		id:        id,
		catalog:   catalog,
		flags:     flags,
		playlists: playlist.NewService(catalog, flags, logger),
		cursor:    cursor,
		search:    search.NewService(catalog, flags, cursor, logger),
		logger:    logger,
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// === Catalog ===

// NumberOfVideos returns the catalog size, flagged videos included.
func (s *Session) NumberOfVideos() int {
	return len(s.catalog.Videos())
}

// ListVideos returns every catalog video sorted by ID, with flag annotations.
func (s *Session) ListVideos() []VideoEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos := s.catalog.Videos()
	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })

	entries := make([]VideoEntry, len(videos))
	for i, v := range videos {
		entries[i] = s.entry(v)
	}
	return entries
}

func (s *Session) entry(v domain.Video) VideoEntry {
	return VideoEntry{Video: v, Flagged: s.flags.IsFlagged(v.ID), Reason: s.flags.Reason(v.ID)}
}

// === Playback ===

// Play starts videoID, stopping whatever was current.
func (s *Session) Play(videoID string) (playback.PlayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Play(videoID)
}

// Stop stops the current video.
func (s *Session) Stop() (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Stop()
}

// PlayRandom plays a random unflagged video.
func (s *Session) PlayRandom() (playback.PlayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.PlayRandom()
}

// Pause pauses the current video.
func (s *Session) Pause() (playback.PauseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Pause()
}

// Resume continues a paused video.
func (s *Session) Resume() (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Resume()
}

// NowShowing reports the current video and its state.
func (s *Session) NowShowing() (playback.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.NowShowing()
}

// === Playlists ===

// CreatePlaylist creates an empty playlist.
func (s *Session) CreatePlaylist(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlists.Create(name)
}

// AddToPlaylist appends a video to a playlist.
func (s *Session) AddToPlaylist(name, videoID string) (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlists.Add(name, videoID)
}

// RemoveFromPlaylist removes a video from a playlist.
func (s *Session) RemoveFromPlaylist(name, videoID string) (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlists.Remove(name, videoID)
}

// ClearPlaylist empties a playlist.
func (s *Session) ClearPlaylist(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlists.Clear(name)
}

// DeletePlaylist removes a playlist.
func (s *Session) DeletePlaylist(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlists.Delete(name)
}

// ListPlaylists returns playlist display names in case-insensitive order.
func (s *Session) ListPlaylists() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlists.Names()
}

// ShowPlaylist returns a playlist's videos in insertion order, with flag annotations.
func (s *Session) ShowPlaylist(name string) (PlaylistView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.playlists.Playlist(name)
	if err != nil {
		return PlaylistView{}, err
	}

	view := PlaylistView{Name: p.Name, Entries: make([]VideoEntry, 0, p.Len())}
	for _, id := range p.Items {
		v, ok := s.catalog.Video(id)
		if !ok {
			s.logger.Warn("playlist references unknown video", "playlist", p.Name, "videoID", id)
			continue
		}
		view.Entries = append(view.Entries, s.entry(v))
	}
	return view, nil
}

// === Search ===

// SearchByTitle searches video IDs for term and plays sel if it picks a result.
func (s *Session) SearchByTitle(term string, sel search.Selection) (search.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search.ByTitle(term, sel)
}

// SearchByTag searches video tags for tag and plays sel if it picks a result.
func (s *Session) SearchByTag(tag string, sel search.Selection) (search.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search.ByTag(tag, sel)
}

// Suggest returns IDs or tags close to a query that found nothing.
func (s *Session) Suggest(query string, limit int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search.Suggest(query, limit)
}

// === Moderation ===

// Flag flags a video and stops it if it is the current one, playing or paused.
func (s *Session) Flag(videoID, reason string) (FlagResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, reason, err := s.flags.Flag(videoID, reason)
	if err != nil {
		return FlagResult{}, err
	}

	result := FlagResult{Video: video, Reason: reason}
	if stopped, ok := s.cursor.StopIfCurrent(videoID); ok {
		result.Stopped = &stopped
	}
	return result, nil
}

// Unflag clears a video's flag.
func (s *Session) Unflag(videoID string) (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags.Unflag(videoID)
}
