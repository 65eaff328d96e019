package domain

import "errors"

// Sentinel errors for session operations. All of them are expected user outcomes:
// the session stays usable after any of them.
var (
	// ErrVideoNotFound indicates the video ID is not in the catalog
	ErrVideoNotFound = errors.New("video does not exist")

	// ErrPlaylistNotFound indicates no playlist has the requested name
	ErrPlaylistNotFound = errors.New("playlist does not exist")

	// ErrPlaylistExists indicates a playlist with the same case-insensitive name exists
	ErrPlaylistExists = errors.New("a playlist with the same name already exists")

	// ErrInvalidPlaylistName indicates an empty name or one containing whitespace
	ErrInvalidPlaylistName = errors.New("playlist name must be non-empty and contain no whitespace")

	// ErrAlreadyInPlaylist indicates the video is already a member of the playlist
	ErrAlreadyInPlaylist = errors.New("video already added")

	// ErrNotInPlaylist indicates the video exists but is not a member of the playlist
	ErrNotInPlaylist = errors.New("video is not in playlist")

	// ErrFlagged indicates the video is flagged; see FlaggedError for the reason
	ErrFlagged = errors.New("video is currently flagged")

	// ErrAlreadyFlagged indicates the video is already flagged
	ErrAlreadyFlagged = errors.New("video is already flagged")

	// ErrNotFlagged indicates the video has no active flag
	ErrNotFlagged = errors.New("video is not flagged")

	// ErrNothingPlaying indicates the cursor is stopped
	ErrNothingPlaying = errors.New("no video is currently playing")

	// ErrNotPaused indicates resume was requested while playing
	ErrNotPaused = errors.New("video is not paused")

	// ErrNoResults indicates a search matched nothing
	ErrNoResults = errors.New("no search results")

	// ErrNoVideosAvailable indicates every catalog video is flagged
	ErrNoVideosAvailable = errors.New("no videos available")
)

// FlaggedError blocks an operation on a flagged video and carries the flag reason.
type FlaggedError struct {
	VideoID string
	Reason  string
}

func (e *FlaggedError) Error() string {
	return ErrFlagged.Error() + " (reason: " + e.Reason + ")"
}

// Unwrap lets errors.Is match ErrFlagged.
func (e *FlaggedError) Unwrap() error {
	return ErrFlagged
}
