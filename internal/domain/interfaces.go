package domain

// Catalog is the read-only video library the session runs against.
// Implementations must not change content after construction.
type Catalog interface {
	// Videos returns every video in catalog (load) order
	Videos() []Video

	// Video looks up a video by ID
	Video(id string) (Video, bool)
}

// FlagLookup answers moderation queries. Implemented by the flag registry and
// consumed by playback, playlists and search.
type FlagLookup interface {
	// Entry returns the flag entry for a video, if one was ever recorded
	Entry(videoID string) (FlagEntry, bool)

	// IsFlagged reports whether the video is currently flagged
	IsFlagged(videoID string) bool
}
