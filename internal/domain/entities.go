package domain

import (
	"fmt"
	"strings"
)

// Video is a single catalog record. Catalog content never changes after load.
type Video struct {
	ID    string   // Stable unique identifier
	Title string   // Display title, not guaranteed unique
	Tags  []string // Lowercase tags in load order
}

// String renders the video as "Title (id) [#tag1 #tag2]".
func (v Video) String() string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
}

// HasTag reports whether the video carries the given tag (case-insensitive).
func (v Video) HasTag(tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TagText returns all tags concatenated in load order, the form tag search matches against.
func (v Video) TagText() string {
	return strings.Join(v.Tags, "")
}

// DefaultFlagReason is recorded when a video is flagged without a reason.
const DefaultFlagReason = "Not supplied"

// FlagEntry is the moderation state of one video.
// Reason keeps the value from the most recent successful flag, even after unflagging.
type FlagEntry struct {
	Flagged bool
	Reason  string
}

// Playlist is a named, ordered collection of video IDs without duplicates.
type Playlist struct {
	Name  string   // Display name as originally created
	Key   string   // Lowercase name, unique across the store
	Items []string // Video IDs in insertion order
}

// Len returns the number of videos in the playlist.
func (p *Playlist) Len() int { return len(p.Items) }

// Contains reports whether the playlist holds the video.
func (p *Playlist) Contains(videoID string) bool {
	return p.indexOf(videoID) >= 0
}

func (p *Playlist) indexOf(videoID string) int {
	for i, id := range p.Items {
		if id == videoID {
			return i
		}
	}
	return -1
}

// Remove drops the video from the playlist, returning false if it was not a member.
func (p *Playlist) Remove(videoID string) bool {
	i := p.indexOf(videoID)
	if i < 0 {
		return false
	}
	p.Items = append(p.Items[:i], p.Items[i+1:]...)
	return true
}

// PlaybackState is the state of the single playback cursor
type PlaybackState int

const (
	PlaybackStopped PlaybackState = iota
	PlaybackPlaying
	PlaybackPaused
)

// String returns a human-readable representation of the playback state
func (s PlaybackState) String() string {
	switch s {
	case PlaybackStopped:
		return "Stopped"
	case PlaybackPlaying:
		return "Playing"
	case PlaybackPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Active returns true when a video is current (playing or paused).
func (s PlaybackState) Active() bool {
	return s != PlaybackStopped
}
