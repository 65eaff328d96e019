// Package playback implements the single-session playback cursor.
package playback

import (
	"log/slog"
	"math/rand/v2"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/moderation"
)

// PlayResult describes a play transition. Stopped is set when a video was
// current before the new one started (possibly the same video).
type PlayResult struct {
	Video   domain.Video
	Stopped *domain.Video
}

// PauseResult describes a pause request. AlreadyPaused is a warning, not an error.
type PauseResult struct {
	Video         domain.Video
	AlreadyPaused bool
}

// Status is what is showing right now.
type Status struct {
	Video domain.Video
	State domain.PlaybackState
}

// Cursor tracks the play/pause/stop state and the current video.
// Invariant: current is non-empty iff state is not PlaybackStopped.
type Cursor struct {
	catalog domain.Catalog
	flags   domain.FlagLookup
	rng     *rand.Rand
	logger  *slog.Logger

	state   domain.PlaybackState
	current string
}

// NewCursor creates a stopped cursor. A nil rng uses the package-level random source.
func NewCursor(catalog domain.Catalog, flags domain.FlagLookup, rng *rand.Rand, logger *slog.Logger) *Cursor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cursor{
		catalog: catalog,
		flags:   flags,
		rng:     rng,
		logger:  logger,
		state:   domain.PlaybackStopped,
	}
}

// State returns the current playback state.
func (c *Cursor) State() domain.PlaybackState { return c.state }

// Current returns the current video ID, if any.
func (c *Cursor) Current() (string, bool) {
	return c.current, c.state.Active()
}

// Play makes videoID the current video. Whatever was current is stopped first,
// even when it is the same video. Flagged or unknown videos leave the state untouched.
func (c *Cursor) Play(videoID string) (PlayResult, error) {
	if err := moderation.Blocked(c.flags, videoID); err != nil {
		c.logger.Debug("play refused", "videoID", videoID, "error", err)
		return PlayResult{}, err
	}
	video, ok := c.catalog.Video(videoID)
	if !ok {
		c.logger.Debug("play refused", "videoID", videoID, "error", domain.ErrVideoNotFound)
		return PlayResult{}, domain.ErrVideoNotFound
	}

	var result PlayResult
	if c.state.Active() {
		if prev, err := c.Stop(); err == nil {
			result.Stopped = &prev
		}
	}

	c.state = domain.PlaybackPlaying
	c.current = videoID
	result.Video = video
	c.logger.Info("playing video", "videoID", videoID, "title", video.Title)
	return result, nil
}

// Stop stops the current video and reports it.
func (c *Cursor) Stop() (domain.Video, error) {
	if !c.state.Active() {
		return domain.Video{}, domain.ErrNothingPlaying
	}
	video, _ := c.catalog.Video(c.current)

	c.state = domain.PlaybackStopped
	c.current = ""
	c.logger.Info("stopped video", "videoID", video.ID)
	return video, nil
}

// Pause pauses the current video. Pausing twice is reported, not refused.
func (c *Cursor) Pause() (PauseResult, error) {
	if !c.state.Active() {
		return PauseResult{}, domain.ErrNothingPlaying
	}
	video, _ := c.catalog.Video(c.current)
	if c.state == domain.PlaybackPaused {
		return PauseResult{Video: video, AlreadyPaused: true}, nil
	}

	c.state = domain.PlaybackPaused
	c.logger.Info("paused video", "videoID", video.ID)
	return PauseResult{Video: video}, nil
}

// Resume continues a paused video.
func (c *Cursor) Resume() (domain.Video, error) {
	switch c.state {
	case domain.PlaybackStopped:
		return domain.Video{}, domain.ErrNothingPlaying
	case domain.PlaybackPlaying:
		return domain.Video{}, domain.ErrNotPaused
	}
	video, _ := c.catalog.Video(c.current)

	c.state = domain.PlaybackPlaying
	c.logger.Info("resumed video", "videoID", video.ID)
	return video, nil
}

// PlayRandom plays a uniformly chosen unflagged video.
func (c *Cursor) PlayRandom() (PlayResult, error) {
	candidates := moderation.Visible(c.flags, c.catalog.Videos())
	if len(candidates) == 0 {
		return PlayResult{}, domain.ErrNoVideosAvailable
	}
	return c.Play(candidates[c.intN(len(candidates))].ID)
}

// NowShowing reports the current video and whether it is paused.
func (c *Cursor) NowShowing() (Status, error) {
	if !c.state.Active() {
		return Status{}, domain.ErrNothingPlaying
	}
	video, _ := c.catalog.Video(c.current)
	return Status{Video: video, State: c.state}, nil
}

// StopIfCurrent stops playback when videoID is the current video, whether
// playing or paused. It returns the stopped video.
func (c *Cursor) StopIfCurrent(videoID string) (domain.Video, bool) {
	if !c.state.Active() || c.current != videoID {
		return domain.Video{}, false
	}
	video, err := c.Stop()
	return video, err == nil
}

func (c *Cursor) intN(n int) int {
	if c.rng == nil {
		return rand.IntN(n)
	}
	return c.rng.IntN(n)
}
