// Package moderation holds the moderation overlay: which videos are flagged and why.
package moderation

import (
	"log/slog"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

// Registry tracks flag entries by video ID. It implements domain.FlagLookup.
type Registry struct {
	catalog domain.Catalog
	entries map[string]domain.FlagEntry
	logger  *slog.Logger
}

// NewRegistry creates an empty registry over the catalog.
func NewRegistry(catalog domain.Catalog, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		catalog: catalog,
		entries: make(map[string]domain.FlagEntry),
		logger:  logger,
	}
}

// Flag marks a video as flagged. A blank reason records domain.DefaultFlagReason.
// The reason is only written when the flag succeeds.
func (r *Registry) Flag(videoID, reason string) (domain.Video, string, error) {
	video, ok := r.catalog.Video(videoID)
	if !ok {
		r.logger.Debug("flag rejected", "videoID", videoID, "error", domain.ErrVideoNotFound)
		return domain.Video{}, "", domain.ErrVideoNotFound
	}
	if r.IsFlagged(videoID) {
		r.logger.Debug("flag rejected", "videoID", videoID, "error", domain.ErrAlreadyFlagged)
		return domain.Video{}, "", domain.ErrAlreadyFlagged
	}

	if strings.TrimSpace(reason) == "" {
		reason = domain.DefaultFlagReason
	}
	r.entries[videoID] = domain.FlagEntry{Flagged: true, Reason: reason}
	r.logger.Info("flagged video", "videoID", videoID, "reason", reason)
	return video, reason, nil
}

// Unflag clears the flag on a video. The previous reason is kept but inert.
func (r *Registry) Unflag(videoID string) (domain.Video, error) {
	video, ok := r.catalog.Video(videoID)
	if !ok {
		return domain.Video{}, domain.ErrVideoNotFound
	}
	entry, ok := r.entries[videoID]
	if !ok || !entry.Flagged {
		return domain.Video{}, domain.ErrNotFlagged
	}

	entry.Flagged = false
	r.entries[videoID] = entry
	r.logger.Info("unflagged video", "videoID", videoID)
	return video, nil
}

// Entry returns the recorded entry for a video, flagged or not.
func (r *Registry) Entry(videoID string) (domain.FlagEntry, bool) {
	entry, ok := r.entries[videoID]
	return entry, ok
}

// IsFlagged reports whether the video is currently flagged.
func (r *Registry) IsFlagged(videoID string) bool {
	return r.entries[videoID].Flagged
}

// Reason returns the reason of an active flag, or "" when the video is not flagged.
func (r *Registry) Reason(videoID string) string {
	entry := r.entries[videoID]
	if !entry.Flagged {
		return ""
	}
	return entry.Reason
}

// Blocked returns a *domain.FlaggedError when the video is flagged, nil otherwise.
func (r *Registry) Blocked(videoID string) error {
	return Blocked(r, videoID)
}

// Blocked builds the error returned when an operation hits a flagged video.
func Blocked(lookup domain.FlagLookup, videoID string) error {
	entry, ok := lookup.Entry(videoID)
	if !ok || !entry.Flagged {
		return nil
	}
	return &domain.FlaggedError{VideoID: videoID, Reason: entry.Reason}
}

// Visible filters out flagged videos, preserving order.
func Visible(lookup domain.FlagLookup, videos []domain.Video) []domain.Video {
	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		if !lookup.IsFlagged(v.ID) {
			out = append(out, v)
		}
	}
	return out
}
