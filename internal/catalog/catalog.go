// Package catalog provides the immutable video library a session runs against.
package catalog

import (
	"fmt"

	"github.com/mmcdole/reel/internal/domain"
)

// Library is an in-memory, read-only catalog. It implements domain.Catalog.
type Library struct {
	videos []domain.Video
	byID   map[string]int
}

// New builds a library from videos, keeping their order.
// Duplicate IDs are rejected since the ID is the only stable key.
func New(videos []domain.Video) (*Library, error) {
	lib := &Library{
		videos: make([]domain.Video, 0, len(videos)),
		byID:   make(map[string]int, len(videos)),
	}
	for _, v := range videos {
		if v.ID == "" {
			return nil, fmt.Errorf("video %q has an empty id", v.Title)
		}
		if _, dup := lib.byID[v.ID]; dup {
			return nil, fmt.Errorf("duplicate video id %q", v.ID)
		}
		lib.byID[v.ID] = len(lib.videos)
		lib.videos = append(lib.videos, cloneVideo(v))
	}
	return lib, nil
}

// Videos returns a copy of all videos in load order.
func (l *Library) Videos() []domain.Video {
	out := make([]domain.Video, len(l.videos))
	for i, v := range l.videos {
		out[i] = cloneVideo(v)
	}
	return out
}

// Video looks up a video by ID.
func (l *Library) Video(id string) (domain.Video, bool) {
	i, ok := l.byID[id]
	if !ok {
		return domain.Video{}, false
	}
	return cloneVideo(l.videos[i]), true
}

// Len returns the number of videos.
func (l *Library) Len() int { return len(l.videos) }

// cloneVideo copies the tag slice so callers cannot mutate catalog content
func cloneVideo(v domain.Video) domain.Video {
	v.Tags = append([]string(nil), v.Tags...)
	return v
}
