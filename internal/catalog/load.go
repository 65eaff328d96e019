package catalog

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

//go:embed videos.txt
var sampleCatalog string

// Sample returns the built-in catalog used when no catalog file is configured.
func Sample() *Library {
	lib, err := Parse(strings.NewReader(sampleCatalog), false)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return lib
}

// Load reads a catalog file. An empty path yields the built-in sample.
func Load(path string, strict bool, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		lib := Sample()
		logger.Info("loaded built-in catalog", "videos", lib.Len())
		return lib, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	lib, err := Parse(f, strict)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	logger.Info("loaded catalog", "path", path, "videos", lib.Len())
	return lib, nil
}

// Parse reads catalog lines of the form
//
//	Title | video_id | #tag1, #tag2
//
// Blank lines and lines starting with "//" are skipped. Tags are lowercased.
// In non-strict mode a repeated ID replaces the earlier record in place;
// in strict mode it is an error.
func Parse(r io.Reader, strict bool) (*Library, error) {
	var videos []domain.Video
	index := make(map[string]int)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		video, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		if i, dup := index[video.ID]; dup {
			if strict {
				return nil, fmt.Errorf("line %d: duplicate video id %q", lineNum, video.ID)
			}
			videos[i] = video
			continue
		}
		index[video.ID] = len(videos)
		videos = append(videos, video)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return New(videos)
}

func parseLine(line string) (domain.Video, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 2 || len(fields) > 3 {
		return domain.Video{}, fmt.Errorf("expected \"title | id | tags\", got %q", line)
	}

	video := domain.Video{
		Title: strings.TrimSpace(fields[0]),
		ID:    strings.TrimSpace(fields[1]),
	}
	if video.ID == "" {
		return domain.Video{}, fmt.Errorf("missing video id in %q", line)
	}

	if len(fields) == 3 {
		for _, tag := range strings.Split(fields[2], ",") {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag != "" {
				video.Tags = append(video.Tags, tag)
			}
		}
	}
	return video, nil
}
