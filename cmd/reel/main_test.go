package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig points logs and history at a temp dir. shellExtra lines
// are added under the shell section, extra at top level.
func writeTestConfig(t *testing.T, shellExtra, extra string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "logging:\n  file: " + filepath.Join(dir, "reel.log") + "\n" +
		"shell:\n  history_file: " + filepath.Join(dir, "history.db") + "\n" + shellExtra + extra
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "reel dev\n", out)
}

func TestCatalogCommand(t *testing.T) {
	cfg := writeTestConfig(t, "", "")
	out, err := execute(t, "", "--config", cfg, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "funny_dogs_video_id")
	assert.Contains(t, out, "Life at Google")
	assert.Contains(t, out, "Amazing Cats")
}

func TestCatalogCommandTagFilter(t *testing.T) {
	cfg := writeTestConfig(t, "", "")
	out, err := execute(t, "", "--config", cfg, "catalog", "--tag", "#CAT")
	require.NoError(t, err)
	assert.Contains(t, out, "amazing_cats_video_id")
	assert.NotContains(t, out, "funny_dogs_video_id")
}

func TestCatalogFlagOverridesConfig(t *testing.T) {
	cfg := writeTestConfig(t, "", "")
	catalogPath := filepath.Join(t.TempDir(), "videos.txt")
	require.NoError(t, os.WriteFile(catalogPath, []byte("Solo | solo_id | #one\n"), 0644))

	out, err := execute(t, "", "--config", cfg, "--catalog", catalogPath, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "solo_id")
	assert.NotContains(t, out, "funny_dogs_video_id")
}

func TestShellLineMode(t *testing.T) {
	cfg := writeTestConfig(t, "  prompt: \"$ \"\n", "")

	out, err := execute(t, "NUMBER_OF_VIDEOS\nPLAY nothing_video_id\nSHOW_PLAYING\nEXIT\n", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "$ 5 videos in the library")
	assert.Contains(t, out, "Playing video: Video about nothing")
	assert.Contains(t, out, "Currently playing: Video about nothing (nothing_video_id) []")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestShellRejectsArguments(t *testing.T) {
	cfg := writeTestConfig(t, "", "")
	_, err := execute(t, "", "--config", cfg, "PLAY")
	assert.Error(t, err)
}

func TestBadConfig(t *testing.T) {
	cfg := writeTestConfig(t, "", "playback:\n  seed: not-a-number\n")
	_, err := execute(t, "", "--config", cfg, "catalog")
	assert.Error(t, err)
}

func TestCatalogTableNumbersRows(t *testing.T) {
	out := catalogTable([]domain.Video{
		{ID: "a_id", Title: "A", Tags: []string{"#x"}},
		{ID: "b_id", Title: "B"},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6) // top border, header, separator, two rows, bottom border
	assert.Contains(t, lines[3], "1")
	assert.Contains(t, lines[3], "a_id")
	assert.Contains(t, lines[4], "2")
	assert.Contains(t, lines[4], "b_id")
}
