package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `
// comment
Amazing Cats | amazing_cats_video_id |  #Cat , #animal
Video about nothing | nothing_video_id |
Bare | bare_id
`
	lib, err := Parse(strings.NewReader(input), true)
	require.NoError(t, err)
	require.Equal(t, 3, lib.Len())

	videos := lib.Videos()
	assert.Equal(t, "amazing_cats_video_id", videos[0].ID)
	assert.Equal(t, "Amazing Cats", videos[0].Title)
	assert.Equal(t, []string{"#cat", "#animal"}, videos[0].Tags)
	assert.Empty(t, videos[1].Tags)
	assert.Equal(t, "bare_id", videos[2].ID)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing separator", "just a title"},
		{"too many fields", "a | b | c | d"},
		{"empty id", "Title |  | #tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), false)
			assert.Error(t, err)
		})
	}
}

func TestParseDuplicateIDs(t *testing.T) {
	input := "First | v1 | #a\nSecond | v2 |\nReplaced | v1 | #b\n"

	_, err := Parse(strings.NewReader(input), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	lib, err := Parse(strings.NewReader(input), false)
	require.NoError(t, err)
	videos := lib.Videos()
	require.Len(t, videos, 2)
	assert.Equal(t, "Replaced", videos[0].Title)
	assert.Equal(t, "v2", videos[1].ID)
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]domain.Video{{ID: "a"}, {ID: "a"}})
	assert.Error(t, err)
}

func TestVideosAreCopies(t *testing.T) {
	lib, err := New([]domain.Video{{ID: "v1", Title: "One", Tags: []string{"#x"}}})
	require.NoError(t, err)

	videos := lib.Videos()
	videos[0].Tags[0] = "#mutated"

	v, ok := lib.Video("v1")
	require.True(t, ok)
	assert.Equal(t, []string{"#x"}, v.Tags)

	_, ok = lib.Video("missing")
	assert.False(t, ok)
}

func TestSample(t *testing.T) {
	lib := Sample()
	assert.Equal(t, 5, lib.Len())
	v, ok := lib.Video("funny_dogs_video_id")
	require.True(t, ok)
	assert.Equal(t, "Funny Dogs (funny_dogs_video_id) [#dog #animal]", v.String())
}

func TestLoad(t *testing.T) {
	lib, err := Load("", false, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, lib.Len())

	path := filepath.Join(t.TempDir(), "videos.txt")
	require.NoError(t, os.WriteFile(path, []byte("One | v1 | #a\n"), 0o644))
	lib, err = Load(path, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), false, nil)
	assert.Error(t, err)
}
