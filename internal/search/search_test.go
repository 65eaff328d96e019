package search

import (
	"math/rand/v2"
	"testing"

	"github.com/mmcdole/reel/internal/catalog"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/moderation"
	"github.com/mmcdole/reel/internal/playback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	search *Service
	flags  *moderation.Registry
	cursor *playback.Cursor
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	lib, err := catalog.New([]domain.Video{
		{ID: "v2", Title: "Another Cat Video", Tags: []string{"#cat"}},
		{ID: "v1", Title: "Amazing Cat Video #1", Tags: []string{"#cat", "#animal"}},
		{ID: "dog_v3", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}},
	})
	require.NoError(t, err)
	flags := moderation.NewRegistry(lib, nil)
	cursor := playback.NewCursor(lib, flags, rand.New(rand.NewPCG(1, 1)), nil)
	return fixture{
		search: NewService(lib, flags, cursor, nil),
		flags:  flags,
		cursor: cursor,
	}
}

func ids(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Video.ID
	}
	return out
}

func TestByTitleMatchesIDsSorted(t *testing.T) {
	f := newFixture(t)

	res, err := f.search.ByTitle("V", Selection{})
	require.NoError(t, err)
	assert.Equal(t, []string{"dog_v3", "v1", "v2"}, ids(res.Matches))
	for i, m := range res.Matches {
		assert.Equal(t, i+1, m.Rank)
	}
	assert.Nil(t, res.Played)
}

func TestByTitleMatchesIDNotTitle(t *testing.T) {
	f := newFixture(t)

	_, err := f.search.ByTitle("cat", Selection{})
	assert.ErrorIs(t, err, domain.ErrNoResults)

	res, err := f.search.ByTitle("DOG", Selection{})
	require.NoError(t, err)
	assert.Equal(t, []string{"dog_v3"}, ids(res.Matches))
}

func TestByTitleHidesFlagged(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.flags.Flag("v1", "")
	require.NoError(t, err)

	res, err := f.search.ByTitle("v", Selection{})
	require.NoError(t, err)
	assert.Equal(t, []string{"dog_v3", "v2"}, ids(res.Matches))

	_, _, err = f.flags.Flag("v2", "")
	require.NoError(t, err)
	_, err = f.search.ByTitle("v2", Selection{})
	assert.ErrorIs(t, err, domain.ErrNoResults)
}

func TestByTag(t *testing.T) {
	f := newFixture(t)

	res, err := f.search.ByTag("#CAT", Selection{})
	require.NoError(t, err)
	// Catalog order, not sorted.
	assert.Equal(t, []string{"v2", "v1"}, ids(res.Matches))

	res, err = f.search.ByTag("#animal", Selection{})
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "dog_v3"}, ids(res.Matches))

	_, err = f.search.ByTag("cat", Selection{})
	assert.ErrorIs(t, err, domain.ErrNoResults)

	_, err = f.search.ByTag("#bird", Selection{})
	assert.ErrorIs(t, err, domain.ErrNoResults)
}

func TestByTagScenarioFlaggedHidden(t *testing.T) {
	f := newFixture(t)
	_, reason, err := f.flags.Flag("v2", "spam")
	require.NoError(t, err)
	assert.Equal(t, "spam", reason)

	res, err := f.search.ByTag("#cat", Selection{})
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, 1, res.Matches[0].Rank)
	assert.Equal(t, "v1", res.Matches[0].Video.ID)
}

func TestSelectionPlays(t *testing.T) {
	f := newFixture(t)

	res, err := f.search.ByTitle("v", Select(2))
	require.NoError(t, err)
	require.NotNil(t, res.Played)
	assert.Equal(t, "v1", res.Played.Video.ID)

	id, ok := f.cursor.Current()
	require.True(t, ok)
	assert.Equal(t, "v1", id)

	res, err = f.search.ByTag("#dog", ParseSelection("1"))
	require.NoError(t, err)
	require.NotNil(t, res.Played)
	require.NotNil(t, res.Played.Stopped)
	assert.Equal(t, "v1", res.Played.Stopped.ID)
	assert.Equal(t, "dog_v3", res.Played.Video.ID)
}

func TestInvalidSelectionIsIgnored(t *testing.T) {
	f := newFixture(t)

	for _, input := range []string{"", "no", "0", "-1", "4", "1.5"} {
		t.Run(input, func(t *testing.T) {
			res, err := f.search.ByTitle("v", ParseSelection(input))
			require.NoError(t, err)
			assert.Len(t, res.Matches, 3)
			assert.Nil(t, res.Played)
			assert.Equal(t, domain.PlaybackStopped, f.cursor.State())
		})
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"3", 3, true},
		{" 2 ", 2, true},
		{"0", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSelection(tt.input).Rank()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"dog_v3"}, f.search.Suggest("dg3", 3))
	assert.Equal(t, []string{"#animal"}, f.search.Suggest("#anml", 3))
	assert.Empty(t, f.search.Suggest("zzz", 3))
	assert.Empty(t, f.search.Suggest("", 3))

	_, _, err := f.flags.Flag("dog_v3", "")
	require.NoError(t, err)
	assert.Empty(t, f.search.Suggest("dg3", 3))
}
