package playback

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/mmcdole/reel/internal/catalog"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCursor(t *testing.T) (*Cursor, *moderation.Registry) {
	t.Helper()
	lib, err := catalog.New([]domain.Video{
		{ID: "v1", Title: "Amazing Cat Video #1", Tags: []string{"#cat", "#animal"}},
		{ID: "v2", Title: "Another Cat Video", Tags: []string{"#cat"}},
		{ID: "v3", Title: "Funny Dogs", Tags: []string{"#dog"}},
	})
	require.NoError(t, err)
	flags := moderation.NewRegistry(lib, nil)
	return NewCursor(lib, flags, rand.New(rand.NewPCG(1, 2)), nil), flags
}

func assertStopped(t *testing.T, c *Cursor) {
	t.Helper()
	assert.Equal(t, domain.PlaybackStopped, c.State())
	_, ok := c.Current()
	assert.False(t, ok)
}

func TestPlay(t *testing.T) {
	c, _ := newTestCursor(t)
	assertStopped(t, c)

	res, err := c.Play("v1")
	require.NoError(t, err)
	assert.Equal(t, "Amazing Cat Video #1", res.Video.Title)
	assert.Nil(t, res.Stopped)
	assert.Equal(t, domain.PlaybackPlaying, c.State())

	res, err = c.Play("v3")
	require.NoError(t, err)
	require.NotNil(t, res.Stopped)
	assert.Equal(t, "v1", res.Stopped.ID)
	assert.Equal(t, "v3", res.Video.ID)

	id, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, "v3", id)
}

func TestPlaySameVideoRestarts(t *testing.T) {
	c, _ := newTestCursor(t)
	_, err := c.Play("v1")
	require.NoError(t, err)

	res, err := c.Play("v1")
	require.NoError(t, err)
	require.NotNil(t, res.Stopped)
	assert.Equal(t, "v1", res.Stopped.ID)
	assert.Equal(t, "v1", res.Video.ID)
	assert.Equal(t, domain.PlaybackPlaying, c.State())
}

func TestPlayClearsPause(t *testing.T) {
	c, _ := newTestCursor(t)
	_, err := c.Play("v1")
	require.NoError(t, err)
	_, err = c.Pause()
	require.NoError(t, err)

	res, err := c.Play("v2")
	require.NoError(t, err)
	require.NotNil(t, res.Stopped)
	assert.Equal(t, domain.PlaybackPlaying, c.State())
}

func TestPlayRefusals(t *testing.T) {
	c, flags := newTestCursor(t)
	_, err := c.Play("v1")
	require.NoError(t, err)

	_, err = c.Play("missing")
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)

	_, _, err = flags.Flag("v2", "dont_like")
	require.NoError(t, err)
	_, err = c.Play("v2")
	require.ErrorIs(t, err, domain.ErrFlagged)
	var flagged *domain.FlaggedError
	require.True(t, errors.As(err, &flagged))
	assert.Equal(t, "dont_like", flagged.Reason)

	// Neither refusal touched the current video.
	id, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, "v1", id)
	assert.Equal(t, domain.PlaybackPlaying, c.State())
}

func TestStop(t *testing.T) {
	c, _ := newTestCursor(t)
	_, err := c.Stop()
	assert.ErrorIs(t, err, domain.ErrNothingPlaying)

	_, err = c.Play("v2")
	require.NoError(t, err)
	video, err := c.Stop()
	require.NoError(t, err)
	assert.Equal(t, "Another Cat Video", video.Title)
	assertStopped(t, c)

	_, err = c.Stop()
	assert.ErrorIs(t, err, domain.ErrNothingPlaying)
}

func TestPause(t *testing.T) {
	c, _ := newTestCursor(t)
	_, err := c.Pause()
	assert.ErrorIs(t, err, domain.ErrNothingPlaying)

	_, err = c.Play("v1")
	require.NoError(t, err)

	res, err := c.Pause()
	require.NoError(t, err)
	assert.False(t, res.AlreadyPaused)
	assert.Equal(t, domain.PlaybackPaused, c.State())

	res, err = c.Pause()
	require.NoError(t, err)
	assert.True(t, res.AlreadyPaused)
	assert.Equal(t, "v1", res.Video.ID)
	assert.Equal(t, domain.PlaybackPaused, c.State())
	id, _ := c.Current()
	assert.Equal(t, "v1", id)
}

func TestResume(t *testing.T) {
	c, _ := newTestCursor(t)
	_, err := c.Resume()
	assert.ErrorIs(t, err, domain.ErrNothingPlaying)

	_, err = c.Play("v1")
	require.NoError(t, err)
	_, err = c.Resume()
	assert.ErrorIs(t, err, domain.ErrNotPaused)

	_, err = c.Pause()
	require.NoError(t, err)
	video, err := c.Resume()
	require.NoError(t, err)
	assert.Equal(t, "v1", video.ID)
	assert.Equal(t, domain.PlaybackPlaying, c.State())
}

func TestNowShowing(t *testing.T) {
	c, _ := newTestCursor(t)
	_, err := c.NowShowing()
	assert.ErrorIs(t, err, domain.ErrNothingPlaying)

	_, err = c.Play("v3")
	require.NoError(t, err)
	status, err := c.NowShowing()
	require.NoError(t, err)
	assert.Equal(t, "v3", status.Video.ID)
	assert.Equal(t, domain.PlaybackPlaying, status.State)

	_, err = c.Pause()
	require.NoError(t, err)
	status, err = c.NowShowing()
	require.NoError(t, err)
	assert.Equal(t, domain.PlaybackPaused, status.State)
}

func TestPlayRandom(t *testing.T) {
	c, flags := newTestCursor(t)
	_, _, err := flags.Flag("v1", "")
	require.NoError(t, err)
	_, _, err = flags.Flag("v2", "")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		res, err := c.PlayRandom()
		require.NoError(t, err)
		assert.Equal(t, "v3", res.Video.ID)
	}

	_, _, err = flags.Flag("v3", "")
	require.NoError(t, err)
	_, err = c.Stop()
	require.NoError(t, err)

	_, err = c.PlayRandom()
	assert.ErrorIs(t, err, domain.ErrNoVideosAvailable)
	assertStopped(t, c)
}

func TestPlayRandomCoversCatalog(t *testing.T) {
	c, _ := newTestCursor(t)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		res, err := c.PlayRandom()
		require.NoError(t, err)
		seen[res.Video.ID] = true
	}
	assert.Len(t, seen, 3)
}

func TestStopIfCurrent(t *testing.T) {
	c, _ := newTestCursor(t)
	_, ok := c.StopIfCurrent("v1")
	assert.False(t, ok)

	_, err := c.Play("v1")
	require.NoError(t, err)
	_, ok = c.StopIfCurrent("v2")
	assert.False(t, ok)
	assert.Equal(t, domain.PlaybackPlaying, c.State())

	video, ok := c.StopIfCurrent("v1")
	assert.True(t, ok)
	assert.Equal(t, "v1", video.ID)
	assertStopped(t, c)

	_, err = c.Play("v2")
	require.NoError(t, err)
	_, err = c.Pause()
	require.NoError(t, err)
	_, ok = c.StopIfCurrent("v2")
	assert.True(t, ok)
	assertStopped(t, c)
}
