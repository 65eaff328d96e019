package shell

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/playback"
	"github.com/mmcdole/reel/internal/service"
)

func renderPlay(out *Output, res playback.PlayResult) {
	if res.Stopped != nil {
		out.success("Stopping video: " + res.Stopped.Title)
	}
	out.success("Playing video: " + res.Video.Title)
}

func renderPlayError(out *Output, err error) {
	if errors.Is(err, domain.ErrNoVideosAvailable) {
		out.warn(reasonText(err))
		return
	}
	out.fail("Cannot play video: " + reasonText(err))
}

// reasonText renders an error as the sentence shown after "Cannot ...: "
func reasonText(err error) string {
	return capitalize(err.Error())
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func formatEntry(e service.VideoEntry) string {
	if e.Flagged {
		return e.Video.String() + " - FLAGGED (reason: " + e.Reason + ")"
	}
	return e.Video.String()
}

func formatStatus(st playback.Status) string {
	if st.State == domain.PlaybackPaused {
		return st.Video.String() + " - PAUSED"
	}
	return st.Video.String()
}
