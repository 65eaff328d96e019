package shell

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mmcdole/reel/internal/search"
	"github.com/sahilm/fuzzy"
)

// command describes one shell command. maxArgs < 0 means unbounded.
type command struct {
	name    string
	args    string
	help    string
	minArgs int
	maxArgs int
	run     func(s *Shell, args []string) Output
}

func (c command) usage() string {
	if c.args == "" {
		return c.name
	}
	return c.name + " " + c.args
}

var commands []command

func init() {
	commands = []command{
		{"NUMBER_OF_VIDEOS", "", "Shows how many videos are in the library.", 0, 0, (*Shell).numberOfVideos},
		{"SHOW_ALL_VIDEOS", "", "Lists all videos.", 0, 0, (*Shell).showAllVideos},
		{"PLAY", "<video_id>", "Plays the specified video.", 1, 1, (*Shell).play},
		{"PLAY_RANDOM", "", "Plays a random video.", 0, 0, (*Shell).playRandom},
		{"STOP", "", "Stops the current video.", 0, 0, (*Shell).stop},
		{"PAUSE", "", "Pauses the current video.", 0, 0, (*Shell).pause},
		{"CONTINUE", "", "Resumes playing the current video.", 0, 0, (*Shell).resume},
		{"SHOW_PLAYING", "", "Displays the title, video_id and tags of the video currently playing.", 0, 0, (*Shell).showPlaying},
		{"CREATE_PLAYLIST", "<playlist_name>", "Creates a new (empty) playlist with the provided name.", 1, 1, (*Shell).createPlaylist},
		{"ADD_TO_PLAYLIST", "<playlist_name> <video_id>", "Adds the requested video to the playlist.", 2, 2, (*Shell).addToPlaylist},
		{"REMOVE_FROM_PLAYLIST", "<playlist_name> <video_id>", "Removes the specified video from the specified playlist.", 2, 2, (*Shell).removeFromPlaylist},
		{"CLEAR_PLAYLIST", "<playlist_name>", "Removes all videos from the playlist.", 1, 1, (*Shell).clearPlaylist},
		{"DELETE_PLAYLIST", "<playlist_name>", "Deletes the playlist.", 1, 1, (*Shell).deletePlaylist},
		{"SHOW_PLAYLIST", "<playlist_name>", "List all the videos in this playlist.", 1, 1, (*Shell).showPlaylist},
		{"SHOW_ALL_PLAYLISTS", "", "Display all the available playlists.", 0, 0, (*Shell).showAllPlaylists},
		{"SEARCH_VIDEOS", "<search_term>", "Display all the videos whose ids contain the search_term.", 1, 1, (*Shell).searchVideos},
		{"SEARCH_VIDEOS_WITH_TAG", "<tag_name>", "Display all videos whose tags contains the provided tag.", 1, 1, (*Shell).searchVideosWithTag},
		{"FLAG_VIDEO", "<video_id> [flag_reason]", "Mark a video as flagged.", 1, -1, (*Shell).flagVideo},
		{"ALLOW_VIDEO", "<video_id>", "Removes a flag from a video.", 1, 1, (*Shell).allowVideo},
		{"HELP", "", "Displays help.", 0, 0, (*Shell).help},
		{"EXIT", "", "Terminates the program execution.", 0, 0, (*Shell).exit},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// CommandNames lists every command name in help order.
func CommandNames() []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}
	return names
}

func unknownCommand(input string) Output {
	var out Output
	out.fail("Please enter a valid command, type HELP for a list of available commands.")
	if matches := fuzzy.Find(strings.ToUpper(input), CommandNames()); len(matches) > 0 {
		out.info(fmt.Sprintf("Did you mean %s?", matches[0].Str))
	}
	return out
}

// HelpTable renders the command reference.
func HelpTable() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Command", "Description"})
	for _, c := range commands {
		tw.AppendRow(table.Row{c.usage(), c.help})
	}
	return tw.Render()
}

// === Handlers ===

func (s *Shell) numberOfVideos(_ []string) Output {
	var out Output
	out.info(fmt.Sprintf("%d videos in the library", s.session.NumberOfVideos()))
	return out
}

func (s *Shell) showAllVideos(_ []string) Output {
	var out Output
	out.info("Here's a list of all available videos:")
	for _, e := range s.session.ListVideos() {
		out.info(formatEntry(e))
	}
	return out
}

func (s *Shell) play(args []string) Output {
	var out Output
	res, err := s.session.Play(args[0])
	if err != nil {
		renderPlayError(&out, err)
		return out
	}
	renderPlay(&out, res)
	return out
}

func (s *Shell) playRandom(_ []string) Output {
	var out Output
	res, err := s.session.PlayRandom()
	if err != nil {
		renderPlayError(&out, err)
		return out
	}
	renderPlay(&out, res)
	return out
}

func (s *Shell) stop(_ []string) Output {
	var out Output
	video, err := s.session.Stop()
	if err != nil {
		out.fail("Cannot stop video: " + reasonText(err))
		return out
	}
	out.success("Stopping video: " + video.Title)
	return out
}

func (s *Shell) pause(_ []string) Output {
	var out Output
	res, err := s.session.Pause()
	switch {
	case err != nil:
		out.fail("Cannot pause video: " + reasonText(err))
	case res.AlreadyPaused:
		out.warn("Video already paused: " + res.Video.Title)
	default:
		out.success("Pausing video: " + res.Video.Title)
	}
	return out
}

func (s *Shell) resume(_ []string) Output {
	var out Output
	video, err := s.session.Resume()
	if err != nil {
		out.fail("Cannot continue video: " + reasonText(err))
		return out
	}
	out.success("Continuing video: " + video.Title)
	return out
}

func (s *Shell) showPlaying(_ []string) Output {
	var out Output
	status, err := s.session.NowShowing()
	if err != nil {
		out.info(reasonText(err))
		return out
	}
	out.info("Currently playing: " + formatStatus(status))
	return out
}

func (s *Shell) createPlaylist(args []string) Output {
	var out Output
	name := args[0]
	if err := s.session.CreatePlaylist(name); err != nil {
		out.fail("Cannot create playlist: " + reasonText(err))
		return out
	}
	out.success("Successfully created new playlist: " + name)
	return out
}

func (s *Shell) addToPlaylist(args []string) Output {
	var out Output
	name, id := args[0], args[1]
	video, err := s.session.AddToPlaylist(name, id)
	if err != nil {
		out.fail(fmt.Sprintf("Cannot add video to %s: %s", name, reasonText(err)))
		return out
	}
	out.success(fmt.Sprintf("Added video to %s: %s", name, video.Title))
	return out
}

func (s *Shell) removeFromPlaylist(args []string) Output {
	var out Output
	name, id := args[0], args[1]
	video, err := s.session.RemoveFromPlaylist(name, id)
	if err != nil {
		out.fail(fmt.Sprintf("Cannot remove video from %s: %s", name, reasonText(err)))
		return out
	}
	out.success(fmt.Sprintf("Removed video from %s: %s", name, video.Title))
	return out
}

func (s *Shell) clearPlaylist(args []string) Output {
	var out Output
	name := args[0]
	if err := s.session.ClearPlaylist(name); err != nil {
		out.fail(fmt.Sprintf("Cannot clear playlist %s: %s", name, reasonText(err)))
		return out
	}
	out.success("Successfully removed all videos from " + name)
	return out
}

func (s *Shell) deletePlaylist(args []string) Output {
	var out Output
	name := args[0]
	if err := s.session.DeletePlaylist(name); err != nil {
		out.fail(fmt.Sprintf("Cannot delete playlist %s: %s", name, reasonText(err)))
		return out
	}
	out.success("Deleted playlist: " + name)
	return out
}

func (s *Shell) showPlaylist(args []string) Output {
	var out Output
	name := args[0]
	view, err := s.session.ShowPlaylist(name)
	if err != nil {
		out.fail(fmt.Sprintf("Cannot show playlist %s: %s", name, reasonText(err)))
		return out
	}
	out.info("Showing playlist: " + name)
	if len(view.Entries) == 0 {
		out.info("No videos here yet")
		return out
	}
	for _, e := range view.Entries {
		out.info(formatEntry(e))
	}
	return out
}

func (s *Shell) showAllPlaylists(_ []string) Output {
	var out Output
	names := s.session.ListPlaylists()
	if len(names) == 0 {
		out.info("No playlists exist yet")
		return out
	}
	out.info("Showing all playlists:")
	for _, n := range names {
		out.info(n)
	}
	return out
}

func (s *Shell) searchVideos(args []string) Output {
	return s.runSearch(&pendingSearch{query: args[0]})
}

func (s *Shell) searchVideosWithTag(args []string) Output {
	return s.runSearch(&pendingSearch{query: args[0], byTag: true})
}

func (s *Shell) runSearch(p *pendingSearch) Output {
	var out Output
	res, err := s.search(p, search.Selection{})
	if err != nil {
		out.info("No search results for " + p.query)
		if s.opts.Suggestions {
			if hints := s.session.Suggest(p.query, maxSuggestions); len(hints) > 0 {
				out.info("Did you mean: " + strings.Join(hints, ", ") + "?")
			}
		}
		return out
	}

	out.info(fmt.Sprintf("Here are the results for %s:", p.query))
	for _, m := range res.Matches {
		out.info(fmt.Sprintf("%d) %s", m.Rank, m.Video))
	}
	out.info("Would you like to play any of the above? If yes, specify the number of the video.")
	out.info("If your answer is not a valid number, we will assume it's a no.")

	s.pending = p
	out.Prompting = true
	return out
}

func (s *Shell) flagVideo(args []string) Output {
	var out Output
	reason := strings.Join(args[1:], " ")
	res, err := s.session.Flag(args[0], reason)
	if err != nil {
		out.fail("Cannot flag video: " + reasonText(err))
		return out
	}
	if res.Stopped != nil {
		out.success("Stopping video: " + res.Stopped.Title)
	}
	out.success(fmt.Sprintf("Successfully flagged video: %s (reason: %s)", res.Video.Title, res.Reason))
	return out
}

func (s *Shell) allowVideo(args []string) Output {
	var out Output
	video, err := s.session.Unflag(args[0])
	if err != nil {
		out.fail("Cannot remove flag from video: " + reasonText(err))
		return out
	}
	out.success("Successfully removed flag from video: " + video.Title)
	return out
}

func (s *Shell) help(_ []string) Output {
	var out Output
	out.block(HelpTable())
	return out
}

func (s *Shell) exit(_ []string) Output {
	return Output{Quit: true}
}
