// Package shell turns command lines into session operations and renders the
// outcomes as human-readable lines.
package shell

import (
	"log/slog"
	"strings"

	"github.com/mmcdole/reel/internal/search"
	"github.com/mmcdole/reel/internal/service"
)

// historyRecorder stores entered command lines (consumer-defined interface)
type historyRecorder interface {
	Append(line string) error
}

// Options tunes shell behavior
type Options struct {
	// Suggestions enables "did you mean" hints for empty searches
	Suggestions bool

	// History receives every non-empty command line; nil disables recording
	History historyRecorder
}

const maxSuggestions = 3

// pendingSearch remembers a search awaiting the user's numeric answer
type pendingSearch struct {
	byTag bool
	query string
}

// Shell executes command lines against one session.
// It is not safe for concurrent use; the session underneath is.
type Shell struct {
	session *service.Session
	opts    Options
	pending *pendingSearch
	logger  *slog.Logger
}

// New creates a shell for session.
func New(session *service.Session, opts Options, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{session: session, opts: opts, logger: logger}
}

// Prompting reports whether the shell is waiting for a search selection.
func (s *Shell) Prompting() bool { return s.pending != nil }

// Execute runs one line of input.
func (s *Shell) Execute(line string) Output {
	if s.pending != nil {
		pending := s.pending
		s.pending = nil
		return s.answerSearch(pending, line)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return Output{}
	}
	s.record(line)

	fields := strings.Fields(line)
	name, args := strings.ToUpper(fields[0]), fields[1:]

	cmd, ok := lookup(name)
	if !ok {
		s.logger.Debug("unknown command", "command", fields[0])
		return unknownCommand(fields[0])
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		var out Output
		out.fail("Usage: " + cmd.usage())
		return out
	}

	s.logger.Debug("executing command", "command", cmd.name, "args", len(args))
	return cmd.run(s, args)
}

func (s *Shell) record(line string) {
	if s.opts.History == nil {
		return
	}
	if err := s.opts.History.Append(line); err != nil {
		s.logger.Warn("failed to record history", "error", err)
	}
}

// answerSearch replays the pending search with the user's selection
func (s *Shell) answerSearch(p *pendingSearch, answer string) Output {
	sel := search.ParseSelection(answer)
	if _, ok := sel.Rank(); !ok {
		return Output{}
	}

	res, err := s.search(p, sel)

	var out Output
	if err != nil {
		renderPlayError(&out, err)
		return out
	}
	if res.Played != nil {
		renderPlay(&out, *res.Played)
	}
	return out
}

func (s *Shell) search(p *pendingSearch, sel search.Selection) (search.Result, error) {
	if p.byTag {
		return s.session.SearchByTag(p.query, sel)
	}
	return s.session.SearchByTitle(p.query, sel)
}
