package main

import (
	"math/rand/v2"
	"os"

	"github.com/mmcdole/reel/internal/service"
	"github.com/mmcdole/reel/internal/shell"
	"github.com/mmcdole/reel/internal/store"
	"github.com/mmcdole/reel/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func runShell(cmd *cobra.Command, ctx *commandContext, plain bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger := ctx.logger
	logger.Info("starting reel", "version", Version)

	lib, err := ctx.loadCatalog()
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if seed := cfg.Playback.Seed; seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	session := service.NewSession(lib, rng, logger)

	history, err := store.NewHistoryStore(cfg.Shell.HistoryFile, cfg.Shell.HistoryLimit)
	if err != nil {
		logger.Warn("history unavailable, keeping it in memory", "error", err)
		history, _ = store.NewHistoryStore("", cfg.Shell.HistoryLimit)
	}
	defer history.Close()

	sh := shell.New(session, shell.Options{
		Suggestions: cfg.Shell.Suggestions,
		History:     history,
	}, logger)

	if !plain && isTerminal(cmd) {
		logger.Info("starting TUI")
		return tui.Run(tui.NewModel(sh, history, cfg.Shell.Prompt, logger))
	}

	logger.Info("starting line mode")
	return sh.RunLines(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Shell.Prompt)
}

// isTerminal reports whether the command talks to an interactive terminal
func isTerminal(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}
