package tui

import "github.com/mmcdole/reel/internal/shell"

// Message types for the TUI

// CommandResultMsg carries the output of one executed line
type CommandResultMsg struct {
	Input  string
	Output shell.Output
}
