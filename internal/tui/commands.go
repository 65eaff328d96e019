package tui

import tea "github.com/charmbracelet/bubbletea"

// ExecuteCmd runs a line against the shell off the update loop
func ExecuteCmd(sh executor, line string) tea.Cmd {
	return func() tea.Msg {
		return CommandResultMsg{Input: line, Output: sh.Execute(line)}
	}
}
