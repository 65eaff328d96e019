package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/shell"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.Ready {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		styles.InputBorder.Width(m.width).Render(m.input.View()),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("reel")
	status := ""
	switch {
	case m.busy:
		status = styles.DimStyle.Render(" running...")
	case m.prompting:
		status = styles.WarningStyle.Render(" pick a result number, anything else skips")
	}
	return title + status
}

func (m Model) renderFooter() string {
	bindings := []struct{ key, desc string }{
		{Keys.Submit.Help().Key, Keys.Submit.Help().Desc},
		{Keys.HistoryPrev.Help().Key + Keys.HistoryNext.Help().Key, "history"},
		{Keys.PageUp.Help().Key + "/" + Keys.PageDown.Help().Key, "scroll"},
		{Keys.Clear.Help().Key, Keys.Clear.Help().Desc},
		{Keys.Quit.Help().Key, Keys.Quit.Help().Desc},
	}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = styles.HelpKeyStyle.Render(b.key) + " " + styles.HelpDescStyle.Render(b.desc)
	}
	return strings.Join(parts, styles.DimStyle.Render(" • "))
}

func (m Model) renderTranscript() string {
	lines := make([]string, len(m.transcript))
	for i, l := range m.transcript {
		if l.echo {
			lines[i] = styles.EchoStyle.Render(l.text)
			continue
		}
		lines[i] = kindStyle(l.kind).Render(l.text)
	}
	return strings.Join(lines, "\n")
}

func kindStyle(kind shell.Kind) lipgloss.Style {
	switch kind {
	case shell.KindSuccess:
		return styles.SuccessStyle
	case shell.KindWarning:
		return styles.WarningStyle
	case shell.KindError:
		return styles.ErrorStyle
	default:
		return styles.InfoStyle
	}
}
