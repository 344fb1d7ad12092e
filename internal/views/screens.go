package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TaskRow struct {
	ID        int
	Text      string
	Completed bool
	Selected  bool
}

type FilterLink struct {
	Key    string
	Label  string
	Active bool
}

type TaskPanelData struct {
	AddFormView string
	Rows        []TaskRow
	Filters     []FilterLink
}

type HelpPanelData struct {
	Pane     string
	Bindings []string
	HelpView string
	About    string
}

var (
	completedStyle  = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	activeLinkStyle = lipgloss.NewStyle().Bold(true)
	linkStyle       = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("12"))
)

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(data.AddFormView + "\n\n")
	if len(data.Rows) == 0 {
		b.WriteString("  (no tasks)\n")
	}
	for _, row := range data.Rows {
		b.WriteString(renderTaskRow(row) + "\n")
	}
	b.WriteString("\n" + renderFilterLinks(data.Filters))
	return strings.TrimSpace(b.String())
}

func renderTaskRow(row TaskRow) string {
	cursor := " "
	if row.Selected {
		cursor = ">"
	}
	mark := "[ ]"
	text := row.Text
	if row.Completed {
		mark = "[x]"
		text = completedStyle.Render(text)
	}
	line := fmt.Sprintf("%s %s #%d %s", cursor, mark, row.ID, text)
	if row.Selected {
		return selectedStyle.Render(line)
	}
	return line
}

func renderFilterLinks(links []FilterLink) string {
	var b strings.Builder
	b.WriteString("show:")
	for _, l := range links {
		if l.Active {
			b.WriteString("\n  " + activeLinkStyle.Render(l.Label))
			continue
		}
		b.WriteString(fmt.Sprintf("\n  [%s] %s", l.Key, linkStyle.Render(l.Label)))
	}
	return b.String()
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s\n", inputView)
}

func RenderHistoryPanel(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("history:\n")
	for _, line := range lines {
		b.WriteString("- " + line + "\n")
	}
	return b.String()
}

func RenderHelpPanel(data HelpPanelData) string {
	out := fmt.Sprintf("help:\n%s pane:\n%s\n%s",
		strings.ToLower(data.Pane),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
	if strings.TrimSpace(data.About) != "" {
		out += "\n\n" + data.About
	}
	return out
}
