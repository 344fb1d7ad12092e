package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/commands"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/views"
)

var errJournalDisabled = errors.New("update: intent journal is disabled")

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if err := m.candidate(a.Text).Validate(); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			in := m.Intents.AddTask(a.Text)
			m.dispatch(in)
			return commands.Result{Message: fmt.Sprintf("added task #%d: %s", in.ID, a.Text)}, nil
		},
		Toggle: func(t commands.ToggleArgs) (commands.Result, error) {
			m.dispatch(m.Intents.ToggleTask(t.ID))
			return commands.Result{Message: fmt.Sprintf("toggled task #%d", t.ID)}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			m.dispatch(m.Intents.SetFilter(s.Filter))
			return commands.Result{Message: "filter: " + s.Filter.Label()}, nil
		},
		History: func(h commands.HistoryArgs) (commands.Result, error) {
			lines, err := m.historyLines(h.Limit)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("history: %d entries", len(lines)), Lines: lines}, nil
		},
	})
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message}
		if cmd.Type == commands.TypeHistory {
			m.History = res.Lines
		}
	}

	m.closePalette()
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) historyLines(limit int) ([]string, error) {
	if m.Journal == nil {
		return nil, errJournalDisabled
	}
	if limit <= 0 {
		limit = m.HistoryLimit
	}
	entries, err := m.Journal.List(context.Background(), storage.EntryFilter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, formatEntry(e))
	}
	return lines, nil
}

func formatEntry(e storage.Entry) string {
	detail := ""
	switch {
	case e.Text != "":
		detail = fmt.Sprintf(" %q", e.Text)
	case e.Filter != "":
		detail = " " + e.Filter
	}
	target := ""
	if e.TaskID != nil {
		target = fmt.Sprintf(" #%d", *e.TaskID)
	}
	changed := ""
	if !e.Changed {
		changed = " (no change)"
	}
	return fmt.Sprintf("%d %s%s%s%s", e.Seq, e.Kind, target, detail, changed)
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) renderHistory() string {
	return views.RenderHistoryPanel(m.History)
}
