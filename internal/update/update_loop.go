package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/intent"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/selector"
	"github.com/sandeepkv93/tasklist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		if typed.Width > 0 {
			m.Width = typed.Width
		}
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Focus == PaneInput {
			return m.handleInputKey(typed), nil
		}
		return m.handleListKey(typed)
	case DispatchMsg:
		m.dispatch(typed.Intent)
		return m, nil
	case StoreChangedMsg:
		m.clampCursor()
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		return m.submitAdd()
	case "tab", "esc":
		m.Focus = PaneList
		m.addInput.Blur()
		return m
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	_ = cmd
	return m
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	case "tab", m.Keys.Input:
		m.Focus = PaneInput
		m.addInput.Focus()
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.visibleTasks())-1 {
			m.Cursor++
		}
	case m.Keys.Toggle, "enter", "x":
		m = m.toggleAtCursor()
	case m.Keys.ShowAll:
		m = m.setFilter(model.FilterShowAll)
	case m.Keys.ShowActive:
		m = m.setFilter(model.FilterShowActive)
	case m.Keys.ShowCompleted:
		m = m.setFilter(model.FilterShowCompleted)
	}
	return m, nil
}

func (m Model) submitAdd() Model {
	text := m.addInput.Value()
	if err := m.candidate(text).Validate(); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "nothing to add", IsError: true}
		if errors.Is(err, model.ErrInvalidID) {
			m.Status.Text = err.Error()
		}
		return m
	}
	in := m.Intents.AddTask(text)
	m.dispatch(in)
	m.addInput.SetValue("")
	m.Status = StatusBar{Text: fmt.Sprintf("added task #%d", in.ID)}
	return m
}

func (m Model) toggleAtCursor() Model {
	tasks := m.visibleTasks()
	if m.Cursor < 0 || m.Cursor >= len(tasks) {
		return m
	}
	task := tasks[m.Cursor]
	m.dispatch(m.Intents.ToggleTask(task.ID))
	m.Status = StatusBar{Text: fmt.Sprintf("toggled task #%d", task.ID)}
	return m
}

func (m Model) setFilter(f model.Filter) Model {
	m.dispatch(m.Intents.SetFilter(f))
	m.Status = StatusBar{Text: "filter: " + f.Label()}
	return m
}

func (m Model) candidate(text string) model.Task {
	return model.Task{ID: m.Intents.Peek(), Text: text}
}

func (m *Model) dispatch(in intent.Intent) {
	m.rev.updating++
	m.Store.Dispatch(in)
	m.rev.updating--
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.visibleTasks())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func visible(state model.State) []model.Task {
	return selector.VisibleTasks(state.Tasks, state.Filter)
}

func (m Model) View() string {
	state := m.Store.GetState()
	tasks := visible(state)
	active, completed := selector.Counts(state.Tasks)

	rows := make([]views.TaskRow, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, views.TaskRow{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Selected:  m.Focus == PaneList && i == m.Cursor,
		})
	}
	links := make([]views.FilterLink, 0, len(model.Filters))
	for _, f := range model.Filters {
		links = append(links, views.FilterLink{
			Key:    m.filterKey(f),
			Label:  f.Label(),
			Active: f == state.Filter,
		})
	}

	left := views.RenderTaskPanel(views.TaskPanelData{
		AddFormView: m.addInput.View(),
		Rows:        rows,
		Filters:     links,
	})
	right := m.renderCommandPalette() + m.renderHistory() + m.renderHelpIfVisible()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Width:      m.Width,
		Header:     fmt.Sprintf("tasklist | filter: %s | active: %d | done: %d | rev: %d", state.Filter, active, completed, m.Revision()),
		LeftPane:   left,
		RightPane:  right,
		StatusLine: status,
		Footer:     fmt.Sprintf("keys: tab focus | %s/%s/%s filter | space toggle | / cmd | %s help | %s quit", m.Keys.ShowAll, m.Keys.ShowActive, m.Keys.ShowCompleted, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) filterKey(f model.Filter) string {
	switch f {
	case model.FilterShowAll:
		return m.Keys.ShowAll
	case model.FilterShowActive:
		return m.Keys.ShowActive
	case model.FilterShowCompleted:
		return m.Keys.ShowCompleted
	default:
		return ""
	}
}
