package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/intent"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/store"
)

type Pane string

const (
	PaneInput Pane = "input"
	PaneList  Pane = "list"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	ShowAll       string
	ShowActive    string
	ShowCompleted string
	Toggle        string
	Input         string
	Help          string
	Quit          string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Shared by every copy of a Model.
type revision struct {
	n        uint64
	updating int
	send     func(tea.Msg)
}

type Model struct {
	Store        *store.Store
	Intents      *intent.Factory
	Journal      storage.Journal
	Focus        Pane
	Cursor       int
	Palette      CommandPaletteState
	HelpVisible  bool
	History      []string
	HistoryLimit int
	Status       StatusBar
	Keys         GlobalKeyMap
	Quitting     bool
	LastError    error
	Width        int

	rev          *revision
	unsubscribe  func()
	addInput     textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type StoreChangedMsg struct{}

type DispatchMsg struct {
	Intent intent.Intent
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel() Model {
	return NewModelWithStore(store.NewDefault(), intent.NewFactory())
}

func NewModelWithStore(st *store.Store, intents *intent.Factory) Model {
	if st == nil {
		st = store.NewDefault()
	}
	if intents == nil {
		intents = intent.NewFactory()
	}
	m := Model{
		Store:        st,
		Intents:      intents,
		Focus:        PaneInput,
		HistoryLimit: DefaultRuntimeConfig().Journal.HistoryLimit,
		Width:        DefaultRuntimeConfig().UI.Width,
		Keys: GlobalKeyMap{
			ShowAll:       "a",
			ShowActive:    "v",
			ShowCompleted: "c",
			Toggle:        " ",
			Input:         "i",
			Help:          "?",
			Quit:          "q",
		},
		rev: &revision{},
	}
	rev := m.rev
	m.unsubscribe = st.Subscribe(func() {
		rev.n++
		if rev.updating == 0 && rev.send != nil {
			rev.send(StoreChangedMsg{})
		}
	})
	m.initBubbleComponents()
	return m
}

func NewModelWithConfig(st *store.Store, intents *intent.Factory, journal storage.Journal, cfg RuntimeConfig) Model {
	m := NewModelWithStore(st, intents)
	m.Journal = journal
	if cfg.Journal.HistoryLimit > 0 {
		m.HistoryLimit = cfg.Journal.HistoryLimit
	}
	if cfg.UI.Width > 0 {
		m.Width = cfg.UI.Width
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.addInput = textinput.New()
	m.addInput.Placeholder = "Что нужно сделать?"
	m.addInput.Prompt = "+ "
	m.addInput.CharLimit = 256
	m.addInput.Width = 42
	m.addInput.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

// Dispatches made by Update itself are not echoed back.
func (m Model) SetSender(send func(tea.Msg)) {
	m.rev.send = send
}

func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m Model) Revision() uint64 {
	if m.rev == nil {
		return 0
	}
	return m.rev.n
}

func (m Model) AddInputValue() string {
	return m.addInput.Value()
}

func (m Model) visibleTasks() []model.Task {
	state := m.Store.GetState()
	return visible(state)
}
