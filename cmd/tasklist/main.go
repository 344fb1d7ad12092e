package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/intent"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/store"
	"github.com/sandeepkv93/tasklist/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tasklist failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := update.LoadRuntimeConfig(update.DefaultRuntimeConfig())
	if err != nil {
		return err
	}

	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "tasklist")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var (
		journal storage.Journal
		opts    []store.Option
	)
	if cfg.Journal.Enabled {
		j, err := storage.OpenMemory(cfg.Journal.Name)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
		journal = j
		opts = append(opts, store.WithHook(storage.Recorder(j, nil)))
	}

	st := store.NewDefault(opts...)
	unsubscribe := st.Subscribe(func() {
		state := st.GetState()
		log.Printf("state: tasks=%d filter=%s", len(state.Tasks), state.Filter)
	})
	defer unsubscribe()

	m := update.NewModelWithConfig(st, intent.NewFactory(), journal, cfg)
	defer m.Close()

	p := tea.NewProgram(m)
	m.SetSender(p.Send)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
