package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/softvoice/menuvox/internal/host"
	"github.com/softvoice/menuvox/internal/nav"
	"github.com/softvoice/menuvox/internal/session"
	"github.com/softvoice/menuvox/internal/speech"
	"github.com/softvoice/menuvox/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	RootMenu   string
	Width      int
	Height     int
	Verbose    bool
	PolicyFile string
}

// Run bootstraps and executes the Bubble Tea program. Every utterance is
// teed into the trace log through a queued sink so a slow consumer never
// stalls navigation.
func Run(cfg Config, policyFor func(string) (nav.MatchPolicy, bool), voice *session.SpeechOptions) error {
	store := host.DemoStore()
	watcher := host.NewWatcher(store, 1500*time.Millisecond)
	defer watcher.Stop()

	tail := speech.NewQueue(speech.Trace{})
	defer func() {
		tail.Flush()
		tail.Close()
	}()

	model := ui.NewModel(store, cfg.Width, cfg.Height, cfg.Verbose, watcher, cfg.RootMenu, policyFor, voice, tail)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
