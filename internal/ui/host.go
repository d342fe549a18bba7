package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softvoice/menuvox/internal/host"
)

func waitForHostEvent(w *host.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return hostDoneMsg{}
		}
		return hostEventMsg{event: evt}
	}
}

type hostEventMsg struct {
	event host.Event
}

type hostDoneMsg struct{}

// handleHostEventMsg rebuilds the foreground session after an external store
// mutation. Rebuilding is silent; only key events speak.
func (m *Model) handleHostEventMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(hostEventMsg); !ok {
		return nil
	}
	m.register.Rebuild()
	if m.watcher != nil {
		return waitForHostEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleHostDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}
