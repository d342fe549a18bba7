package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/softvoice/menuvox/internal/session"
)

// keyEventFor translates a terminal key into the session's key vocabulary.
// Keys with no session meaning report false and stay with the host.
func keyEventFor(msg tea.KeyMsg) (session.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return session.Press(session.KeyUp), true
	case tea.KeyDown:
		return session.Press(session.KeyDown), true
	case tea.KeyLeft:
		return session.Press(session.KeyLeft), true
	case tea.KeyRight:
		return session.Press(session.KeyRight), true
	case tea.KeyEnter:
		return session.Press(session.KeyEnter), true
	case tea.KeyEsc:
		return session.Press(session.KeyEscape), true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return session.Press(session.KeyBackspace), true
	case tea.KeyHome:
		return session.Press(session.KeyHome), true
	case tea.KeyEnd:
		return session.Press(session.KeyEnd), true
	case tea.KeyCtrlN:
		return session.Press(session.KeyNextMatch), true
	case tea.KeyCtrlP:
		return session.Press(session.KeyPrevMatch), true
	case tea.KeyF1:
		return session.Press(session.KeyInfo), true
	case tea.KeySpace:
		return session.Rune(' '), true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return session.KeyEvent{}, false
		}
		r := msg.Runes[0]
		if unicode.IsControl(r) {
			return session.KeyEvent{}, false
		}
		return session.Rune(r), true
	}
	return session.KeyEvent{}, false
}
