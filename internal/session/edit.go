package session

import (
	"fmt"
	"unicode"

	"github.com/softvoice/menuvox/internal/logging/events"
	"github.com/softvoice/menuvox/internal/menu"
	"github.com/softvoice/menuvox/internal/speech"
)

// Edit is the scratch-buffer sub-mode. The field's current value is
// snapshotted on entry; the host sees nothing until Commit, and a cancel
// discards the scratch buffer without touching the host.
type Edit struct {
	field   menu.Field
	scratch []rune
}

// Label names the field being edited.
func (e *Edit) Label() string {
	return e.field.Label()
}

// Value returns the scratch buffer as typed so far.
func (e *Edit) Value() string {
	return string(e.scratch)
}

func (s *Session) enterEdit(node *menu.Node, item menu.Item) {
	field, ok := node.Field(s.opts.Context, item)
	if !ok {
		s.speaker.Speak("Nothing here to edit", speech.Normal)
		return
	}
	s.edit = &Edit{field: field, scratch: []rune(field.Value())}
	s.mode = ModeEdit
	events.Session.EditBegin(s.id, field.Label())
	s.speaker.Speak(fmt.Sprintf("Editing %s. Current value %s", field.Label(), field.Value()), speech.Normal)
}

func (s *Session) handleEditKey(ev KeyEvent) bool {
	edit := s.edit
	if edit == nil {
		s.mode = ModeBrowse
		return false
	}
	switch ev.Key {
	case KeyRune:
		if ev.Ctrl || ev.Alt || unicode.IsControl(ev.Rune) {
			return true
		}
		edit.scratch = append(edit.scratch, ev.Rune)
		if s.voice.EchoKeys {
			s.speaker.Speak(string(ev.Rune), speech.Normal)
		}
		return true
	case KeyBackspace:
		if len(edit.scratch) == 0 {
			s.speaker.Speak("Empty", speech.Normal)
			return true
		}
		deleted := edit.scratch[len(edit.scratch)-1]
		edit.scratch = edit.scratch[:len(edit.scratch)-1]
		s.speaker.Speak(fmt.Sprintf("Deleted %c", deleted), speech.Normal)
		return true
	case KeyEnter:
		value := edit.Value()
		if err := edit.field.Commit(value); err != nil {
			s.speaker.Speak(fmt.Sprintf("Failed: %v", err), speech.High)
			return true
		}
		label := edit.field.Label()
		events.Session.EditCommit(s.id, label)
		s.edit = nil
		s.mode = ModeBrowse
		s.rebuildLevel(s.Current())
		s.speaker.Speak(fmt.Sprintf("%s set to %s", label, value), speech.Normal)
		return true
	case KeyEscape:
		label := edit.field.Label()
		events.Session.EditCancel(s.id, label)
		s.edit = nil
		s.mode = ModeBrowse
		s.speaker.Speak("Edit cancelled", speech.Normal)
		return true
	default:
		// Arrow keys and the like have no meaning while editing; swallow
		// them so they cannot leak into the host.
		return true
	}
}
