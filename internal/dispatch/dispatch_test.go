package dispatch

import (
	"testing"

	"github.com/softvoice/menuvox/internal/menu"
	"github.com/softvoice/menuvox/internal/session"
	"github.com/softvoice/menuvox/internal/speech"
)

func openSession(t *testing.T, rec *[]string) *session.Session {
	t.Helper()
	reg := menu.NewRegistry(&menu.Node{
		ID: "root",
		Loader: func(menu.Context, menu.Item) ([]menu.Item, error) {
			return []menu.Item{
				{ID: "one", Label: "One"},
				{ID: "two", Label: "Two"},
			}, nil
		},
	})
	s, err := session.Open("root", session.Options{
		Registry: reg,
		Speaker: speech.Func(func(text string, _ speech.Priority) {
			*rec = append(*rec, text)
		}),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func TestKeysFallThroughWithNoSession(t *testing.T) {
	r := NewRegister()
	if r.HandleKey(session.Press(session.KeyDown)) {
		t.Fatal("consumed a key with no active session")
	}
	if r.Active() != nil {
		t.Fatal("expected no active session")
	}
}

func TestActivateRoutesKeys(t *testing.T) {
	var spoken []string
	r := NewRegister()
	s := openSession(t, &spoken)
	r.Activate(s)

	if !r.HandleKey(session.Press(session.KeyDown)) {
		t.Fatal("active session did not consume the key")
	}
	if got := spoken[len(spoken)-1]; got != "Two. 2 of 2" {
		t.Fatalf("unexpected announcement %q", got)
	}
}

func TestActivateClosesPrevious(t *testing.T) {
	var spoken []string
	r := NewRegister()
	first := openSession(t, &spoken)
	second := openSession(t, &spoken)

	r.Activate(first)
	r.Activate(second)
	if first.IsOpen() {
		t.Fatal("previous session left open on activation")
	}
	if r.Active() != second {
		t.Fatal("new session not active")
	}
}

func TestSelfClosingSessionIsUnregistered(t *testing.T) {
	var spoken []string
	r := NewRegister()
	s := openSession(t, &spoken)
	r.Activate(s)

	// Escape at the root closes the session from inside HandleKey.
	if !r.HandleKey(session.Press(session.KeyEscape)) {
		t.Fatal("escape not consumed")
	}
	if r.Active() != nil {
		t.Fatal("closed session still registered")
	}
	if r.HandleKey(session.Press(session.KeyDown)) {
		t.Fatal("key consumed after session closed")
	}
}

func TestDeactivateCloses(t *testing.T) {
	var spoken []string
	r := NewRegister()
	s := openSession(t, &spoken)
	r.Activate(s)
	r.Deactivate()
	if s.IsOpen() {
		t.Fatal("deactivate left the session open")
	}
	if got := spoken[len(spoken)-1]; got != "Main menu closed" {
		t.Fatalf("close announcement = %q", got)
	}
}
