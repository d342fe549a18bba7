package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/softvoice/menuvox/internal/host"
	"github.com/softvoice/menuvox/internal/session"
	"github.com/softvoice/menuvox/internal/testutil"
)

func newTestHarness(t *testing.T) (*Harness, *host.Store) {
	t.Helper()
	store := host.DemoStore()
	model := NewModel(store, 60, 20, false, nil, "root", nil, nil, nil)
	if model.Session() == nil {
		t.Fatalf("root session failed to open: %s", model.errMsg)
	}
	return NewHarness(model), store
}

func TestOpeningAnnouncesRootMenu(t *testing.T) {
	h, _ := newTestHarness(t)
	transcript := h.Model().Transcript()
	if len(transcript) != 1 || transcript[0] != "Main menu. plugins. 1 of 3" {
		t.Fatalf("unexpected opening transcript %v", transcript)
	}
}

func TestDemoWalkthroughTranscript(t *testing.T) {
	h, _ := newTestHarness(t)

	h.Press(tea.KeyEnter) // drill into plugins
	h.SendKeys("q")       // typeahead to Quarry
	h.Press(tea.KeyEnter) // toggle it
	h.Press(tea.KeyF1)    // info card
	h.Press(tea.KeyEsc)   // dismiss card
	h.Press(tea.KeyEsc)   // drill out
	h.Press(tea.KeyDown)
	h.Press(tea.KeyDown)
	h.Press(tea.KeyEnter) // enter the priority grid
	h.Press(tea.KeyRight)
	h.Press(tea.KeyEnter) // cycle a priority
	h.Press(tea.KeyEsc)   // leave the grid
	h.Press(tea.KeyEsc)   // close the menu

	transcript := strings.Join(h.Model().Transcript(), "\n") + "\n"
	testutil.Golden(t, "transcript_demo.golden", transcript)
}

func TestToggleMutatesStore(t *testing.T) {
	h, store := newTestHarness(t)

	h.Press(tea.KeyEnter)
	h.SendKeys("q")
	h.Press(tea.KeyEnter)

	for _, plugin := range store.Plugins() {
		if plugin.ID == "quarry" && plugin.Enabled {
			t.Fatal("toggle did not reach the store")
		}
	}
}

func TestEditCommitThroughKeys(t *testing.T) {
	h, store := newTestHarness(t)

	h.Press(tea.KeyDown)  // settings
	h.Press(tea.KeyEnter) // categories
	h.Press(tea.KeyDown)  // speech
	h.Press(tea.KeyEnter) // speech settings
	h.SendKeys("s")       // no-op prefix narrowing to the two speech entries
	h.Press(tea.KeyEsc)   // clear search
	h.Press(tea.KeyEnter) // edit Speech rate

	s := h.Model().Session()
	if s.Mode() != session.ModeEdit {
		t.Fatalf("mode = %v, want ModeEdit", s.Mode())
	}
	h.Press(tea.KeyBackspace) // 180 -> 18
	h.SendKeys("50")          // 18 -> 1850
	h.Press(tea.KeyEnter)

	setting, ok := store.Setting("speech.rate")
	if !ok || setting.Value != "1850" {
		t.Fatalf("speech.rate = %q, want \"1850\"", setting.Value)
	}
}

func TestHostEventTriggersRebuild(t *testing.T) {
	h, store := newTestHarness(t)

	h.Press(tea.KeyEnter) // plugins, cursor on Automatic Doors
	if _, err := store.TogglePlugin("auto-doors"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	h.Send(hostEventMsg{event: host.Event{Version: store.Version()}})

	level := h.Model().Session().Current()
	if got := level.Items[0].Label; got != "Automatic Doors (disabled)" {
		t.Fatalf("rebuild missed the mutation: %q", got)
	}
}

func TestCtrlCQuitsAndClosesSession(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Press(tea.KeyCtrlC)
	if h.Model().Session() != nil {
		t.Fatal("session left open on interrupt")
	}
}

func TestClosingRootSessionEndsProgram(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Press(tea.KeyEsc)
	if h.Model().Session() != nil {
		t.Fatal("session still active after closing the root menu")
	}
	got := h.Model().Transcript()
	if got[len(got)-1] != "Main menu closed" {
		t.Fatalf("missing close announcement, transcript %v", got)
	}
}
