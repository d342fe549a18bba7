package host

import (
	"testing"
	"time"
)

func TestTogglePluginBumpsVersion(t *testing.T) {
	s := DemoStore()
	before := s.Version()
	enabled, err := s.TogglePlugin("bulk-craft")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !enabled {
		t.Fatalf("expected bulk-craft to toggle on")
	}
	if s.Version() == before {
		t.Fatalf("expected version bump after toggle")
	}
	if _, err := s.TogglePlugin("missing"); err == nil {
		t.Fatalf("expected error for unknown plugin")
	}
}

func TestRemovePlugin(t *testing.T) {
	s := DemoStore()
	before := s.Version()
	if err := s.RemovePlugin("quarry"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Version() == before {
		t.Fatalf("expected version bump after removal")
	}
	for _, p := range s.Plugins() {
		if p.ID == "quarry" {
			t.Fatalf("expected quarry to be gone")
		}
	}
	if err := s.RemovePlugin("quarry"); err == nil {
		t.Fatalf("expected error for unknown plugin")
	}
}

func TestSetSetting(t *testing.T) {
	s := DemoStore()
	if err := s.SetSetting("speech.rate", "220"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	setting, ok := s.Setting("speech.rate")
	if !ok || setting.Value != "220" {
		t.Fatalf("expected updated value, got %+v (ok=%v)", setting, ok)
	}
	if err := s.SetSetting("missing", "1"); err == nil {
		t.Fatalf("expected error for unknown setting")
	}
}

func TestSettingCategoriesSortedAndDistinct(t *testing.T) {
	s := DemoStore()
	categories := s.SettingCategories()
	if len(categories) != 2 || categories[0] != "navigation" || categories[1] != "speech" {
		t.Fatalf("unexpected categories %v", categories)
	}
}

func TestCyclePriorityWraps(t *testing.T) {
	s := DemoStore()
	// Devon starts at priority 4 under cooking; cycling wraps to 1.
	got, err := s.CyclePriority("cooking", "Devon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected wrap to 1, got %d", got)
	}
	if _, err := s.CyclePriority("cooking", "Nobody"); err == nil {
		t.Fatalf("expected error for unknown member")
	}
	if _, err := s.CyclePriority("mining", "Ash"); err == nil {
		t.Fatalf("expected error for unknown duty")
	}
}

func TestWatcherEmitsOnMutation(t *testing.T) {
	s := DemoStore()
	w := NewWatcher(s, 5*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if _, err := s.TogglePlugin("quarry"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed unexpectedly")
		}
		if evt.Version != s.Version() {
			t.Fatalf("expected version %d, got %d", s.Version(), evt.Version)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for watcher event")
	}
}
