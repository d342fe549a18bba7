// Package host contains the demonstration host application the menus are
// layered over. The navigation core never reaches into it directly: menu
// loaders read snapshots out of the Store and edit commits write back
// through field adapters, mirroring how a real host would be wrapped.
package host

import (
	"fmt"
	"sort"
	"sync"
)

// Plugin is a toggleable extension entry.
type Plugin struct {
	ID      string
	Name    string
	Author  string
	Enabled bool
}

// Setting is an editable configuration value grouped under a category.
type Setting struct {
	Key         string
	Category    string
	Label       string
	Value       string
	Description string
}

// Assignment binds a crew member to a duty with a priority in [1, 4].
type Assignment struct {
	Member   string
	Priority int
}

// Duty is one column of the priority grid. Columns have independent
// lengths: not every duty has the same crew assigned.
type Duty struct {
	ID          string
	Name        string
	Assignments []Assignment
}

// MaxPriority is the highest assignment priority; activation cycles
// 1 → 2 → … → MaxPriority → 1.
const MaxPriority = 4

// Store is the mutable host model. Every mutation bumps a version counter
// that the watcher polls to drive menu rebuilds.
type Store struct {
	mu       sync.Mutex
	version  uint64
	plugins  []Plugin
	settings []Setting
	duties   []Duty
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Version returns the current mutation counter.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *Store) bump() {
	s.version++
}

// Plugins returns a snapshot of the plugin list.
func (s *Store) Plugins() []Plugin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Plugin(nil), s.plugins...)
}

// SetPlugins replaces the plugin list wholesale.
func (s *Store) SetPlugins(plugins []Plugin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plugins = append([]Plugin(nil), plugins...)
	s.bump()
}

// TogglePlugin flips a plugin's enabled flag and returns the new state.
func (s *Store) TogglePlugin(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plugins {
		if s.plugins[i].ID == id {
			s.plugins[i].Enabled = !s.plugins[i].Enabled
			s.bump()
			return s.plugins[i].Enabled, nil
		}
	}
	return false, fmt.Errorf("unknown plugin %q", id)
}

// RemovePlugin drops a plugin from the list.
func (s *Store) RemovePlugin(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plugins {
		if s.plugins[i].ID == id {
			s.plugins = append(s.plugins[:i], s.plugins[i+1:]...)
			s.bump()
			return nil
		}
	}
	return fmt.Errorf("unknown plugin %q", id)
}

// SettingCategories returns the distinct setting categories in sorted order.
func (s *Store) SettingCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var categories []string
	for _, setting := range s.settings {
		if _, ok := seen[setting.Category]; ok {
			continue
		}
		seen[setting.Category] = struct{}{}
		categories = append(categories, setting.Category)
	}
	sort.Strings(categories)
	return categories
}

// Settings returns the settings under a category in declaration order.
func (s *Store) Settings(category string) []Setting {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Setting
	for _, setting := range s.settings {
		if setting.Category == category {
			out = append(out, setting)
		}
	}
	return out
}

// Setting looks up a single setting by key.
func (s *Store) Setting(key string) (Setting, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, setting := range s.settings {
		if setting.Key == key {
			return setting, true
		}
	}
	return Setting{}, false
}

// AddSetting registers a setting definition.
func (s *Store) AddSetting(setting Setting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = append(s.settings, setting)
	s.bump()
}

// SetSetting writes a new value for an existing key.
func (s *Store) SetSetting(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.settings {
		if s.settings[i].Key == key {
			s.settings[i].Value = value
			s.bump()
			return nil
		}
	}
	return fmt.Errorf("unknown setting %q", key)
}

// Duties returns a snapshot of the priority grid columns.
func (s *Store) Duties() []Duty {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Duty, len(s.duties))
	for i, duty := range s.duties {
		out[i] = Duty{
			ID:          duty.ID,
			Name:        duty.Name,
			Assignments: append([]Assignment(nil), duty.Assignments...),
		}
	}
	return out
}

// SetDuties replaces the grid wholesale.
func (s *Store) SetDuties(duties []Duty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.duties = make([]Duty, len(duties))
	for i, duty := range duties {
		s.duties[i] = Duty{
			ID:          duty.ID,
			Name:        duty.Name,
			Assignments: append([]Assignment(nil), duty.Assignments...),
		}
	}
	s.bump()
}

// CyclePriority advances the priority of one assignment and returns the new
// value.
func (s *Store) CyclePriority(dutyID, member string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.duties {
		if s.duties[i].ID != dutyID {
			continue
		}
		for j := range s.duties[i].Assignments {
			if s.duties[i].Assignments[j].Member != member {
				continue
			}
			next := s.duties[i].Assignments[j].Priority + 1
			if next > MaxPriority {
				next = 1
			}
			s.duties[i].Assignments[j].Priority = next
			s.bump()
			return next, nil
		}
		return 0, fmt.Errorf("no assignment for %q under duty %q", member, dutyID)
	}
	return 0, fmt.Errorf("unknown duty %q", dutyID)
}
