package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/softvoice/menuvox/internal/nav"
	"github.com/softvoice/menuvox/internal/session"
)

// Policy holds the user's tuning file: how typeahead matches labels, per
// menu where needed, and how utterances are shaped.
type Policy struct {
	Search SearchPolicy `toml:"search"`
	Speech SpeechPolicy `toml:"speech"`
}

type SearchPolicy struct {
	// Default names the match policy applied where no per-menu entry
	// exists: "prefix", "substring" or "fuzzy".
	Default string `toml:"default"`
	// Menus maps a menu id to its match policy override.
	Menus map[string]string `toml:"menus"`
}

type SpeechPolicy struct {
	// EchoKeys speaks each typed character while editing a value.
	EchoKeys bool `toml:"echo-keys"`
	// Suggestions appends the closest label to failed-search announcements.
	Suggestions bool `toml:"suggestions"`
}

// LoadPolicy reads the policy file at path, or searches the standard config
// locations when path is empty. A missing file yields DefaultPolicy.
func LoadPolicy(path string) (*Policy, error) {
	if path != "" {
		return loadPolicyFile(path)
	}
	for _, p := range policySearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return loadPolicyFile(p)
		}
	}
	return DefaultPolicy(), nil
}

func loadPolicyFile(path string) (*Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPolicy(), nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadPolicyFromReader(f)
}

// LoadPolicyFromReader decodes a policy from r and validates every named
// match policy.
func LoadPolicyFromReader(r io.Reader) (*Policy, error) {
	policy := DefaultPolicy()
	if _, err := toml.NewDecoder(r).Decode(policy); err != nil {
		return nil, err
	}
	if _, err := nav.ParseMatchPolicy(policy.Search.Default); err != nil {
		return nil, fmt.Errorf("search.default: %w", err)
	}
	for id, name := range policy.Search.Menus {
		if _, err := nav.ParseMatchPolicy(name); err != nil {
			return nil, fmt.Errorf("search.menus.%s: %w", id, err)
		}
	}
	return policy, nil
}

// DefaultPolicy returns the policy applied with no file present.
func DefaultPolicy() *Policy {
	return &Policy{
		Search: SearchPolicy{Default: "prefix"},
		Speech: SpeechPolicy{EchoKeys: true, Suggestions: true},
	}
}

// PolicyFor resolves the typeahead policy for a menu id, reporting whether
// the policy file named one. Validation happened at load time, so parse
// failures here mean the zero policy.
func (p *Policy) PolicyFor(menuID string) (nav.MatchPolicy, bool) {
	if p == nil {
		return 0, false
	}
	if name, ok := p.Search.Menus[menuID]; ok {
		parsed, err := nav.ParseMatchPolicy(name)
		return parsed, err == nil
	}
	if p.Search.Default != "" && p.Search.Default != "prefix" {
		parsed, err := nav.ParseMatchPolicy(p.Search.Default)
		return parsed, err == nil
	}
	return 0, false
}

// SpeechOptions converts the speech section for session use. A nil policy
// yields the defaults.
func (p *Policy) SpeechOptions() *session.SpeechOptions {
	opts := session.DefaultSpeechOptions()
	if p != nil {
		opts.EchoKeys = p.Speech.EchoKeys
		opts.Suggestions = p.Speech.Suggestions
	}
	return &opts
}

// policySearchPaths returns the ordered list of policy file paths to try.
func policySearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "menuvox", "policy.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "menuvox", "policy.toml"))
	}

	return paths
}

func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
