package nav

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchPolicy selects how typeahead compares the accumulated buffer against
// item labels. Menus differ deliberately: flat pickers use prefix matching,
// long catalogues tend to want substring or fuzzy matching.
type MatchPolicy int

const (
	MatchPrefix MatchPolicy = iota
	MatchSubstring
	MatchFuzzy
)

// String returns the policy name used in configuration files.
func (p MatchPolicy) String() string {
	switch p {
	case MatchSubstring:
		return "substring"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "prefix"
	}
}

// ParseMatchPolicy maps a configuration string onto a MatchPolicy.
func ParseMatchPolicy(value string) (MatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "prefix":
		return MatchPrefix, nil
	case "substring":
		return MatchSubstring, nil
	case "fuzzy":
		return MatchFuzzy, nil
	default:
		return MatchPrefix, fmt.Errorf("unknown match policy %q", value)
	}
}

// Typeahead accumulates typed characters into a committed search buffer and
// tracks the indices matching it. A character that would empty the match set
// is never committed: the buffer rolls back and the attempted string is kept
// only for the failure announcement.
type Typeahead struct {
	policy     MatchPolicy
	buffer     string
	matches    []int
	cursor     int
	lastFailed string
}

// NewTypeahead constructs an inactive typeahead with the given policy.
func NewTypeahead(policy MatchPolicy) *Typeahead {
	return &Typeahead{policy: policy}
}

// Policy returns the configured match policy.
func (t *Typeahead) Policy() MatchPolicy {
	return t.policy
}

// Active reports whether a committed search buffer exists.
func (t *Typeahead) Active() bool {
	return t.buffer != ""
}

// Buffer returns the committed search buffer.
func (t *Typeahead) Buffer() string {
	return t.buffer
}

// LastFailedSearch returns the most recent attempted buffer that produced
// zero matches, or "" if the last keystroke succeeded.
func (t *Typeahead) LastFailedSearch() string {
	return t.lastFailed
}

// MatchCount returns the number of labels matching the committed buffer.
func (t *Typeahead) MatchCount() int {
	return len(t.matches)
}

// MatchPosition returns the 1-based position of the current match within the
// match set, or 0 when no search is active.
func (t *Typeahead) MatchPosition() int {
	if !t.Active() || len(t.matches) == 0 {
		return 0
	}
	return t.cursor + 1
}

// Matches returns a copy of the matching indices in list order.
func (t *Typeahead) Matches() []int {
	return append([]int(nil), t.matches...)
}

// Type attempts to extend the buffer with r against the given labels. On
// success it returns the index of the first match at or after selected
// (wrapping) and true. On failure the committed state is untouched, the
// attempted string is recorded for announcement, and selected is returned
// with false.
func (t *Typeahead) Type(labels []string, selected int, r rune) (int, bool) {
	candidate := t.buffer + string(r)
	set := matchIndices(labels, candidate, t.policy)
	if len(set) == 0 {
		t.lastFailed = candidate
		return selected, false
	}
	t.buffer = candidate
	t.matches = set
	t.lastFailed = ""
	t.cursor = matchAtOrAfter(set, selected)
	return t.matches[t.cursor], true
}

// Backspace removes the final rune from the committed buffer and recomputes
// matches from scratch. Emptying the buffer clears search state entirely.
// It reports false when no search was active.
func (t *Typeahead) Backspace(labels []string, selected int) (int, bool) {
	if t.buffer == "" {
		return selected, false
	}
	runes := []rune(t.buffer)
	t.buffer = string(runes[:len(runes)-1])
	t.lastFailed = ""
	if t.buffer == "" {
		t.matches = nil
		t.cursor = 0
		return selected, true
	}
	set := matchIndices(labels, t.buffer, t.policy)
	t.matches = set
	t.cursor = 0
	if len(set) == 0 {
		// The list changed underneath the committed buffer; keep the
		// selection where it is rather than guessing.
		return selected, true
	}
	t.cursor = matchAtOrAfter(set, selected)
	return set[t.cursor], true
}

// NextMatch steps forward circularly through the match set only.
func (t *Typeahead) NextMatch() (int, bool) {
	if !t.Active() || len(t.matches) == 0 {
		return 0, false
	}
	t.cursor = Next(t.cursor, len(t.matches))
	return t.matches[t.cursor], true
}

// PrevMatch steps backward circularly through the match set only.
func (t *Typeahead) PrevMatch() (int, bool) {
	if !t.Active() || len(t.matches) == 0 {
		return 0, false
	}
	t.cursor = Prev(t.cursor, len(t.matches))
	return t.matches[t.cursor], true
}

// FirstMatch returns the first matching index in list order.
func (t *Typeahead) FirstMatch() (int, bool) {
	if !t.Active() || len(t.matches) == 0 {
		return 0, false
	}
	t.cursor = 0
	return t.matches[0], true
}

// LastMatch returns the final matching index in list order.
func (t *Typeahead) LastMatch() (int, bool) {
	if !t.Active() || len(t.matches) == 0 {
		return 0, false
	}
	t.cursor = len(t.matches) - 1
	return t.matches[t.cursor], true
}

// Resolve recomputes the match set against a replaced label list, keeping
// the committed buffer. The match cursor resets to the first match.
func (t *Typeahead) Resolve(labels []string) {
	if t.buffer == "" {
		return
	}
	t.matches = matchIndices(labels, t.buffer, t.policy)
	t.cursor = 0
}

// Clear cancels the search, retaining the caller's current position. It
// reports whether a search was active; clearing an inactive search is a
// no-op and must not trigger an announcement.
func (t *Typeahead) Clear() bool {
	active := t.Active()
	t.buffer = ""
	t.matches = nil
	t.cursor = 0
	t.lastFailed = ""
	return active
}

func matchAtOrAfter(set []int, selected int) int {
	for i, idx := range set {
		if idx >= selected {
			return i
		}
	}
	return 0
}

func matchIndices(labels []string, query string, policy MatchPolicy) []int {
	if query == "" {
		return nil
	}
	lower := strings.ToLower(query)
	var set []int
	for i, label := range labels {
		if matchLabel(strings.ToLower(label), label, lower, query, policy) {
			set = append(set, i)
		}
	}
	return set
}

func matchLabel(labelLower, label, queryLower, query string, policy MatchPolicy) bool {
	switch policy {
	case MatchSubstring:
		return strings.Contains(labelLower, queryLower)
	case MatchFuzzy:
		return fuzzy.MatchNormalizedFold(query, label)
	default:
		return strings.HasPrefix(labelLower, queryLower)
	}
}
