package nav

import "testing"

var fruitLabels = []string{"Alpha", "Bravo", "Cherry"}

func TestTypeJumpsToMatch(t *testing.T) {
	ta := NewTypeahead(MatchPrefix)
	idx, ok := ta.Type(fruitLabels, 0, 'b')
	if !ok {
		t.Fatalf("expected match for 'b'")
	}
	if idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if got := ta.Matches(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected match set {1}, got %v", got)
	}
	if ta.Buffer() != "b" {
		t.Fatalf("expected committed buffer 'b', got %q", ta.Buffer())
	}
}

func TestFailedExtensionRollsBack(t *testing.T) {
	ta := NewTypeahead(MatchPrefix)
	if _, ok := ta.Type(fruitLabels, 0, 'b'); !ok {
		t.Fatalf("expected match for 'b'")
	}
	idx, ok := ta.Type(fruitLabels, 1, 'z')
	if ok {
		t.Fatalf("expected failure for 'bz'")
	}
	if idx != 1 {
		t.Fatalf("expected index unchanged at 1, got %d", idx)
	}
	if ta.Buffer() != "b" {
		t.Fatalf("expected committed buffer rolled back to 'b', got %q", ta.Buffer())
	}
	if ta.LastFailedSearch() != "bz" {
		t.Fatalf("expected last failed search 'bz', got %q", ta.LastFailedSearch())
	}
	// A subsequent successful keystroke clears the failure record.
	if _, ok := ta.Backspace(fruitLabels, 1); !ok {
		t.Fatalf("expected backspace to act on committed buffer")
	}
	if ta.LastFailedSearch() != "" {
		t.Fatalf("expected failure record cleared, got %q", ta.LastFailedSearch())
	}
}

func TestTypeWrapsToFirstMatch(t *testing.T) {
	labels := []string{"Apple", "Banana", "Apricot"}
	ta := NewTypeahead(MatchPrefix)
	// Cursor sits past the last 'a' match; the jump wraps to the first.
	idx, ok := ta.Type(labels, 2, 'a')
	if !ok {
		t.Fatalf("expected matches for 'a'")
	}
	if idx != 2 {
		t.Fatalf("expected first match at or after cursor (2), got %d", idx)
	}
	ta.Clear()
	idx, ok = ta.Type(labels, 1, 'a')
	if !ok || idx != 2 {
		t.Fatalf("expected jump to index 2, got %d (ok=%v)", idx, ok)
	}
}

func TestBackspaceWidensAndClears(t *testing.T) {
	labels := []string{"Alpha", "Alto", "Bravo"}
	ta := NewTypeahead(MatchPrefix)
	ta.Type(labels, 0, 'a')
	ta.Type(labels, 0, 'l')
	ta.Type(labels, 0, 'p')
	if ta.MatchCount() != 1 {
		t.Fatalf("expected 1 match for 'alp', got %d", ta.MatchCount())
	}
	if _, ok := ta.Backspace(labels, 0); !ok {
		t.Fatalf("expected backspace to succeed")
	}
	if ta.Buffer() != "al" || ta.MatchCount() != 2 {
		t.Fatalf("expected buffer 'al' with 2 matches, got %q with %d", ta.Buffer(), ta.MatchCount())
	}
	ta.Backspace(labels, 0)
	ta.Backspace(labels, 0)
	if ta.Active() {
		t.Fatalf("expected search cleared after backspacing to empty")
	}
	if _, ok := ta.Backspace(labels, 0); ok {
		t.Fatalf("expected backspace on inactive search to be a no-op")
	}
}

func TestMatchCyclingIsRingShaped(t *testing.T) {
	labels := []string{"Alpha", "Bravo", "Alto", "Cherry", "Apex"}
	ta := NewTypeahead(MatchPrefix)
	idx, ok := ta.Type(labels, 0, 'a')
	if !ok || idx != 0 {
		t.Fatalf("expected first match at 0, got %d", idx)
	}
	if idx, _ = ta.NextMatch(); idx != 2 {
		t.Fatalf("expected next match 2, got %d", idx)
	}
	if idx, _ = ta.NextMatch(); idx != 4 {
		t.Fatalf("expected next match 4, got %d", idx)
	}
	if idx, _ = ta.NextMatch(); idx != 0 {
		t.Fatalf("expected wrap to 0, got %d", idx)
	}
	if idx, _ = ta.PrevMatch(); idx != 4 {
		t.Fatalf("expected wrap back to 4, got %d", idx)
	}
	if idx, _ = ta.FirstMatch(); idx != 0 {
		t.Fatalf("expected first match 0, got %d", idx)
	}
	if idx, _ = ta.LastMatch(); idx != 4 {
		t.Fatalf("expected last match 4, got %d", idx)
	}
}

func TestMatchCyclingInactive(t *testing.T) {
	ta := NewTypeahead(MatchPrefix)
	if _, ok := ta.NextMatch(); ok {
		t.Fatalf("expected no cycling without an active search")
	}
	if _, ok := ta.PrevMatch(); ok {
		t.Fatalf("expected no cycling without an active search")
	}
}

func TestClearWhenInactiveIsNoOp(t *testing.T) {
	ta := NewTypeahead(MatchPrefix)
	if ta.Clear() {
		t.Fatalf("expected clear on inactive search to report false")
	}
	ta.Type(fruitLabels, 0, 'b')
	if !ta.Clear() {
		t.Fatalf("expected clear on active search to report true")
	}
	if ta.Active() || ta.MatchCount() != 0 {
		t.Fatalf("expected cleared state")
	}
}

func TestSubstringPolicy(t *testing.T) {
	labels := []string{"Rimstone", "Granite", "Sandstone"}
	ta := NewTypeahead(MatchSubstring)
	ta.Type(labels, 0, 's')
	ta.Type(labels, 0, 't')
	ta.Type(labels, 0, 'o')
	if got := ta.Matches(); len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("expected substring matches {0 2}, got %v", got)
	}
}

func TestFuzzyPolicy(t *testing.T) {
	labels := []string{"Deep drill", "Wind turbine", "Drop pod"}
	ta := NewTypeahead(MatchFuzzy)
	for _, r := range "dpd" {
		ta.Type(labels, 0, r)
	}
	if ta.Buffer() != "dpd" {
		t.Fatalf("expected fuzzy buffer 'dpd', got %q", ta.Buffer())
	}
	found := false
	for _, idx := range ta.Matches() {
		if idx == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 'Deep drill' to fuzzy-match 'dpd', got %v", ta.Matches())
	}
}

func TestResolveAfterListReplacement(t *testing.T) {
	ta := NewTypeahead(MatchPrefix)
	ta.Type(fruitLabels, 0, 'b')
	ta.Resolve([]string{"Cherry", "Bravo"})
	if got := ta.Matches(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected resolved match set {1}, got %v", got)
	}
	ta.Resolve([]string{"Cherry"})
	if ta.MatchCount() != 0 {
		t.Fatalf("expected empty match set after resolve, got %d", ta.MatchCount())
	}
}

func TestParseMatchPolicy(t *testing.T) {
	cases := map[string]MatchPolicy{
		"":          MatchPrefix,
		"prefix":    MatchPrefix,
		"Substring": MatchSubstring,
		"FUZZY":     MatchFuzzy,
	}
	for value, want := range cases {
		got, err := ParseMatchPolicy(value)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", value, err)
		}
		if got != want {
			t.Fatalf("expected %v for %q, got %v", want, value, got)
		}
	}
	if _, err := ParseMatchPolicy("regex"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
