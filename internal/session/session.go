// Package session implements the menu session state machine: a level stack
// for drill-in/drill-out, per-level cursor and typeahead state, and the
// edit, grid, and info-card sub-modes. A session is an explicit object
// constructed on menu open and discarded on close; nothing here is ambient
// or global, which is what makes the machine testable in isolation.
//
// Every key event is processed synchronously: one keystroke, one state
// transition, one announcement. Invalid transitions are early-return
// no-ops, never errors, so no amount of key-mashing can crash the loop.
package session

import (
	"errors"
	"fmt"

	"github.com/softvoice/menuvox/internal/logging/events"
	"github.com/softvoice/menuvox/internal/menu"
	"github.com/softvoice/menuvox/internal/nav"
	"github.com/softvoice/menuvox/internal/speech"
)

// Mode discriminates which sub-machine currently owns key input.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeGrid
	ModeEdit
	ModeInfo
)

// ErrEmptyMenu is returned when a menu is opened against zero items; the
// session announces the condition and declines to enter navigation mode.
var ErrEmptyMenu = errors.New("menu has no items")

// Level is one rung of the drill stack. Each level owns its cursor and its
// typeahead state, so drilling out restores the parent's selection exactly.
type Level struct {
	Node   *menu.Node
	Parent menu.Item
	Title  string
	Items  []menu.Item
	Cursor int
	Search *nav.Typeahead
}

// Labels returns the typeahead targets for the level's items.
func (l *Level) Labels() []string {
	labels := make([]string, len(l.Items))
	for i, item := range l.Items {
		labels[i] = item.SearchText()
	}
	return labels
}

// SpeechOptions control the optional parts of announcements.
type SpeechOptions struct {
	// EchoKeys speaks each typed character while editing a value.
	EchoKeys bool
	// Suggestions appends the closest label to failed-search announcements.
	Suggestions bool
}

// DefaultSpeechOptions enables every optional announcement.
func DefaultSpeechOptions() SpeechOptions {
	return SpeechOptions{EchoKeys: true, Suggestions: true}
}

// Options configures a session.
type Options struct {
	Registry *menu.Registry
	Context  menu.Context
	Speaker  speech.Sink
	// PolicyFor overrides the typeahead policy for a menu node, typically
	// from the user's policy file. Absent an override the node's own
	// policy applies.
	PolicyFor func(menuID string) (nav.MatchPolicy, bool)
	// Speech tunes optional announcement detail; nil applies
	// DefaultSpeechOptions.
	Speech *SpeechOptions
}

// Session is a single open menu: the foreground unit the dispatcher routes
// keys to.
type Session struct {
	id      string
	opts    Options
	speaker speech.Sink
	voice   SpeechOptions

	stack      []*Level
	mode       Mode
	infoText   string
	infoReturn Mode
	edit       *Edit
	grid       *gridState
	open       bool
}

// Open constructs a session rooted at the registry node id and announces
// the first item. Opening a menu with no items announces that and returns
// ErrEmptyMenu.
func Open(id string, opts Options) (*Session, error) {
	node, ok := opts.Registry.Find(id)
	if !ok {
		return nil, fmt.Errorf("unknown menu %q", id)
	}
	if node.Loader == nil {
		return nil, fmt.Errorf("menu %q is not openable", id)
	}
	s := &Session{id: id, opts: opts, speaker: opts.Speaker, voice: DefaultSpeechOptions()}
	if s.speaker == nil {
		s.speaker = speech.Discard
	}
	if opts.Speech != nil {
		s.voice = *opts.Speech
	}
	items, err := node.Loader(opts.Context, menu.Item{})
	if err != nil {
		return nil, fmt.Errorf("load menu %q: %w", id, err)
	}
	if len(items) == 0 {
		s.speaker.Speak(fmt.Sprintf("%s. %s", title(id), nav.NoItemsText), speech.High)
		return nil, ErrEmptyMenu
	}
	level := &Level{
		Node:   node,
		Title:  title(id),
		Items:  items,
		Search: nav.NewTypeahead(s.policyFor(node)),
	}
	s.stack = []*Level{level}
	s.open = true
	events.Session.Open(id, len(items))
	s.speaker.Speak(fmt.Sprintf("%s. %s", level.Title, s.formatCurrent(level)), speech.High)
	return s, nil
}

// ID returns the registry id the session was opened on.
func (s *Session) ID() string {
	return s.id
}

// IsOpen reports whether the session still owns input.
func (s *Session) IsOpen() bool {
	return s.open
}

// Mode returns the sub-machine currently owning input.
func (s *Session) Mode() Mode {
	return s.mode
}

// Levels exposes the drill stack for rendering.
func (s *Session) Levels() []*Level {
	return s.stack
}

// Current returns the innermost level.
func (s *Session) Current() *Level {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Edit returns the active edit sub-mode state, if any.
func (s *Session) Edit() *Edit {
	return s.edit
}

// Grid returns the active grid content and cursor, if any.
func (s *Session) Grid() (*menu.GridModel, *nav.Grid) {
	if s.grid == nil {
		return nil, nil
	}
	return s.grid.model, s.grid.cursor
}

// InfoText returns the text of the open info card, if any.
func (s *Session) InfoText() string {
	return s.infoText
}

// Close ends the session with a closing announcement. Closing twice is a
// no-op.
func (s *Session) Close() {
	if !s.open {
		return
	}
	s.open = false
	events.Session.Close(s.id)
	s.speaker.Speak(fmt.Sprintf("%s closed", title(s.id)), speech.Normal)
}

// HandleKey processes one key event synchronously and reports whether the
// session consumed it. Unconsumed events fall through to the host's own
// handling.
func (s *Session) HandleKey(ev KeyEvent) bool {
	if !s.open {
		return false
	}
	switch s.mode {
	case ModeEdit:
		return s.handleEditKey(ev)
	case ModeInfo:
		return s.handleInfoKey(ev)
	case ModeGrid:
		return s.handleGridKey(ev)
	default:
		return s.handleBrowseKey(ev)
	}
}

// Rebuild reloads every level's items from its loader after an external
// host mutation. The previously selected item is re-resolved by ID; if it
// vanished the cursor resets to the first item. Rebuilding is silent: only
// key events produce announcements.
func (s *Session) Rebuild() {
	if !s.open {
		return
	}
	for _, level := range s.stack {
		s.rebuildLevel(level)
	}
	if s.mode == ModeGrid && s.grid != nil {
		s.reloadGrid()
	}
}

func (s *Session) rebuildLevel(level *Level) {
	if level.Node == nil || level.Node.Loader == nil {
		return
	}
	items, err := level.Node.Loader(s.opts.Context, level.Parent)
	if err != nil {
		events.Session.Rebuild(s.id, len(level.Items), false)
		return
	}
	var selectedID string
	if level.Cursor >= 0 && level.Cursor < len(level.Items) {
		selectedID = level.Items[level.Cursor].ID
	}
	level.Items = items
	restored := false
	level.Cursor = 0
	for i, item := range items {
		if item.ID == selectedID {
			level.Cursor = i
			restored = true
			break
		}
	}
	level.Search.Resolve(level.Labels())
	events.Session.Rebuild(s.id, len(items), restored)
}

func (s *Session) handleBrowseKey(ev KeyEvent) bool {
	level := s.Current()
	if level == nil {
		return false
	}
	switch ev.Key {
	case KeyDown:
		s.step(level, forward)
		return true
	case KeyUp:
		s.step(level, backward)
		return true
	case KeyHome:
		s.jump(level, toFirst)
		return true
	case KeyEnd:
		s.jump(level, toLast)
		return true
	case KeyNextMatch:
		return s.cycleMatch(level, forward)
	case KeyPrevMatch:
		return s.cycleMatch(level, backward)
	case KeyRune:
		if ev.Ctrl || ev.Alt {
			return false
		}
		return s.typeRune(level, ev.Rune)
	case KeyBackspace:
		return s.searchBackspace(level)
	case KeyEnter:
		s.activate(level)
		return true
	case KeyRight:
		return s.drillInOnly(level)
	case KeyLeft:
		if len(s.stack) > 1 {
			s.drillOut()
			return true
		}
		return false
	case KeyEscape:
		s.escape(level)
		return true
	case KeyInfo:
		return s.showInfo(level)
	}
	return false
}

type direction int

const (
	forward direction = iota
	backward
)

type jumpTarget int

const (
	toFirst jumpTarget = iota
	toLast
)

// step moves up or down. With an active search the step is constrained to
// the match set; otherwise it walks the full list with wraparound.
func (s *Session) step(level *Level, dir direction) {
	if level.Search.Active() {
		var idx int
		var ok bool
		if dir == forward {
			idx, ok = level.Search.NextMatch()
		} else {
			idx, ok = level.Search.PrevMatch()
		}
		if ok {
			level.Cursor = idx
			events.Search.Cycle(s.id, idx)
		}
	} else {
		if dir == forward {
			level.Cursor = nav.Next(level.Cursor, len(level.Items))
		} else {
			level.Cursor = nav.Prev(level.Cursor, len(level.Items))
		}
		events.Nav.Cursor(s.id, level.Node.ID, level.Cursor)
	}
	s.announce(level)
}

func (s *Session) jump(level *Level, target jumpTarget) {
	if level.Search.Active() {
		var idx int
		var ok bool
		if target == toFirst {
			idx, ok = level.Search.FirstMatch()
		} else {
			idx, ok = level.Search.LastMatch()
		}
		if ok {
			level.Cursor = idx
		}
	} else {
		if target == toFirst {
			level.Cursor = nav.First()
		} else {
			level.Cursor = nav.Last(len(level.Items))
		}
	}
	events.Nav.Cursor(s.id, level.Node.ID, level.Cursor)
	s.announce(level)
}

func (s *Session) cycleMatch(level *Level, dir direction) bool {
	if !level.Search.Active() {
		return false
	}
	s.step(level, dir)
	return true
}

func (s *Session) typeRune(level *Level, r rune) bool {
	labels := level.Labels()
	idx, ok := level.Search.Type(labels, level.Cursor, r)
	if !ok {
		events.Search.Failed(s.id, level.Search.LastFailedSearch())
		// Withholding the labels suppresses the closest-match suggestion.
		suggestFrom := labels
		if !s.voice.Suggestions {
			suggestFrom = nil
		}
		s.speaker.Speak(nav.FormatSearchFailure(level.Search.LastFailedSearch(), suggestFrom), speech.High)
		return true
	}
	level.Cursor = idx
	events.Search.Append(s.id, level.Search.Buffer(), level.Search.MatchCount())
	s.announce(level)
	return true
}

func (s *Session) searchBackspace(level *Level) bool {
	idx, ok := level.Search.Backspace(level.Labels(), level.Cursor)
	if !ok {
		return false
	}
	level.Cursor = idx
	events.Search.Backspace(s.id, level.Search.Buffer())
	s.announce(level)
	return true
}

// escape unwinds one layer of state at a time: an active search first, then
// a drilled-in level, and finally the session itself.
func (s *Session) escape(level *Level) {
	if level.Search.Clear() {
		events.Search.Cleared(s.id)
		s.announce(level)
		return
	}
	if len(s.stack) > 1 {
		s.drillOut()
		return
	}
	s.Close()
}

func (s *Session) drillInOnly(level *Level) bool {
	item, ok := s.selected(level)
	if !ok {
		return false
	}
	child, ok := s.opts.Registry.Resolve(level.Node, item)
	if !ok || (!child.Expandable() && child.Field == nil) {
		return false
	}
	s.activate(level)
	return true
}

// activate resolves the node behind the current item and enters it:
// expandable nodes drill in, editable nodes enter edit mode, grids enter
// grid mode, and plain leaves run their action.
func (s *Session) activate(level *Level) {
	item, ok := s.selected(level)
	if !ok {
		s.speaker.Speak(nav.NoItemsText, speech.Normal)
		return
	}
	level.Search.Clear()
	child, ok := s.opts.Registry.Resolve(level.Node, item)
	if !ok {
		s.speaker.Speak(fmt.Sprintf("Selected %s", item.SearchText()), speech.Normal)
		return
	}
	switch {
	case child.Field != nil:
		s.enterEdit(child, item)
	case child.Grid != nil:
		s.enterGrid(child, item)
	case child.Loader != nil:
		s.drillIn(child, item)
	case child.Action != nil:
		s.runAction(child, item)
	default:
		s.speaker.Speak(fmt.Sprintf("Selected %s", item.SearchText()), speech.Normal)
	}
}

func (s *Session) drillIn(node *menu.Node, item menu.Item) {
	items, err := node.Loader(s.opts.Context, item)
	if err != nil {
		s.speaker.Speak(fmt.Sprintf("Failed to open %s", item.Label), speech.High)
		return
	}
	if len(items) == 0 {
		// Never transition into a level that cannot satisfy its own
		// invariant.
		s.speaker.Speak("Nothing here", speech.Normal)
		return
	}
	level := &Level{
		Node:   node,
		Parent: item,
		Title:  item.Label,
		Items:  items,
		Search: nav.NewTypeahead(s.policyFor(node)),
	}
	s.stack = append(s.stack, level)
	events.Nav.DrillIn(s.id, node.ID, item.ID)
	s.speaker.Speak(fmt.Sprintf("%s. %s", level.Title, s.formatCurrent(level)), speech.Normal)
}

func (s *Session) drillOut() {
	s.stack = s.stack[:len(s.stack)-1]
	level := s.Current()
	events.Nav.DrillOut(s.id, level.Node.ID, level.Cursor)
	s.announce(level)
}

func (s *Session) runAction(node *menu.Node, item menu.Item) {
	msg, err := node.Action(s.opts.Context, item)
	if err != nil {
		s.speaker.Speak(fmt.Sprintf("Failed: %v", err), speech.High)
		return
	}
	// The action may have reshaped the list underneath us.
	s.rebuildLevel(s.Current())
	s.speaker.Speak(msg, speech.Normal)
}

func (s *Session) showInfo(level *Level) bool {
	item, ok := s.selected(level)
	if !ok {
		return false
	}
	child, ok := s.opts.Registry.Resolve(level.Node, item)
	if !ok || child.Info == nil {
		s.speaker.Speak("No details available", speech.Normal)
		return true
	}
	text, ok := child.Info(s.opts.Context, item)
	if !ok {
		s.speaker.Speak("No details available", speech.Normal)
		return true
	}
	s.infoReturn = s.mode
	s.infoText = text
	s.mode = ModeInfo
	s.speaker.Speak(text, speech.Normal)
	return true
}

func (s *Session) handleInfoKey(ev KeyEvent) bool {
	switch ev.Key {
	case KeyEscape, KeyEnter, KeyInfo:
		s.mode = s.infoReturn
		s.infoText = ""
		if s.mode == ModeGrid && s.grid != nil {
			s.announceGrid()
		} else if level := s.Current(); level != nil {
			s.announce(level)
		}
		return true
	default:
		// The card is modal; swallow everything else.
		return true
	}
}

func (s *Session) selected(level *Level) (menu.Item, bool) {
	if level == nil || len(level.Items) == 0 {
		return menu.Item{}, false
	}
	level.Cursor = nav.Clamp(level.Cursor, len(level.Items))
	return level.Items[level.Cursor], true
}

func (s *Session) announce(level *Level) {
	s.speaker.Speak(s.formatCurrent(level), speech.Normal)
}

func (s *Session) formatCurrent(level *Level) string {
	if len(level.Items) == 0 {
		return nav.NoItemsText
	}
	level.Cursor = nav.Clamp(level.Cursor, len(level.Items))
	item := level.Items[level.Cursor]
	return nav.Format(item.Label, level.Cursor, len(level.Items), level.Search)
}

func (s *Session) policyFor(node *menu.Node) nav.MatchPolicy {
	policy := node.Policy
	if s.opts.PolicyFor != nil {
		if override, ok := s.opts.PolicyFor(node.ID); ok {
			policy = override
		}
	}
	return policy
}

func title(id string) string {
	if id == "root" {
		return "Main menu"
	}
	return menu.PrettyLabel(id)
}
