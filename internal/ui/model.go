package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softvoice/menuvox/internal/dispatch"
	"github.com/softvoice/menuvox/internal/host"
	"github.com/softvoice/menuvox/internal/logging/events"
	"github.com/softvoice/menuvox/internal/menu"
	"github.com/softvoice/menuvox/internal/nav"
	"github.com/softvoice/menuvox/internal/session"
	"github.com/softvoice/menuvox/internal/speech"
	"github.com/softvoice/menuvox/internal/theme"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// transcriptSize bounds the retained utterance history.
const transcriptSize = 64

type utterance struct {
	text string
	pri  speech.Priority
}

// Model implements the Bubble Tea model around one foreground session.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	verbose     bool

	store     *host.Store
	watcher   *host.Watcher
	registry  *menu.Registry
	register  *dispatch.Register
	policyFor func(menuID string) (nav.MatchPolicy, bool)
	voice     *session.SpeechOptions
	rootMenu  string

	transcript []utterance
	errMsg     string
	offsets    []int

	searchCursor cursor.Model
	cursorDirty  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI, opens the root session, and announces its
// first item through tail (the audible sink). Pass a nil tail to keep
// announcements on screen only.
func NewModel(store *host.Store, width, height int, verbose bool, watcher *host.Watcher, rootMenu string, policyFor func(string) (nav.MatchPolicy, bool), voice *session.SpeechOptions, tail speech.Sink) *Model {
	m := &Model{
		verbose:   verbose,
		store:     store,
		watcher:   watcher,
		registry:  menu.BuildRegistry(),
		register:  dispatch.NewRegister(),
		policyFor: policyFor,
		voice:     voice,
		rootMenu:  rootMenu,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Search != nil {
		c.TextStyle = *styles.Search
	}
	c.SetChar(" ")
	m.searchCursor = c
	m.registerHandlers()
	m.openRoot(tail)
	return m
}

func (m *Model) openRoot(tail speech.Sink) {
	speaker := speech.Multi(speech.Func(m.record), tail)
	s, err := session.Open(m.rootMenu, session.Options{
		Registry:  m.registry,
		Context:   menu.Context{Store: m.store},
		Speaker:   speaker,
		PolicyFor: m.policyFor,
		Speech:    m.voice,
	})
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.register.Activate(s)
}

// record mirrors every utterance into the on-screen transcript.
func (m *Model) record(text string, pri speech.Priority) {
	m.transcript = append(m.transcript, utterance{text: text, pri: pri})
	if len(m.transcript) > transcriptSize {
		m.transcript = m.transcript[len(m.transcript)-transcriptSize:]
	}
}

// Session returns the foreground session, or nil once it has closed.
func (m *Model) Session() *session.Session {
	return m.register.Active()
}

// Transcript returns the retained utterance texts, oldest first.
func (m *Model) Transcript() []string {
	out := make([]string, len(m.transcript))
	for i, u := range m.transcript {
		out[i] = u.text
	}
	return out
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, waitForHostEvent(m.watcher))
	}
	if cmd := m.searchCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateSearchCursor(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) updateSearchCursor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(hostEventMsg{}):      m.handleHostEventMsg,
		reflect.TypeOf(hostDoneMsg{}):       m.handleHostDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Type == tea.KeyCtrlC {
		m.register.Deactivate()
		events.App.Exit("interrupt")
		return tea.Quit
	}
	ev, ok := keyEventFor(key)
	if !ok {
		return nil
	}
	m.errMsg = ""
	if m.register.HandleKey(ev) {
		m.cursorDirty = true
		if m.register.Active() == nil {
			events.App.Exit("menu closed")
			return tea.Quit
		}
		return nil
	}
	// Unconsumed keys fall through to host bindings; q is the only one the
	// demo host defines.
	if key.Type == tea.KeyRunes && len(key.Runes) == 1 && key.Runes[0] == 'q' {
		m.register.Deactivate()
		events.App.Exit("quit key")
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.cursorDirty {
		m.cursorDirty = false
		m.searchCursor.Blink = false
		if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
