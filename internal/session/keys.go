package session

// Key identifies a logical navigation key, decoupled from any particular
// input backend. The terminal front end maps its own key events onto these;
// a host-embedded front end would do the same with the host's input types.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyHome
	KeyEnd
	KeyRune
	KeyInfo
	KeyNextMatch
	KeyPrevMatch
)

// KeyEvent is one discrete key-down event with modifier flags.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Shift bool
	Ctrl  bool
	Alt   bool
}

// Rune builds a printable-character event.
func Rune(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Press builds a plain event for a logical key.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k}
}
