// Package ui renders the foreground menu session as a Bubble Tea program.
// Speech is the primary output surface: every state change is announced
// through the session's speech sink, and the view mirrors the same state
// visually so sighted users and tests can follow along. The model owns the
// wiring between terminal key events, the dispatch register, and the host
// watcher; all navigation semantics live in the session package.
package ui
