// Package dispatch owns the foreground session slot. Exactly one session
// receives key events at a time; activating a new one closes whatever was
// active before. Keys arriving with no active session are reported as
// unconsumed so the host keeps its normal handling.
package dispatch

import (
	"sync"

	"github.com/softvoice/menuvox/internal/session"
)

type Register struct {
	mu     sync.Mutex
	active *session.Session
}

func NewRegister() *Register {
	return &Register{}
}

// Activate installs s as the foreground session, closing any previous one.
func (r *Register) Activate(s *session.Session) {
	r.mu.Lock()
	prev := r.active
	r.active = s
	r.mu.Unlock()
	if prev != nil && prev != s {
		prev.Close()
	}
}

// Deactivate closes and removes the foreground session, if any.
func (r *Register) Deactivate() {
	r.mu.Lock()
	prev := r.active
	r.active = nil
	r.mu.Unlock()
	if prev != nil {
		prev.Close()
	}
}

// Active returns the foreground session, or nil.
func (r *Register) Active() *session.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// HandleKey routes one key event to the foreground session and reports
// whether it was consumed. A session that closed itself on this key is
// unregistered here so later keys fall through cleanly.
func (r *Register) HandleKey(ev session.KeyEvent) bool {
	r.mu.Lock()
	s := r.active
	r.mu.Unlock()
	if s == nil {
		return false
	}
	consumed := s.HandleKey(ev)
	if !s.IsOpen() {
		r.mu.Lock()
		if r.active == s {
			r.active = nil
		}
		r.mu.Unlock()
	}
	return consumed
}

// Rebuild forwards a host data change to the foreground session.
func (r *Register) Rebuild() {
	if s := r.Active(); s != nil {
		s.Rebuild()
	}
}
