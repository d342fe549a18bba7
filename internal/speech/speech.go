// Package speech defines the announcement seam between the navigation core
// and whatever produces audible output. The core calls Speak exactly once
// per state change and never waits on delivery.
package speech

import "github.com/softvoice/menuvox/internal/logging/events"

// Priority is a coarse two-level queue hint. High entries jump ahead of
// pending Normal entries in queued sinks; the core attaches no other
// meaning to it.
type Priority int

const (
	Normal Priority = iota
	High
)

// String returns the priority name used in trace logs.
func (p Priority) String() string {
	if p == High {
		return "high"
	}
	return "normal"
}

// Sink consumes utterances. Implementations must not block the caller.
type Sink interface {
	Speak(text string, pri Priority)
}

// Func adapts a plain function to the Sink interface.
type Func func(text string, pri Priority)

// Speak implements Sink.
func (f Func) Speak(text string, pri Priority) {
	f(text, pri)
}

// Trace writes every utterance to the shared trace log. Useful as the
// terminal sink in tests and as a tee alongside a real bridge.
type Trace struct{}

// Speak implements Sink.
func (Trace) Speak(text string, pri Priority) {
	events.Speech.Utterance(text, pri.String())
}

// Multi fans one utterance out to several sinks in order.
func Multi(sinks ...Sink) Sink {
	return Func(func(text string, pri Priority) {
		for _, s := range sinks {
			if s != nil {
				s.Speak(text, pri)
			}
		}
	})
}

// Discard drops every utterance.
var Discard Sink = Func(func(string, Priority) {})
