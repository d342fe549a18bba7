package events

import "github.com/softvoice/menuvox/internal/logging"

type NavTracer struct{}

type SearchTracer struct{}

type SpeechTracer struct{}

type SessionTracer struct{}

var (
	Nav     = NavTracer{}
	Search  = SearchTracer{}
	Speech  = SpeechTracer{}
	Session = SessionTracer{}
)

func (NavTracer) Cursor(sessionID, levelID string, cursor int) {
	logging.Trace("nav.cursor", map[string]interface{}{
		"session": sessionID,
		"level":   levelID,
		"cursor":  cursor,
	})
}

func (NavTracer) DrillIn(sessionID, levelID, child string) {
	logging.Trace("nav.drill-in", map[string]interface{}{
		"session": sessionID,
		"level":   levelID,
		"child":   child,
	})
}

func (NavTracer) DrillOut(sessionID, levelID string, cursor int) {
	logging.Trace("nav.drill-out", map[string]interface{}{
		"session": sessionID,
		"level":   levelID,
		"cursor":  cursor,
	})
}

func (NavTracer) Activate(sessionID, itemID, label string) {
	logging.Trace("nav.activate", map[string]interface{}{
		"session": sessionID,
		"item":    itemID,
		"label":   label,
	})
}

func (NavTracer) GridCursor(sessionID, levelID string, col, row int) {
	logging.Trace("nav.grid-cursor", map[string]interface{}{
		"session": sessionID,
		"level":   levelID,
		"col":     col,
		"row":     row,
	})
}

func (SearchTracer) Append(sessionID, buffer string, matches int) {
	logging.Trace("search.append", map[string]interface{}{
		"session": sessionID,
		"buffer":  buffer,
		"matches": matches,
	})
}

func (SearchTracer) Failed(sessionID, attempted string) {
	logging.Trace("search.failed", map[string]interface{}{
		"session":   sessionID,
		"attempted": attempted,
	})
}

func (SearchTracer) Backspace(sessionID, buffer string) {
	logging.Trace("search.backspace", map[string]interface{}{
		"session": sessionID,
		"buffer":  buffer,
	})
}

func (SearchTracer) Cleared(sessionID string) {
	logging.Trace("search.clear", map[string]interface{}{"session": sessionID})
}

func (SearchTracer) Cycle(sessionID string, index int) {
	logging.Trace("search.cycle", map[string]interface{}{
		"session": sessionID,
		"index":   index,
	})
}

func (SpeechTracer) Utterance(text, priority string) {
	logging.Trace("speech.utterance", map[string]interface{}{
		"text":     text,
		"priority": priority,
	})
}

func (SessionTracer) Open(id string, items int) {
	logging.Trace("session.open", map[string]interface{}{"id": id, "items": items})
}

func (SessionTracer) Close(id string) {
	logging.Trace("session.close", map[string]interface{}{"id": id})
}

func (SessionTracer) Rebuild(id string, items int, restored bool) {
	logging.Trace("session.rebuild", map[string]interface{}{
		"id":       id,
		"items":    items,
		"restored": restored,
	})
}

func (SessionTracer) EditBegin(id, field string) {
	logging.Trace("session.edit-begin", map[string]interface{}{"id": id, "field": field})
}

func (SessionTracer) EditCommit(id, field string) {
	logging.Trace("session.edit-commit", map[string]interface{}{"id": id, "field": field})
}

func (SessionTracer) EditCancel(id, field string) {
	logging.Trace("session.edit-cancel", map[string]interface{}{"id": id, "field": field})
}
