package speech

import "sync"

type utterance struct {
	text string
	pri  Priority
}

// Queue is a fire-and-forget sink backed by a single worker goroutine.
// Speak never blocks: entries are buffered in order, except that High
// priority entries are inserted ahead of any pending Normal entries.
type Queue struct {
	out Sink

	mu         sync.Mutex
	cond       *sync.Cond
	pending    []utterance
	delivering bool
	closed     bool
}

// NewQueue starts a queue delivering to out.
func NewQueue(out Sink) *Queue {
	q := &Queue{out: out}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

// Speak implements Sink.
func (q *Queue) Speak(text string, pri Priority) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	entry := utterance{text: text, pri: pri}
	if pri == High {
		at := len(q.pending)
		for i, p := range q.pending {
			if p.pri != High {
				at = i
				break
			}
		}
		q.pending = append(q.pending, utterance{})
		copy(q.pending[at+1:], q.pending[at:])
		q.pending[at] = entry
	} else {
		q.pending = append(q.pending, entry)
	}
	q.cond.Broadcast()
}

// Flush blocks until every pending utterance has been delivered.
func (q *Queue) Flush() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.pending) > 0 || q.delivering {
		q.cond.Wait()
	}
}

// Close stops the worker after the current delivery. Further Speak calls
// are dropped.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

func (q *Queue) run() {
	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.pending) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		entry := q.pending[0]
		q.pending = q.pending[1:]
		q.delivering = true
		q.mu.Unlock()

		if q.out != nil {
			q.out.Speak(entry.text, entry.pri)
		}

		q.mu.Lock()
		q.delivering = false
		q.cond.Broadcast()
		q.mu.Unlock()
	}
}
