// Package toast implements the transient notification queue shown on every
// page. Each toast expires on its own timer.
package toast

import (
	"net/http"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3 * time.Second

// Kind classifies a toast for styling.
type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Error   Kind = "error"
)

// Toast is one queued message.
type Toast struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"type"`
	Message string `json:"message"`
}

// Timer is the subset of *time.Timer the queue relies on.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d. time.AfterFunc satisfies it through AfterFunc.
type Scheduler func(d time.Duration, f func()) Timer

// AfterFunc schedules with the runtime timer.
func AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Locator resolves the queue belonging to a request.
type Locator func(r *http.Request) *Queue

// Queue holds live toasts in insertion order. Every entry owns a timer keyed
// by its id; removing one entry never touches the others.
type Queue struct {
	ttl      time.Duration
	schedule Scheduler
	onShow   func(Toast)

	mu      sync.Mutex
	entries []Toast
	timers  map[string]Timer
}

// Option customises a Queue.
type Option func(*Queue)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(q *Queue) {
		if ttl > 0 {
			q.ttl = ttl
		}
	}
}

// WithScheduler replaces the timer source.
func WithScheduler(s Scheduler) Option {
	return func(q *Queue) { q.schedule = s }
}

// WithObserver registers a callback invoked for every shown toast.
func WithObserver(fn func(Toast)) Option {
	return func(q *Queue) { q.onShow = fn }
}

// NewQueue builds an empty queue.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{ttl: DefaultTTL, schedule: AfterFunc, timers: make(map[string]Timer)}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Show appends a toast and arms its expiry timer.
func (q *Queue) Show(kind Kind, message string) Toast {
	if kind == "" {
		kind = Info
	}
	t := Toast{ID: ulid.Make().String(), Kind: kind, Message: message}

	q.mu.Lock()
	q.entries = append(q.entries, t)
	q.timers[t.ID] = q.schedule(q.ttl, func() { q.expire(t.ID) })
	q.mu.Unlock()

	if q.onShow != nil {
		q.onShow(t)
	}
	return t
}

// Remove drops a toast and stops its timer. Unknown ids are ignored.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
	}
	q.drop(id)
}

// List returns a copy of the live toasts.
func (q *Queue) List() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Toast, len(q.entries))
	copy(out, q.entries)
	return out
}

// Close stops every pending timer and empties the queue.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, timer := range q.timers {
		timer.Stop()
	}
	q.timers = make(map[string]Timer)
	q.entries = nil
}

func (q *Queue) expire(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.drop(id)
}

func (q *Queue) drop(id string) {
	delete(q.timers, id)
	for i, t := range q.entries {
		if t.ID == id {
			q.entries = append(q.entries[:i:i], q.entries[i+1:]...)
			return
		}
	}
}
