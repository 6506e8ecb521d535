// Package store provides the in-memory state container behind every entity
// store: an ordered record slice plus a synchronous listener list.
package store

import "sync"

// Op names the mutation that triggered a notification.
type Op string

const (
	OpAdd    Op = "add"
	OpEdit   Op = "edit"
	OpDelete Op = "delete"
	OpRead   Op = "read"
	OpQuery  Op = "query"
)

// Event is delivered to listeners after every mutation.
type Event struct {
	Collection string
	Op         Op
	Len        int
}

// Listener receives events synchronously on the mutating goroutine.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Collection owns one ordered sequence of records. Callers only ever see
// copies; changes go through Mutate.
type Collection[T any] struct {
	name string

	mu        sync.RWMutex
	items     []T
	listeners []subscription
	nextSubID int
}

// New returns a collection seeded with a copy of seed.
func New[T any](name string, seed []T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{name: name, items: items}
}

// Name returns the collection name used in events.
func (c *Collection[T]) Name() string {
	return c.name
}

// Snapshot returns a copy of the records in order.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Mutate replaces the records with fn's result and notifies listeners before
// returning. fn runs under the write lock and must not call back into c.
func (c *Collection[T]) Mutate(op Op, fn func(items []T) []T) {
	c.mu.Lock()
	c.items = fn(c.items)
	n := len(c.items)
	c.mu.Unlock()
	c.Notify(Event{Op: op, Len: n})
}

// Notify delivers ev to every listener in subscription order.
func (c *Collection[T]) Notify(ev Event) {
	c.mu.RLock()
	subs := make([]subscription, len(c.listeners))
	copy(subs, c.listeners)
	if ev.Op == OpQuery {
		ev.Len = len(c.items)
	}
	c.mu.RUnlock()
	ev.Collection = c.name
	for _, sub := range subs {
		sub.fn(ev)
	}
}

// Subscribe registers fn and returns a function that removes it.
func (c *Collection[T]) Subscribe(fn Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSubID++
	id := c.nextSubID
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.listeners {
			if sub.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}
