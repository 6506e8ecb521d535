package notifications

import (
	"github.com/samber/lo"

	"github.com/odyssey-erp/odyssey-admin/internal/query"
	"github.com/odyssey-erp/odyssey-admin/internal/store"
)

const filterKey = "inbox"

var listSpec = query.Spec[Notification]{
	Filters: map[string]query.Predicate[Notification]{
		filterKey: matches,
	},
}

// Store owns a workspace's inbox.
type Store struct {
	items *store.Collection[Notification]
	query *store.QueryState
}

// NewStore seeds a store showing every notification.
func NewStore(seed []Notification) *Store {
	return &Store{
		items: store.New("notifications", seed),
		query: store.NewQueryState(query.State{}.WithFilter(filterKey, FilterAll)),
	}
}

// Subscribe registers a listener for every change.
func (s *Store) Subscribe(fn store.Listener) func() {
	return s.items.Subscribe(fn)
}

// All returns the inbox in collection order.
func (s *Store) All() []Notification {
	return s.items.Snapshot()
}

// Filter returns the active inbox tab.
func (s *Store) Filter() string {
	return s.query.Get().Filter(filterKey)
}

// SetFilter selects an inbox tab; unknown values show everything.
func (s *Store) SetFilter(value string) {
	if !lo.Contains(Filters, value) {
		value = FilterAll
	}
	s.query.Update(func(st query.State) query.State { return st.WithFilter(filterKey, value) })
	s.items.Notify(store.Event{Op: store.OpQuery})
}

// View returns the notifications matching the active tab. The inbox is
// not paginated.
func (s *Store) View() []Notification {
	return query.Apply(s.items.Snapshot(), listSpec, s.query.Get())
}

// Unread counts unread notifications across the whole inbox.
func (s *Store) Unread() int {
	return lo.CountBy(s.items.Snapshot(), func(n Notification) bool { return !n.Read })
}

// MarkRead marks one notification read. Repeating it, or naming an unknown
// id, leaves the inbox unchanged.
func (s *Store) MarkRead(id int64) {
	s.items.Mutate(store.OpRead, func(items []Notification) []Notification {
		return lo.Map(items, func(n Notification, _ int) Notification {
			if n.ID == id {
				n.Read = true
			}
			return n
		})
	})
}

// MarkAllRead marks every notification read.
func (s *Store) MarkAllRead() {
	s.items.Mutate(store.OpRead, func(items []Notification) []Notification {
		return lo.Map(items, func(n Notification, _ int) Notification {
			n.Read = true
			return n
		})
	})
}
