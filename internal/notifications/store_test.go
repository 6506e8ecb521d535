package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odyssey-erp/odyssey-admin/internal/store"
)

func ids(ns []Notification) []int64 {
	out := make([]int64, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}
	return out
}

func TestFilters(t *testing.T) {
	s := NewStore(Seed())
	assert.Equal(t, FilterAll, s.Filter())
	assert.Len(t, s.View(), 6)

	s.SetFilter(FilterUnread)
	assert.Equal(t, []int64{1, 2, 3, 6}, ids(s.View()))

	s.SetFilter(FilterOrders)
	assert.Equal(t, []int64{1, 2, 5}, ids(s.View()))

	s.SetFilter(FilterSystem)
	assert.Equal(t, []int64{3, 4, 6}, ids(s.View()))

	s.SetFilter("bogus")
	assert.Equal(t, FilterAll, s.Filter())
}

func TestMarkReadIsIdempotent(t *testing.T) {
	s := NewStore(Seed())
	assert.Equal(t, 4, s.Unread())

	s.MarkRead(1)
	after := s.All()
	assert.Equal(t, 3, s.Unread())

	s.MarkRead(1)
	assert.Equal(t, after, s.All())

	s.MarkRead(404)
	assert.Equal(t, after, s.All())
}

func TestMarkAllRead(t *testing.T) {
	s := NewStore(Seed())
	var events []store.Event
	s.Subscribe(func(ev store.Event) { events = append(events, ev) })

	s.MarkAllRead()
	assert.Equal(t, 0, s.Unread())
	s.MarkAllRead()
	assert.Equal(t, 0, s.Unread())

	assert.Len(t, events, 2)
	assert.Equal(t, "notifications", events[0].Collection)
	assert.Equal(t, store.OpRead, events[0].Op)

	s.SetFilter(FilterUnread)
	assert.Empty(t, s.View())
}

func TestLocalisedText(t *testing.T) {
	n := Seed()[0]
	assert.Equal(t, "New order received", n.LocalTitle("en"))
	assert.Equal(t, "تم استلام طلب جديد", n.LocalTitle("ar"))
	assert.Equal(t, n.Message, Notification{Message: n.Message}.LocalMessage("ar"))
}
