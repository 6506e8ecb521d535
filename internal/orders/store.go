package orders

import (
	"time"

	"github.com/samber/lo"

	"github.com/odyssey-erp/odyssey-admin/internal/query"
	"github.com/odyssey-erp/odyssey-admin/internal/store"
)

// PageSize is the number of rows per orders page.
const PageSize = 5

const filterStatus = "status"

var listSpec = query.Spec[Order]{
	PageSize: PageSize,
	SearchFields: []func(Order) string{
		func(o Order) string { return o.ID },
		func(o Order) string { return o.Customer },
	},
	Filters: map[string]query.Predicate[Order]{
		filterStatus: query.Equals(func(o Order) string { return string(o.Status) }),
	},
	Sorts: map[string]query.Compare[Order]{
		"amount": query.Ordered(func(o Order) float64 { return o.Amount }),
		"status": query.Ranked(func(o Order) string { return string(o.Status) }, statusRank),
		"date":   query.Chronological(func(o Order) string { return o.Date }, time.DateOnly),
	},
}

// Store owns a workspace's orders. The collection itself is read-only; only
// the listing state changes.
type Store struct {
	items *store.Collection[Order]
	query *store.QueryState
}

// NewStore seeds a store sorted by date, newest first.
func NewStore(seed []Order) *Store {
	return &Store{
		items: store.New("orders", seed),
		query: store.NewQueryState(query.State{SortField: "date", SortDir: query.Desc}),
	}
}

// Subscribe registers a listener for every change.
func (s *Store) Subscribe(fn store.Listener) func() {
	return s.items.Subscribe(fn)
}

// All returns every order in collection order.
func (s *Store) All() []Order {
	return s.items.Snapshot()
}

// Get looks an order up by id.
func (s *Store) Get(id string) (Order, bool) {
	return s.items.Find(func(o Order) bool { return o.ID == id })
}

// Query returns the current listing state.
func (s *Store) Query() query.State {
	return s.query.Get()
}

// SetSearch sets the free-text search over id and customer.
func (s *Store) SetSearch(text string) {
	s.setQuery(func(st query.State) query.State { st.Search = text; return st })
}

// SetStatusFilter restricts the listing to one status; query.All clears it.
func (s *Store) SetStatusFilter(value string) {
	s.setQuery(func(st query.State) query.State { return st.WithFilter(filterStatus, value) })
}

// SetSort selects the sort column, toggling direction on repeat. Fields
// the listing cannot sort by are ignored.
func (s *Store) SetSort(field string) {
	if !listSpec.Sortable(field) {
		return
	}
	s.setQuery(func(st query.State) query.State { return st.ToggleSort(field) })
}

// SetPage selects the page.
func (s *Store) SetPage(page int) {
	s.setQuery(func(st query.State) query.State { st.Page = page; return st })
}

func (s *Store) setQuery(fn func(query.State) query.State) {
	s.query.Update(fn)
	s.items.Notify(store.Event{Op: store.OpQuery})
}

// View runs the listing pipeline for the current state.
func (s *Store) View() query.Result[Order] {
	return query.Run(s.items.Snapshot(), listSpec, s.query.Get())
}

// Filtered returns every row matching the current state, across all pages.
func (s *Store) Filtered() []Order {
	return query.Apply(s.items.Snapshot(), listSpec, s.query.Get())
}

// Stats computes the KPI cards over the whole collection.
func (s *Store) Stats() Stats {
	all := s.items.Snapshot()
	return Stats{
		Total:   len(all),
		Revenue: lo.SumBy(all, func(o Order) float64 { return o.Amount }),
		Paid:    lo.CountBy(all, func(o Order) bool { return o.Status == StatusPaid }),
	}
}
