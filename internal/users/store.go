package users

import (
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/odyssey-erp/odyssey-admin/internal/query"
	"github.com/odyssey-erp/odyssey-admin/internal/store"
)

// PageSize is the number of rows per users page.
const PageSize = 5

const (
	filterRole   = "role"
	filterStatus = "status"
)

var listSpec = query.Spec[User]{
	PageSize: PageSize,
	SearchFields: []func(User) string{
		func(u User) string { return u.Name },
		func(u User) string { return u.Email },
	},
	Filters: map[string]query.Predicate[User]{
		filterRole:   query.EqualFold(func(u User) string { return string(u.Role) }),
		filterStatus: query.EqualFold(func(u User) string { return string(u.Status) }),
	},
	Sorts: map[string]query.Compare[User]{
		"id":        query.Ordered(func(u User) int64 { return u.ID }),
		"name":      query.Lexical(func(u User) string { return u.Name }),
		"email":     query.Lexical(func(u User) string { return u.Email }),
		"role":      query.Lexical(func(u User) string { return string(u.Role) }),
		"status":    query.Lexical(func(u User) string { return string(u.Status) }),
		"createdAt": query.Chronological(func(u User) string { return u.CreatedAt }, time.DateOnly),
	},
}

// Store is the single owner of a workspace's user collection and its
// listing state.
type Store struct {
	items *store.Collection[User]
	query *store.QueryState
	now   func() time.Time
}

// NewStore seeds a store. now stamps CreatedAt on Add; nil means time.Now.
func NewStore(seed []User, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		items: store.New("users", seed),
		query: store.NewQueryState(query.State{SortField: "id", SortDir: query.Asc}),
		now:   now,
	}
}

// Subscribe registers a listener for every change.
func (s *Store) Subscribe(fn store.Listener) func() {
	return s.items.Subscribe(fn)
}

// All returns every user in collection order.
func (s *Store) All() []User {
	return s.items.Snapshot()
}

// Get looks a user up by id.
func (s *Store) Get(id int64) (User, bool) {
	return s.items.Find(func(u User) bool { return u.ID == id })
}

// Query returns the current listing state.
func (s *Store) Query() query.State {
	return s.query.Get()
}

// SetSearch sets the free-text search.
func (s *Store) SetSearch(text string) {
	s.setQuery(func(st query.State) query.State { st.Search = text; return st })
}

// SetRoleFilter restricts the listing to one role; query.All clears it.
func (s *Store) SetRoleFilter(value string) {
	s.setQuery(func(st query.State) query.State { return st.WithFilter(filterRole, value) })
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

// SetPage selects the page. Out-of-range values are clamped when viewing.
func (s *Store) SetPage(page int) {
	s.setQuery(func(st query.State) query.State { st.Page = page; return st })
}

func (s *Store) setQuery(fn func(query.State) query.State) {
	s.query.Update(fn)
	s.items.Notify(store.Event{Op: store.OpQuery})
}

// View runs the listing pipeline for the current state.
func (s *Store) View() query.Result[User] {
	return query.Run(s.items.Snapshot(), listSpec, s.query.Get())
}

// Filtered returns every row matching the current state, across all pages.
func (s *Store) Filtered() []User {
	return query.Apply(s.items.Snapshot(), listSpec, s.query.Get())
}

// Add appends u with the next id and, when missing, today's date. The
// record is stored as given otherwise; empty names and emails are accepted.
func (s *Store) Add(u User) User {
	s.items.Mutate(store.OpAdd, func(items []User) []User {
		maxID := int64(0)
		if len(items) > 0 {
			maxID = lo.MaxBy(items, func(a, b User) bool { return a.ID > b.ID }).ID
		}
		u.ID = maxID + 1
		if u.CreatedAt == "" {
			u.CreatedAt = s.now().UTC().Format(time.DateOnly)
		}
		return append(items, u)
	})
	return u
}

// Edit merges patch onto the user with id. Unknown ids are ignored.
func (s *Store) Edit(id int64, patch Patch) {
	s.items.Mutate(store.OpEdit, func(items []User) []User {
		out := make([]User, len(items))
		for i, u := range items {
			if u.ID == id {
				u = patch.apply(u)
			}
			out[i] = u
		}
		return out
	})
}

// Delete removes the user with id. Unknown ids are ignored.
func (s *Store) Delete(id int64) {
	s.items.Mutate(store.OpDelete, func(items []User) []User {
		return lo.Reject(items, func(u User, _ int) bool { return u.ID == id })
	})
}

// Stats computes the KPI cards over the whole collection.
func (s *Store) Stats() Stats {
	all := s.items.Snapshot()
	return Stats{
		Total:  len(all),
		Active: lo.CountBy(all, func(u User) bool { return u.Status == StatusActive }),
		Admins: lo.CountBy(all, func(u User) bool { return u.Role == RoleAdmin }),
	}
}

// ParseID parses a path id.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}
