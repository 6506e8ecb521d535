package store

import (
	"sync"

	"github.com/odyssey-erp/odyssey-admin/internal/query"
)

// QueryState guards the search, filter, sort and page selection of a listing.
type QueryState struct {
	mu    sync.Mutex
	state query.State
}

// NewQueryState returns a QueryState starting from initial.
func NewQueryState(initial query.State) *QueryState {
	if initial.Page < 1 {
		initial.Page = 1
	}
	return &QueryState{state: initial}
}

// Get returns a copy of the current state.
func (q *QueryState) Get() query.State {
	q.mu.Lock()
	defer q.mu.Unlock()
	st := q.state
	if q.state.Filters != nil {
		st.Filters = make(map[string]string, len(q.state.Filters))
		for k, v := range q.state.Filters {
			st.Filters[k] = v
		}
	}
	return st
}

// Update applies fn to the current state.
func (q *QueryState) Update(fn func(query.State) query.State) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.state = fn(q.state)
}
